// Package jdk runs the JDK tools: javac compiles, javap and jdeps describe compiled classes.
package jdk

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	javac = "javac"
	javap = "javap"
	jdeps = "jdeps"
)

// Toolchain locates JDK executables.
type Toolchain struct {
	// Home is the JDK root. Empty means tools are resolved on PATH.
	Home string
}

// Path returns the executable to run for tool.
func (t Toolchain) Path(tool string) string {
	if t.Home == "" {
		return tool
	}
	return filepath.Join(t.Home, "bin", tool)
}

// joinClasspath joins non-empty entries with the platform list separator.
func joinClasspath(entries ...string) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, string(os.PathListSeparator))
}
