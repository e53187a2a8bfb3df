package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

const (
	// ClassesFile is the metadata artifact mapping class names to source paths.
	ClassesFile = "classes.txt"

	// SourcesFile is the metadata artifact mapping source paths to content hashes.
	SourcesFile = "sources.txt"

	// DepsFile is the metadata artifact holding one dependency edge per line.
	DepsFile = "deps.txt"

	// FieldSep joins the two fields of every metadata record.
	FieldSep = "->"

	// MetaDirPrefix prefixes the per-source-tree metadata directory name.
	MetaDirPrefix = ".incjc-meta-"

	// TmpDirPrefix prefixes every scratch directory created during a build.
	TmpDirPrefix = "tmp-incjc-"

	// SourceExt is the suffix of compilable source files.
	SourceExt = ".java"

	// ClassExt is the suffix of compiled class files.
	ClassExt = ".class"

	// ModuleDescriptor is the class file compiled from module-info.java. It declares no class.
	ModuleDescriptor = "module-info" + ClassExt

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "incjc.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// metaKeyLen is the number of hex characters of the source dir digest used in the store name.
	metaKeyLen = 16
)

// MetaKey returns a stable identifier for an absolute source directory.
func MetaKey(absSourceDir string) string {
	sum := sha256.Sum256([]byte(absSourceDir))
	return hex.EncodeToString(sum[:])[:metaKeyLen]
}

// DefaultMetaPath returns the metadata directory for a source tree under the given root.
// It joins metaRoot and .incjc-meta-<key>.
func DefaultMetaPath(metaRoot, absSourceDir string) string {
	return filepath.Join(metaRoot, MetaDirPrefix+MetaKey(absSourceDir))
}

// IsWithin reports whether path is dir or lies below it. Both paths are absolute.
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ClassFileName maps a fully-qualified class name to its path relative to a classpath root.
func ClassFileName(className string) string {
	return strings.ReplaceAll(className, ".", string(filepath.Separator)) + ClassExt
}

// IsPlatformClass reports whether a class belongs to the platform and is therefore never tracked.
func IsPlatformClass(className string) bool {
	return strings.HasPrefix(className, "java.") ||
		strings.HasPrefix(className, "javax.") ||
		strings.HasPrefix(className, "javafx.")
}
