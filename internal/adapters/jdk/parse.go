package jdk

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/incjc/internal/core/domain"
)

var (
	// javapHeader matches the source attribute line and the type declaration that follows it.
	javapHeader = regexp.MustCompile(`Compiled from "(.*\.java)"\r?\n.*?(?:class|interface) ([^\s<]+).*\{`)

	// jdepsEdge matches an indented "from -> to" line of jdeps -v.
	jdepsEdge = regexp.MustCompile(`^\s+(\S+)\s+->\s+(\S+)`)
)

// ParseJavap extracts one descriptor per class listed in javap output.
// DependsOn is initialized empty; SourceFile is relative to the source root.
func ParseJavap(out string) []domain.UnitDescriptor {
	matches := javapHeader.FindAllStringSubmatch(out, -1)
	units := make([]domain.UnitDescriptor, 0, len(matches))
	for _, m := range matches {
		units = append(units, domain.UnitDescriptor{
			Name:       m[2],
			DependsOn:  domain.NewSet(),
			SourceFile: sourcePath(m[2], m[1]),
		})
	}
	return units
}

// ParseJdeps extracts class-level dependency edges from jdeps -v output.
func ParseJdeps(out string) []domain.Edge {
	var edges []domain.Edge
	for line := range strings.Lines(out) {
		m := jdepsEdge.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		edges = append(edges, domain.Edge{Dependency: m[2], Dependent: m[1]})
	}
	return edges
}

// sourcePath places fileName in the package directory of className.
func sourcePath(className, fileName string) string {
	i := strings.LastIndexByte(className, '.')
	if i < 0 {
		return fileName
	}
	pkg := strings.ReplaceAll(className[:i], ".", string(filepath.Separator))
	return filepath.Join(pkg, fileName)
}
