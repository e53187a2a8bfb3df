package incremental_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/incjc/internal/core/domain"
)

// Fake sources declare their classes one per line:
//
//	class a.A uses b.B,c.C
//
// Lines starting with "//" are ignored, so comments change the content hash without changing classes.

type declaredClass struct {
	name string
	deps []string
}

func parseSource(content string) []declaredClass {
	var classes []declaredClass
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "class" {
			continue
		}
		c := declaredClass{name: fields[1]}
		if len(fields) == 4 && fields[2] == "uses" {
			c.deps = strings.Split(fields[3], ",")
		}
		classes = append(classes, c)
	}
	return classes
}

// fakeCompiler writes one class file per declared class. It fails when a
// dependency is neither compiled in the same call nor present on the classpath.
type fakeCompiler struct {
	sourceRoot string

	mu    sync.Mutex
	calls [][]string
}

func (c *fakeCompiler) Compile(_ context.Context, req domain.CompileRequest) (bool, error) {
	c.mu.Lock()
	c.calls = append(c.calls, append([]string(nil), req.Sources...))
	c.mu.Unlock()

	type output struct {
		path    string
		content string
	}
	declared := domain.NewSet()
	var outputs []output
	var pending []declaredClass

	for _, src := range req.Sources {
		data, err := os.ReadFile(src)
		if err != nil {
			return false, err
		}
		rel, err := filepath.Rel(c.sourceRoot, src)
		if err != nil {
			return false, err
		}
		for _, class := range parseSource(string(data)) {
			declared.Add(class.name)
			pending = append(pending, class)
			outputs = append(outputs, output{
				path:    filepath.Join(req.OutputDir, domain.ClassFileName(class.name)),
				content: fmt.Sprintf("%s|%s|%s\n", class.name, filepath.ToSlash(rel), strings.Join(class.deps, ",")),
			})
		}
	}

	for _, class := range pending {
		for _, dep := range class.deps {
			if declared.Has(dep) {
				continue
			}
			if _, err := os.Stat(filepath.Join(req.Classpath, domain.ClassFileName(dep))); err != nil {
				return false, nil
			}
		}
	}

	for _, out := range outputs {
		if err := os.MkdirAll(filepath.Dir(out.path), domain.DirPerm); err != nil {
			return false, err
		}
		if err := os.WriteFile(out.path, []byte(out.content), domain.FilePerm); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *fakeCompiler) Calls() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]string(nil), c.calls...)
}

// fakeAnalyzer reads the descriptors back from fake class files.
// Every class also reports a platform dependency, which must never reach the metadata.
type fakeAnalyzer struct{}

func (fakeAnalyzer) Describe(_ context.Context, classFiles []string) ([]domain.UnitDescriptor, error) {
	units := make([]domain.UnitDescriptor, 0, len(classFiles))
	for _, path := range classFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		parts := strings.Split(strings.TrimSpace(string(data)), "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("not a class file: %s", path)
		}
		deps := domain.NewSet("java.lang.Object")
		if parts[2] != "" {
			deps.Add(strings.Split(parts[2], ",")...)
		}
		units = append(units, domain.UnitDescriptor{
			Name:       parts[0],
			DependsOn:  deps,
			SourceFile: filepath.FromSlash(parts[1]),
		})
	}
	return units, nil
}
