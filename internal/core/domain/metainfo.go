package domain

import (
	"maps"
	"path/filepath"
	"slices"
)

// Edge is one dependency relation: Dependent requires Dependency.
type Edge struct {
	Dependency string
	Dependent  string
}

// MetaInfo is one metadata generation: source hashes, class origins and the reverse dependency graph.
// It is owned by a single build invocation and is not safe for concurrent use.
type MetaInfo struct {
	// sources maps an absolute source path to its content hash.
	sources map[string]string
	// classes maps a fully-qualified class name to its absolute source path.
	classes map[string]string
	// deps maps a class to the classes that depend on it.
	deps map[string]Set
}

// NewMetaInfo returns an empty generation.
func NewMetaInfo() *MetaInfo {
	return &MetaInfo{
		sources: make(map[string]string),
		classes: make(map[string]string),
		deps:    make(map[string]Set),
	}
}

// AddSources upserts source hashes.
func (m *MetaInfo) AddSources(hashes map[string]string) {
	maps.Copy(m.sources, hashes)
}

// DeleteSources drops the records of the given sources.
func (m *MetaInfo) DeleteSources(sources Set) {
	for src := range sources {
		delete(m.sources, src)
	}
}

// AddClass records that a class was produced from a source.
func (m *MetaInfo) AddClass(name, source string) {
	m.classes[name] = source
}

// AddDependency records that dependent requires dependency.
func (m *MetaInfo) AddDependency(dependency, dependent string) {
	set, ok := m.deps[dependency]
	if !ok {
		set = NewSet()
		m.deps[dependency] = set
	}
	set.Add(dependent)
}

// AddUnits merges freshly analyzed units. Source files are resolved against sourceRoot.
// Edges towards platform classes are dropped.
func (m *MetaInfo) AddUnits(sourceRoot string, units []UnitDescriptor) {
	for _, u := range units {
		m.AddClass(u.Name, filepath.Join(sourceRoot, u.SourceFile))
		for dep := range u.DependsOn {
			if IsPlatformClass(dep) {
				continue
			}
			m.AddDependency(dep, u.Name)
		}
	}
}

// ClassesBySources returns the classes whose recorded source is in sources.
func (m *MetaInfo) ClassesBySources(sources Set) Set {
	out := NewSet()
	for class, src := range m.classes {
		if sources.Has(src) {
			out.Add(class)
		}
	}
	return out
}

// AffectedSources returns the sources of every class that transitively depends on a class
// produced from one of the changed sources, including those classes themselves.
// Changed sources without class records contribute nothing.
func (m *MetaInfo) AffectedSources(changed Set) Set {
	seed := m.ClassesBySources(changed)

	reached := seed.Clone()
	queue := seed.Sorted()
	for len(queue) > 0 {
		class := queue[0]
		queue = queue[1:]
		for dependent := range m.deps[class] {
			if reached.Has(dependent) {
				continue
			}
			reached.Add(dependent)
			queue = append(queue, dependent)
		}
	}

	out := NewSet()
	for class := range reached {
		// Dependents without a class record are stale edges.
		if src, ok := m.classes[class]; ok {
			out.Add(src)
		}
	}
	return out
}

// DeleteClassesAndDeps removes the classes' records, their outgoing edge sets,
// and every occurrence of them as a dependent.
func (m *MetaInfo) DeleteClassesAndDeps(classes Set) {
	for class := range classes {
		delete(m.classes, class)
		delete(m.deps, class)
	}
	for dependency, dependents := range m.deps {
		maps.DeleteFunc(dependents, func(dependent string, _ struct{}) bool {
			return classes.Has(dependent)
		})
		if dependents.Len() == 0 {
			delete(m.deps, dependency)
		}
	}
}

// ClassNames returns every recorded class, sorted.
func (m *MetaInfo) ClassNames() []string {
	return slices.Sorted(maps.Keys(m.classes))
}

// SourceHashes returns a copy of the source hash records.
func (m *MetaInfo) SourceHashes() map[string]string {
	return maps.Clone(m.sources)
}

// Classes returns a copy of the class records.
func (m *MetaInfo) Classes() map[string]string {
	return maps.Clone(m.classes)
}

// Dependents returns the classes that directly depend on class.
func (m *MetaInfo) Dependents(class string) Set {
	return m.deps[class].Clone()
}

// Edges returns every dependency edge ordered by dependency, then dependent.
func (m *MetaInfo) Edges() []Edge {
	var edges []Edge
	for _, dependency := range slices.Sorted(maps.Keys(m.deps)) {
		for _, dependent := range m.deps[dependency].Sorted() {
			edges = append(edges, Edge{Dependency: dependency, Dependent: dependent})
		}
	}
	return edges
}
