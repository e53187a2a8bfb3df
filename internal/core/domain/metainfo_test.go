package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incjc/internal/core/domain"
)

const root = "/src"

func unit(name, source string, deps ...string) domain.UnitDescriptor {
	return domain.UnitDescriptor{Name: name, SourceFile: source, DependsOn: domain.NewSet(deps...)}
}

// chain builds C <- B <- A: A depends on B, B depends on C.
func chain() *domain.MetaInfo {
	m := domain.NewMetaInfo()
	m.AddSources(map[string]string{
		"/src/a/A.java": "1",
		"/src/b/B.java": "2",
		"/src/c/C.java": "3",
	})
	m.AddUnits(root, []domain.UnitDescriptor{
		unit("a.A", "a/A.java", "b.B", "java.lang.Object"),
		unit("b.B", "b/B.java", "c.C", "java.util.List"),
		unit("c.C", "c/C.java", "java.lang.String"),
	})
	return m
}

func TestMetaInfo_AffectedSources(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() *domain.MetaInfo
		changed domain.Set
		want    []string
	}{
		{
			name:    "transitive dependents are pulled in",
			setup:   chain,
			changed: domain.NewSet("/src/c/C.java"),
			want:    []string{"/src/a/A.java", "/src/b/B.java", "/src/c/C.java"},
		},
		{
			name:    "leaf change stays local",
			setup:   chain,
			changed: domain.NewSet("/src/a/A.java"),
			want:    []string{"/src/a/A.java"},
		},
		{
			name:    "unknown source has no classes",
			setup:   chain,
			changed: domain.NewSet("/src/d/D.java"),
			want:    nil,
		},
		{
			name: "cycles terminate",
			setup: func() *domain.MetaInfo {
				m := domain.NewMetaInfo()
				m.AddUnits(root, []domain.UnitDescriptor{
					unit("p.X", "p/X.java", "p.Y"),
					unit("p.Y", "p/Y.java", "p.X"),
					unit("p.Z", "p/Z.java"),
				})
				return m
			},
			changed: domain.NewSet("/src/p/X.java"),
			want:    []string{"/src/p/X.java", "/src/p/Y.java"},
		},
		{
			name: "nested classes map back to one source",
			setup: func() *domain.MetaInfo {
				m := domain.NewMetaInfo()
				m.AddUnits(root, []domain.UnitDescriptor{
					unit("p.Outer", "p/Outer.java"),
					unit("p.Outer$Inner", "p/Outer.java", "p.Outer"),
					unit("q.User", "q/User.java", "p.Outer$Inner"),
				})
				return m
			},
			changed: domain.NewSet("/src/p/Outer.java"),
			want:    []string{"/src/p/Outer.java", "/src/q/User.java"},
		},
		{
			name: "stale dependents without class records are ignored",
			setup: func() *domain.MetaInfo {
				m := chain()
				m.AddDependency("c.C", "gone.Ghost")
				return m
			},
			changed: domain.NewSet("/src/c/C.java"),
			want:    []string{"/src/a/A.java", "/src/b/B.java", "/src/c/C.java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup()
			got := m.AffectedSources(tt.changed)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestMetaInfo_AddUnits_FiltersPlatformClasses(t *testing.T) {
	m := chain()

	for _, e := range m.Edges() {
		assert.False(t, domain.IsPlatformClass(e.Dependency), "edge %v", e)
	}
	assert.Equal(t, []domain.Edge{
		{Dependency: "b.B", Dependent: "a.A"},
		{Dependency: "c.C", Dependent: "b.B"},
	}, m.Edges())
	assert.Equal(t, "/src/b/B.java", m.Classes()["b.B"])
}

func TestMetaInfo_ClassesBySources(t *testing.T) {
	m := chain()

	got := m.ClassesBySources(domain.NewSet("/src/a/A.java", "/src/c/C.java", "/src/x/X.java"))

	assert.Equal(t, []string{"a.A", "c.C"}, got.Sorted())
}

func TestMetaInfo_DeleteClassesAndDeps(t *testing.T) {
	m := chain()

	m.DeleteClassesAndDeps(domain.NewSet("b.B"))

	assert.Equal(t, []string{"a.A", "c.C"}, m.ClassNames())
	assert.Empty(t, m.Dependents("b.B"))
	assert.Empty(t, m.Dependents("c.C"), "b.B must not dangle as a dependent of c.C")
	assert.Empty(t, m.Edges())
}

func TestMetaInfo_DeleteClassesAndDeps_KeepsUnrelatedEdges(t *testing.T) {
	m := domain.NewMetaInfo()
	m.AddUnits(root, []domain.UnitDescriptor{
		unit("p.Base", "p/Base.java"),
		unit("p.Left", "p/Left.java", "p.Base"),
		unit("p.Right", "p/Right.java", "p.Base"),
	})

	m.DeleteClassesAndDeps(domain.NewSet("p.Left"))

	assert.Equal(t, []string{"p.Right"}, m.Dependents("p.Base").Sorted())
}

func TestMetaInfo_Sources(t *testing.T) {
	m := chain()

	m.AddSources(map[string]string{"/src/a/A.java": "changed", "/src/d/D.java": "4"})
	m.DeleteSources(domain.NewSet("/src/c/C.java"))

	hashes := m.SourceHashes()
	require.Len(t, hashes, 3)
	assert.Equal(t, "changed", hashes["/src/a/A.java"])
	assert.Equal(t, "4", hashes["/src/d/D.java"])
	assert.NotContains(t, hashes, "/src/c/C.java")

	hashes["/src/a/A.java"] = "mutated"
	assert.Equal(t, "changed", m.SourceHashes()["/src/a/A.java"], "returned map must be a copy")
}

func TestMetaInfo_Scenarios(t *testing.T) {
	t.Run("editing a dependency recompiles its dependent", func(t *testing.T) {
		m := domain.NewMetaInfo()
		m.AddUnits(root, []domain.UnitDescriptor{
			unit("A", "A.java"),
			unit("B", "B.java", "A"),
		})
		require.Equal(t, []string{"B"}, m.Dependents("A").Sorted())

		changed := domain.NewSet("/src/A.java")
		recompile := m.AffectedSources(changed).Union(changed)

		assert.Equal(t, []string{"/src/A.java", "/src/B.java"}, recompile.Sorted())
	})

	t.Run("unrelated sources stay untouched", func(t *testing.T) {
		m := domain.NewMetaInfo()
		m.AddUnits(root, []domain.UnitDescriptor{
			unit("A", "A.java"),
			unit("B", "B.java"),
		})

		changed := domain.NewSet("/src/B.java")
		recompile := m.AffectedSources(changed).Union(changed)

		assert.Equal(t, []string{"/src/B.java"}, recompile.Sorted())
	})
}
