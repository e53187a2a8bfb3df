package incremental_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/incjc/internal/adapters/fs"
	"go.trai.ch/incjc/internal/adapters/metastore"
	"go.trai.ch/incjc/internal/adapters/telemetry"
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports/mocks"
	"go.trai.ch/incjc/internal/engine/incremental"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	t        *testing.T
	src      string
	cp       string
	meta     string
	compiler *fakeCompiler
	logger   *mocks.MockLogger
	builder  *incremental.Builder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		t:        t,
		src:      filepath.Join(root, "src"),
		cp:       filepath.Join(root, "classes"),
		meta:     filepath.Join(root, "meta"),
		compiler: &fakeCompiler{sourceRoot: filepath.Join(root, "src")},
	}
	require.NoError(t, os.MkdirAll(f.src, domain.DirPerm))

	ctrl := gomock.NewController(t)
	f.logger = mocks.NewMockLogger(ctrl)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	walker := fsadapter.NewWalker()
	f.builder = incremental.NewBuilder(
		metastore.NewStore(),
		walker,
		fsadapter.NewHasher(),
		fsadapter.NewStager(walker),
		f.compiler,
		fakeAnalyzer{},
		f.logger,
		telemetry.NewNoOpTracer(),
	)
	return f
}

func (f *fixture) write(rel, content string) string {
	f.t.Helper()
	path := filepath.Join(f.src, rel)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(f.t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func (f *fixture) remove(rel string) {
	f.t.Helper()
	require.NoError(f.t, os.Remove(filepath.Join(f.src, rel)))
}

func (f *fixture) request() domain.BuildRequest {
	return domain.BuildRequest{ClasspathDir: f.cp, SourceDir: f.src, MetaDir: f.meta}
}

func (f *fixture) build() *domain.BuildResult {
	f.t.Helper()
	result, err := f.builder.Build(context.Background(), f.request())
	require.NoError(f.t, err)
	return result
}

func (f *fixture) sources(rels ...string) []string {
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, filepath.Join(f.src, rel))
	}
	return out
}

func (f *fixture) loadMeta() *domain.MetaInfo {
	f.t.Helper()
	meta, err := metastore.NewStore().Load(f.meta)
	require.NoError(f.t, err)
	return meta
}

// snapshot maps every file below dir to its content.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestBuild_FullBuild(t *testing.T) {
	f := newFixture(t)
	f.write("a/A.java", "class a.A\nclass a.A$1 uses a.A\n")
	f.write("b/B.java", "class b.B uses a.A\n")

	result := f.build()

	assert.Equal(t, domain.ModeFull, result.Mode)
	assert.Equal(t, f.sources("a/A.java", "b/B.java"), result.Compiled)
	assert.Equal(t, 3, result.Classes)
	assert.Equal(t, map[string]string{
		"a/A.class":   "a.A|a/A.java|\n",
		"a/A$1.class": "a.A$1|a/A.java|a.A\n",
		"b/B.class":   "b.B|b/B.java|a.A\n",
	}, snapshot(t, f.cp))

	meta := f.loadMeta()
	assert.Equal(t, []string{"a.A", "a.A$1", "b.B"}, meta.ClassNames())
	assert.Equal(t, domain.NewSet("a.A$1", "b.B"), meta.Dependents("a.A"))
	assert.Equal(t, filepath.Join(f.src, "a", "A.java"), meta.Classes()["a.A$1"])
	for _, edge := range meta.Edges() {
		assert.False(t, domain.IsPlatformClass(edge.Dependency), edge.Dependency)
	}
}

func TestBuild_FullBuildWipesClasspath(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	require.NoError(t, os.MkdirAll(filepath.Join(f.cp, "old"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(f.cp, "old", "Stale.class"), []byte("stale"), domain.FilePerm))

	f.build()

	assert.Equal(t, map[string]string{"A.class": "A|A.java|\n"}, snapshot(t, f.cp))
}

func TestBuild_ClasspathNotDirectory(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.build()
	meta := snapshot(t, f.meta)

	require.NoError(t, os.RemoveAll(f.cp))
	require.NoError(t, os.WriteFile(f.cp, []byte("not a directory"), domain.FilePerm))

	req := f.request()
	req.Force = true
	_, err := f.builder.Build(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClasspathNotDirectory))
	assert.Len(t, f.compiler.Calls(), 1)
	assert.Equal(t, meta, snapshot(t, f.meta))
}

func TestBuild_ClasspathContainsSources(t *testing.T) {
	tests := []struct {
		name      string
		classpath func(f *fixture) string
	}{
		{name: "same directory", classpath: func(f *fixture) string { return f.src }},
		{name: "parent directory", classpath: func(f *fixture) string { return filepath.Dir(f.src) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			source := f.write("A.java", "class A\n")

			req := f.request()
			req.ClasspathDir = tt.classpath(f)
			_, err := f.builder.Build(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrClasspathContainsSources)
			assert.FileExists(t, source)
			assert.Empty(t, f.compiler.Calls())
		})
	}
}

func TestBuild_NoSources(t *testing.T) {
	f := newFixture(t)

	result := f.build()

	assert.Equal(t, domain.ModeUpToDate, result.Mode)
	assert.NoDirExists(t, f.cp)
	assert.NoDirExists(t, f.meta)
}

func TestBuild_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.write("a/A.java", "class a.A\n")
	f.write("b/B.java", "class b.B uses a.A\n")
	f.build()

	classes := snapshot(t, f.cp)
	meta := snapshot(t, f.meta)

	result := f.build()

	assert.Equal(t, domain.ModeUpToDate, result.Mode)
	assert.Empty(t, result.Compiled)
	assert.Equal(t, 2, result.Classes)
	assert.Len(t, f.compiler.Calls(), 1)
	assert.Equal(t, classes, snapshot(t, f.cp))
	assert.Equal(t, meta, snapshot(t, f.meta))
}

func TestBuild_EditPullsInDependents(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("B.java", "class B uses A\n")
	f.build()

	f.write("A.java", "// edited\nclass A\n")
	result := f.build()

	assert.Equal(t, domain.ModeIncremental, result.Mode)
	assert.Equal(t, f.sources("A.java", "B.java"), result.Compiled)
	assert.Equal(t, [][]string{f.sources("A.java", "B.java"), f.sources("A.java", "B.java")}, f.compiler.Calls())
}

func TestBuild_EditLeavesUnrelatedClassesUntouched(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("B.java", "class B\n")
	f.build()

	classA := filepath.Join(f.cp, "A.class")
	before, err := os.Stat(classA)
	require.NoError(t, err)

	f.write("B.java", "// edited\nclass B\n")
	result := f.build()

	assert.Equal(t, f.sources("B.java"), result.Compiled)
	after, err := os.Stat(classA)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestBuild_TransitiveAffectedness(t *testing.T) {
	f := newFixture(t)
	f.write("c/C.java", "class c.C\n")
	f.write("b/B.java", "class b.B uses c.C\n")
	f.write("a/A.java", "class a.A uses b.B\n")
	f.write("d/D.java", "class d.D\n")
	f.build()

	f.write("c/C.java", "// edited\nclass c.C\n")
	result := f.build()

	assert.Equal(t, f.sources("a/A.java", "b/B.java", "c/C.java"), result.Compiled)
}

func TestBuild_NewSource(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.build()

	f.write("B.java", "class B uses A\n")
	result := f.build()

	assert.Equal(t, f.sources("B.java"), result.Compiled)
	assert.Equal(t, map[string]string{
		"A.class": "A|A.java|\n",
		"B.class": "B|B.java|A\n",
	}, snapshot(t, f.cp))
	assert.Equal(t, domain.NewSet("B"), f.loadMeta().Dependents("A"))
}

func TestBuild_DeleteLeafSourceWithoutRecompiling(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("Z.java", "class Z uses A\nclass Z$1 uses Z\n")
	f.build()

	f.remove("Z.java")
	result := f.build()

	assert.Equal(t, domain.ModeIncremental, result.Mode)
	assert.Empty(t, result.Compiled)
	assert.Equal(t, f.sources("Z.java"), result.Deleted)
	assert.Len(t, f.compiler.Calls(), 1)
	assert.Equal(t, map[string]string{"A.class": "A|A.java|\n"}, snapshot(t, f.cp))

	meta := f.loadMeta()
	assert.Equal(t, []string{"A"}, meta.ClassNames())
	assert.Empty(t, meta.Edges())
	assert.NotContains(t, meta.SourceHashes(), filepath.Join(f.src, "Z.java"))
}

func TestBuild_DeleteSourceStillReferenced(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("B.java", "class B uses A\n")
	f.build()

	// B still references A, so recompiling B must fail and leave everything as it was.
	f.remove("A.java")
	classes := snapshot(t, f.cp)
	meta := snapshot(t, f.meta)

	_, err := f.builder.Build(context.Background(), f.request())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.Equal(t, f.sources("B.java"), f.compiler.Calls()[1])
	assert.Equal(t, classes, snapshot(t, f.cp))
	assert.Equal(t, meta, snapshot(t, f.meta))

	// Dropping the reference compiles B alone and removes A entirely.
	f.write("B.java", "class B\n")
	result := f.build()

	assert.Equal(t, f.sources("B.java"), result.Compiled)
	assert.Equal(t, f.sources("A.java"), result.Deleted)
	assert.Equal(t, map[string]string{"B.class": "B|B.java|\n"}, snapshot(t, f.cp))
	assert.Equal(t, []string{"B"}, f.loadMeta().ClassNames())
	assert.Empty(t, f.loadMeta().Edges())
}

func TestBuild_CompilerFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("B.java", "class B uses A\n")
	f.build()

	classes := snapshot(t, f.cp)
	meta := snapshot(t, f.meta)

	f.write("B.java", "class B uses Missing\n")
	_, err := f.builder.Build(context.Background(), f.request())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.Equal(t, classes, snapshot(t, f.cp))
	assert.Equal(t, meta, snapshot(t, f.meta))

	// The failed edit is still pending on the next run.
	f.write("B.java", "// fixed\nclass B uses A\n")
	result := f.build()
	assert.Equal(t, f.sources("B.java"), result.Compiled)
}

func TestBuild_EquivalentToFullRebuild(t *testing.T) {
	f := newFixture(t)
	f.write("a/A.java", "class a.A\nclass a.A$Inner uses a.A\n")
	f.write("b/B.java", "class b.B uses a.A\n")
	f.write("c/C.java", "class c.C uses b.B\n")
	f.write("d/D.java", "class d.D\n")
	f.build()

	edits := []func(){
		func() { f.write("a/A.java", "class a.A\n") },
		func() { f.write("e/E.java", "class e.E uses d.D\n") },
		func() { f.write("c/C.java", "class c.C uses e.E\n") },
		func() { f.remove("b/B.java") },
		func() { f.write("d/D.java", "// edited\nclass d.D\nclass d.D$1 uses d.D\n") },
		func() { f.remove("c/C.java") },
	}

	for _, edit := range edits {
		edit()
		f.build()

		fresh := newFixture(t)
		fresh.src = f.src
		fresh.compiler.sourceRoot = f.src
		result := fresh.build()
		require.Equal(t, domain.ModeFull, result.Mode)

		assert.Equal(t, snapshot(t, fresh.cp), snapshot(t, f.cp))
		assert.Equal(t, snapshot(t, fresh.meta), snapshot(t, f.meta))
	}
}

func TestBuild_Force(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.build()

	req := f.request()
	req.Force = true
	result, err := f.builder.Build(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.ModeFull, result.Mode)
	assert.Len(t, f.compiler.Calls(), 2)
}

func TestBuild_CorruptMetadataFallsBackToFullBuild(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.build()

	require.NoError(t, os.WriteFile(filepath.Join(f.meta, domain.DepsFile), []byte("garbage\n"), domain.FilePerm))
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	result := f.build()

	assert.Equal(t, domain.ModeFull, result.Mode)
	assert.Equal(t, []string{"A"}, f.loadMeta().ClassNames())
}

func TestBuild_FailedFullBuildDropsMetadata(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.build()

	f.write("A.java", "class A uses Missing\n")
	req := f.request()
	req.Force = true
	_, err := f.builder.Build(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompilationFailed))
	assert.NoDirExists(t, f.meta)
}

func TestBuild_Exclude(t *testing.T) {
	f := newFixture(t)
	f.write("A.java", "class A\n")
	f.write("generated/G.java", "class generated.G uses Missing\n")

	req := f.request()
	req.Exclude = []string{"generated/**"}
	result, err := f.builder.Build(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, f.sources("A.java"), result.Compiled)
}
