// Package incremental decides between full and incremental builds and stages partial recompilations.
package incremental

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs one build at a time against an output classpath and its metadata store.
type Builder struct {
	store    ports.MetaStore
	finder   ports.FileFinder
	hasher   ports.Hasher
	stager   ports.Stager
	compiler ports.Compiler
	analyzer ports.Analyzer
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewBuilder creates a new Builder.
func NewBuilder(
	store ports.MetaStore,
	finder ports.FileFinder,
	hasher ports.Hasher,
	stager ports.Stager,
	compiler ports.Compiler,
	analyzer ports.Analyzer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Builder {
	return &Builder{
		store:    store,
		finder:   finder,
		hasher:   hasher,
		stager:   stager,
		compiler: compiler,
		analyzer: analyzer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Build compiles the sources below req.SourceDir into req.ClasspathDir.
// A compiler failure returns domain.ErrCompilationFailed and leaves the classpath
// and the metadata store as they were.
func (b *Builder) Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	ctx, span := b.tracer.Start(ctx, "build")
	defer span.End()

	result, err := b.build(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("mode", string(result.Mode))
	span.SetAttribute("compiled", len(result.Compiled))
	span.SetAttribute("deleted", len(result.Deleted))
	span.SetAttribute("classes", result.Classes)
	return result, nil
}

func (b *Builder) build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	if err := checkClasspath(req); err != nil {
		return nil, err
	}

	sources, err := b.discover(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		b.logger.Info("No sources found.")
		return &domain.BuildResult{Mode: domain.ModeUpToDate}, nil
	}
	b.logger.Debug("All sources:\n" + strings.Join(sources, "\n"))

	meta, err := b.loadMeta(req)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return b.fullBuild(ctx, req, sources)
	}
	return b.incrementalBuild(ctx, req, meta, sources)
}

// checkClasspath rejects a classpath that may not be wiped: a non-directory, or one holding the sources.
func checkClasspath(req domain.BuildRequest) error {
	if domain.IsWithin(req.SourceDir, req.ClasspathDir) {
		err := zerr.With(zerr.Wrap(domain.ErrClasspathContainsSources, "invalid classpath"), "path", req.ClasspathDir)
		return zerr.With(err, "sources", req.SourceDir)
	}
	if info, err := os.Stat(req.ClasspathDir); err == nil && !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrClasspathNotDirectory, "invalid classpath"), "path", req.ClasspathDir)
	}
	return nil
}

func (b *Builder) discover(ctx context.Context, req domain.BuildRequest) ([]string, error) {
	_, span := b.tracer.Start(ctx, "discover")
	defer span.End()

	sources, err := b.finder.Find(req.SourceDir, domain.SourceExt, req.Exclude)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("sources", len(sources))
	return sources, nil
}

// loadMeta returns the previous generation, or nil when a full build is required.
func (b *Builder) loadMeta(req domain.BuildRequest) (*domain.MetaInfo, error) {
	if req.Force {
		b.logger.Info("Full rebuild requested. Recompiling all sources.")
		return nil, nil
	}
	if !b.store.Exists(req.MetaDir) {
		b.logger.Info(fmt.Sprintf("No meta information found in %s. Recompiling all sources.", req.MetaDir))
		return nil, nil
	}

	meta, err := b.store.Load(req.MetaDir)
	if errors.Is(err, domain.ErrMetadataCorrupt) {
		b.logger.Warn(fmt.Sprintf("Meta information in %s is unusable (%v). Recompiling all sources.", req.MetaDir, err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (b *Builder) fullBuild(ctx context.Context, req domain.BuildRequest, sources []string) (*domain.BuildResult, error) {
	hashes, err := b.hashSources(sources)
	if err != nil {
		return nil, err
	}

	// A previous generation must not outlive the classpath it describes.
	if err := b.store.Remove(req.MetaDir); err != nil {
		return nil, err
	}
	if err := b.stager.ResetDir(req.ClasspathDir); err != nil {
		return nil, err
	}

	if err := b.compile(ctx, domain.CompileRequest{
		Sources:   sources,
		Classpath: req.ClasspathDir,
		OutputDir: req.ClasspathDir,
	}); err != nil {
		return nil, err
	}

	meta := domain.NewMetaInfo()
	meta.AddSources(hashes)
	if err := b.describe(ctx, req, meta, req.ClasspathDir); err != nil {
		return nil, err
	}
	if err := b.save(ctx, req.MetaDir, meta); err != nil {
		return nil, err
	}

	return &domain.BuildResult{
		Mode:     domain.ModeFull,
		Compiled: sources,
		Classes:  len(meta.ClassNames()),
	}, nil
}

func (b *Builder) incrementalBuild(
	ctx context.Context,
	req domain.BuildRequest,
	meta *domain.MetaInfo,
	sources []string,
) (*domain.BuildResult, error) {
	hashes, err := b.hashSources(sources)
	if err != nil {
		return nil, err
	}

	changed, deleted := diffSources(meta.SourceHashes(), hashes)
	b.logSet("Changed / new sources", changed)
	b.logSet("Deleted sources", deleted)

	current := domain.NewSet(sources...)
	recompile := meta.AffectedSources(changed.Union(deleted)).Union(changed).Intersect(current)

	if recompile.Len() == 0 && deleted.Len() == 0 {
		b.logger.Info("Nothing to compile.")
		return &domain.BuildResult{Mode: domain.ModeUpToDate, Classes: len(meta.ClassNames())}, nil
	}

	// Classes of recompiled sources are superseded; classes of deleted sources are gone.
	skip := meta.ClassesBySources(recompile.Union(deleted))
	result := &domain.BuildResult{
		Mode:     domain.ModeIncremental,
		Compiled: recompile.Sorted(),
		Deleted:  deleted.Sorted(),
	}

	if recompile.Len() == 0 {
		b.logger.Info("Nothing to compile. Removing classes of deleted sources.")
		meta.DeleteClassesAndDeps(skip)
		meta.DeleteSources(deleted)
		if err := b.save(ctx, req.MetaDir, meta); err != nil {
			return nil, err
		}
		if err := b.stager.DeleteClasses(req.ClasspathDir, skip); err != nil {
			return nil, err
		}
		result.Classes = len(meta.ClassNames())
		return result, nil
	}

	b.logger.Info("Sources to compile:\n" + strings.Join(result.Compiled, "\n"))

	scratchClasspath, cleanupClasspath, err := b.stager.TempDir()
	if err != nil {
		return nil, err
	}
	defer cleanupClasspath()

	scratchOutput, cleanupOutput, err := b.stager.TempDir()
	if err != nil {
		return nil, err
	}
	defer cleanupOutput()

	if err := b.stager.CopyClasses(req.ClasspathDir, scratchClasspath, skip); err != nil {
		return nil, err
	}

	if err := b.compile(ctx, domain.CompileRequest{
		Sources:   result.Compiled,
		Classpath: scratchClasspath,
		OutputDir: scratchOutput,
	}); err != nil {
		return nil, err
	}

	meta.DeleteClassesAndDeps(skip)
	meta.DeleteSources(deleted)
	meta.AddSources(subset(hashes, recompile))
	if err := b.describe(ctx, req, meta, scratchOutput); err != nil {
		return nil, err
	}
	if err := b.save(ctx, req.MetaDir, meta); err != nil {
		return nil, err
	}

	if err := b.stager.DeleteClasses(req.ClasspathDir, skip); err != nil {
		return nil, err
	}
	if err := b.stager.CopyClasses(scratchOutput, req.ClasspathDir, nil); err != nil {
		return nil, err
	}

	result.Classes = len(meta.ClassNames())
	return result, nil
}

func (b *Builder) hashSources(sources []string) (map[string]string, error) {
	hashes := make(map[string]string, len(sources))
	for _, path := range sources {
		hash, err := b.hasher.HashFile(path)
		if err != nil {
			return nil, err
		}
		hashes[path] = hash
	}
	return hashes, nil
}

func (b *Builder) compile(ctx context.Context, req domain.CompileRequest) error {
	ctx, span := b.tracer.Start(ctx, "compile")
	defer span.End()
	span.SetAttribute("sources", len(req.Sources))

	ok, err := b.compiler.Compile(ctx, req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrCompilationFailed, "compiler exited with a non-zero status"),
			"sources", len(req.Sources))
		span.RecordError(err)
		return err
	}
	return nil
}

// describe analyzes every class file below dir and merges the results into meta.
func (b *Builder) describe(ctx context.Context, req domain.BuildRequest, meta *domain.MetaInfo, dir string) error {
	ctx, span := b.tracer.Start(ctx, "analyze")
	defer span.End()

	classFiles, err := b.finder.Find(dir, domain.ClassExt, nil)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("class_files", len(classFiles))

	units, err := b.analyzer.Describe(ctx, classFiles)
	if err != nil {
		span.RecordError(err)
		return err
	}
	meta.AddUnits(req.SourceDir, units)
	return nil
}

func (b *Builder) save(ctx context.Context, dir string, meta *domain.MetaInfo) error {
	_, span := b.tracer.Start(ctx, "save")
	defer span.End()

	if err := b.store.Save(dir, meta); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (b *Builder) logSet(title string, set domain.Set) {
	if set.Len() == 0 {
		b.logger.Debug("No " + strings.ToLower(title) + " found")
		return
	}
	b.logger.Debug(title + ":\n" + strings.Join(set.Sorted(), "\n"))
}

// diffSources compares stored hashes with the current ones.
// changed holds new sources and sources whose hash differs; deleted holds stored sources that are gone.
func diffSources(previous, current map[string]string) (changed, deleted domain.Set) {
	changed = domain.NewSet()
	for path, hash := range current {
		if old, ok := previous[path]; !ok || old != hash {
			changed.Add(path)
		}
	}

	deleted = domain.NewSet(slices.Collect(maps.Keys(previous))...).
		Difference(domain.NewSet(slices.Collect(maps.Keys(current))...))
	return changed, deleted
}

func subset(hashes map[string]string, keep domain.Set) map[string]string {
	out := make(map[string]string, keep.Len())
	for path := range keep {
		if hash, ok := hashes[path]; ok {
			out[path] = hash
		}
	}
	return out
}
