// Package app holds the use cases behind the command line: build, watch and clean.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/incjc/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs one incremental build.
type Builder interface {
	Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error)
}

// App resolves command line input into build requests and drives the builder.
type App struct {
	builder Builder
	store   ports.MetaStore
	watcher ports.Watcher
	logger  ports.Logger
	config  *domain.Config
}

// BuildOptions carries the arguments of a build or watch invocation.
type BuildOptions struct {
	Classpath string
	SourceDir string
	// MetaDir overrides the metadata location derived from the source directory.
	MetaDir string
	Force   bool
	Debug   bool
}

// CleanOptions carries the arguments of a clean invocation.
type CleanOptions struct {
	SourceDir string
	MetaDir   string
	Debug     bool
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new App. Loggers implementing SetJSON follow cfg.LogJSON.
func New(
	builder Builder,
	store ports.MetaStore,
	w ports.Watcher,
	logger ports.Logger,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		cfg = &domain.Config{WatchDebounce: domain.DefaultWatchDebounce}
	}
	if j, ok := logger.(jsonSwitcher); ok {
		j.SetJSON(cfg.LogJSON)
	}
	return &App{
		builder: builder,
		store:   store,
		watcher: w,
		logger:  logger,
		config:  cfg,
	}
}

// Build runs a single build of opts.SourceDir into opts.Classpath.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	a.logger.SetDebug(a.config.Debug || opts.Debug)

	req, err := a.request(opts)
	if err != nil {
		return err
	}

	_, err = a.run(ctx, req)
	return err
}

// Watch builds once and then rebuilds whenever sources below opts.SourceDir change.
// It returns nil when ctx is cancelled. Compilation failures are reported and watching continues.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	a.logger.SetDebug(a.config.Debug || opts.Debug)

	req, err := a.request(opts)
	if err != nil {
		return err
	}

	if err := a.rebuild(ctx, req); err != nil {
		return err
	}
	req.Force = false

	if err := a.watcher.Start(ctx, req.SourceDir); err != nil {
		return err
	}
	defer func() {
		if stopErr := a.watcher.Stop(); stopErr != nil {
			a.logger.Warn(fmt.Sprintf("failed to stop watcher: %v", stopErr))
		}
	}()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.config.WatchDebounce, func(paths []string) {
		a.logger.Debug("Changed:\n" + strings.Join(paths, "\n"))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if relevant(req, event) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info(fmt.Sprintf("Watching %s for changes. Press Ctrl+C to stop.", req.SourceDir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if err := a.rebuild(ctx, req); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// Clean removes the metadata store of opts.SourceDir so the next build is a full one.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	a.logger.SetDebug(a.config.Debug || opts.Debug)

	src, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", opts.SourceDir)
	}
	metaDir, err := a.metaDir(src, opts.MetaDir)
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(metaDir); errors.Is(statErr, fs.ErrNotExist) {
		a.logger.Info(fmt.Sprintf("No meta information found in %s.", metaDir))
		return nil
	}

	a.logger.Info(fmt.Sprintf("removing %s...", metaDir))
	if err := a.store.Remove(metaDir); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", metaDir))
	return nil
}

// rebuild runs one watch-mode build. Compilation failures are logged and swallowed.
func (a *App) rebuild(ctx context.Context, req domain.BuildRequest) error {
	_, err := a.run(ctx, req)
	if errors.Is(err, domain.ErrCompilationFailed) {
		a.logger.Error(err)
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	result, err := a.builder.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(result.Compiled) > 0 || len(result.Deleted) > 0 {
		a.logger.Info(fmt.Sprintf("%s build finished: %d compiled, %d deleted, %d classes tracked.",
			result.Mode, len(result.Compiled), len(result.Deleted), result.Classes))
	}
	return result, nil
}

// request normalizes opts into a build request and validates the directories it names.
func (a *App) request(opts BuildOptions) (domain.BuildRequest, error) {
	cp, err := filepath.Abs(opts.Classpath)
	if err != nil {
		return domain.BuildRequest{}, zerr.With(zerr.Wrap(err, "failed to resolve classpath"), "path", opts.Classpath)
	}
	src, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return domain.BuildRequest{}, zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", opts.SourceDir)
	}

	if info, statErr := os.Stat(src); statErr != nil || !info.IsDir() {
		return domain.BuildRequest{}, zerr.With(zerr.Wrap(domain.ErrSourceDirNotFound, "invalid source directory"), "path", src)
	}

	metaDir, err := a.metaDir(src, opts.MetaDir)
	if err != nil {
		return domain.BuildRequest{}, err
	}

	req := domain.BuildRequest{
		ClasspathDir: cp,
		SourceDir:    src,
		MetaDir:      metaDir,
		Exclude:      a.config.Exclude,
		Force:        opts.Force,
	}

	if domain.IsWithin(src, cp) {
		err := zerr.With(zerr.Wrap(domain.ErrClasspathContainsSources, "invalid classpath"), "path", cp)
		return domain.BuildRequest{}, zerr.With(err, "sources", src)
	}

	info, statErr := os.Stat(cp)
	switch {
	case statErr == nil && !info.IsDir():
		return domain.BuildRequest{}, zerr.With(zerr.Wrap(domain.ErrClasspathNotDirectory, "invalid classpath"), "path", cp)
	case errors.Is(statErr, fs.ErrNotExist) && !req.Force && a.store.Exists(metaDir):
		a.logger.Warn(fmt.Sprintf("Classpath %s does not exist. Recompiling all sources.", cp))
		req.Force = true
	}

	return req, nil
}

// metaDir returns override when set, else the default store location for src below the meta root.
func (a *App) metaDir(src, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to resolve meta directory"), "path", override)
		}
		return abs, nil
	}
	if a.config.MetaRoot == "" {
		return "", domain.ErrHomeDirUnknown
	}
	return domain.DefaultMetaPath(a.config.MetaRoot, src), nil
}

// relevant reports whether event can change the build outcome for req.
func relevant(req domain.BuildRequest, event ports.WatchEvent) bool {
	if event.Path == req.ClasspathDir || strings.HasPrefix(event.Path, req.ClasspathDir+string(filepath.Separator)) {
		return false
	}
	if strings.HasSuffix(event.Path, domain.SourceExt) {
		return true
	}
	// A removed or renamed directory may have held sources.
	return event.Operation == ports.OpRemove || event.Operation == ports.OpRename
}
