package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/incjc/internal/app"
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type stubBuilder struct {
	err error
}

func (b stubBuilder) Build(_ context.Context, _ domain.BuildRequest) (*domain.BuildResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &domain.BuildResult{Mode: domain.ModeUpToDate}, nil
}

func newProvider(t *testing.T, builderErr error) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockStore := mocks.NewMockMetaStore(ctrl)
	mockWatcher := mocks.NewMockWatcher(ctrl)

	mockLogger.EXPECT().SetDebug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockStore.EXPECT().Exists(gomock.Any()).Return(false).AnyTimes()

	application := app.New(stubBuilder{err: builderErr}, mockStore, mockWatcher, mockLogger, &domain.Config{
		MetaRoot:      t.TempDir(),
		WatchDebounce: domain.DefaultWatchDebounce,
	})

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}, mockLogger
}

func TestRun_Version(t *testing.T) {
	provider, _ := newProvider(t, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_Build(t *testing.T) {
	provider, _ := newProvider(t, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{t.TempDir(), t.TempDir()}, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

func TestRun_IllegalArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "one argument", args: []string{"classes"}},
		{name: "three arguments", args: []string{"classes", "src", "extra"}},
		{name: "unknown flag", args: []string{"--bogus", "classes", "src"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, _ := newProvider(t, nil)

			stderr := new(bytes.Buffer)
			exitCode := run(context.Background(), tt.args, stderr, provider)
			assert.Equal(t, 3, exitCode)
			assert.Contains(t, stderr.String(), "Usage: incjc <classpath> <sourcepath>")
		})
	}
}

func TestRun_ClasspathNotDirectory(t *testing.T) {
	provider, mockLogger := newProvider(t, nil)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	cp := filepath.Join(t.TempDir(), "classes.jar")
	assert.NoError(t, os.WriteFile(cp, []byte("x"), 0o600))

	exitCode := run(context.Background(), []string{cp, t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 3, exitCode)
}

func TestRun_ClasspathContainsSources(t *testing.T) {
	provider, mockLogger := newProvider(t, nil)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	src := t.TempDir()
	exitCode := run(context.Background(), []string{src, src}, new(bytes.Buffer), provider)
	assert.Equal(t, 3, exitCode)
}

func TestRun_CompilationFailed(t *testing.T) {
	provider, mockLogger := newProvider(t, zerr.Wrap(domain.ErrCompilationFailed, "compiler exited with a non-zero status"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{t.TempDir(), t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_UnexpectedFailure(t *testing.T) {
	provider, mockLogger := newProvider(t, errors.New("disk on fire"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{t.TempDir(), t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 2, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unexpected", err: errors.New("init failed"), want: 2},
		{name: "config", err: zerr.Wrap(domain.ErrConfigParseFailed, "yaml: line 1"), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := func(_ context.Context) (*app.Components, func(), error) {
				return nil, nil, tt.err
			}

			stderr := new(bytes.Buffer)
			exitCode := run(context.Background(), []string{"version"}, stderr, provider)
			assert.Equal(t, tt.want, exitCode)
			assert.Contains(t, stderr.String(), "Error: ")
		})
	}
}
