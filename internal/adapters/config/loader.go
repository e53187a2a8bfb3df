// Package config provides the configuration loader for incjc.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	supportedVersion = "1"

	logFormatPretty = "pretty"
	logFormatJSON   = "json"

	envDebug     = "INCJC_DEBUG"
	envJDKHome   = "JDK_HOME"
	envJavaHome  = "JAVA_HOME"
	envClasspath = "CLASSPATH"
)

// Loader resolves the configuration from an optional incjc.yaml and the environment.
type Loader struct {
	Logger  ports.Logger
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:  logger,
		Getenv:  os.Getenv,
		HomeDir: os.UserHomeDir,
	}
}

// Load finds incjc.yaml in cwd or one of its parents and applies environment overrides.
// A missing file yields the defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := &domain.Config{WatchDebounce: domain.DefaultWatchDebounce}

	if path, ok := findConfigFile(cwd); ok {
		if err := l.loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	l.applyEnv(cfg)

	if cfg.MetaRoot == "" {
		home, err := l.HomeDir()
		if err != nil {
			l.Logger.Debug("home directory unknown: " + err.Error())
		} else {
			cfg.MetaRoot = home
		}
	}

	return cfg, nil
}

func (l *Loader) loadFile(path string, cfg *domain.Config) error {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + path)
	}

	dir := filepath.Dir(path)
	cfg.Path = path
	cfg.JDKHome = resolvePath(dir, file.JDKHome)
	cfg.MetaRoot = resolvePath(dir, file.MetaRoot)
	for _, entry := range file.Classpath {
		cfg.Classpath = append(cfg.Classpath, resolvePath(dir, entry))
	}
	cfg.CompilerArgs = append(cfg.CompilerArgs, file.CompilerArgs...)
	cfg.Exclude = append(cfg.Exclude, file.Exclude...)
	cfg.Debug = file.Debug

	switch file.LogFormat {
	case "", logFormatPretty:
	case logFormatJSON:
		cfg.LogJSON = true
	default:
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid logFormat"), "value", file.LogFormat)
	}

	if file.Watch != nil && file.Watch.Debounce != "" {
		d, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil || d < 0 {
			return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid watch.debounce"), "value", file.Watch.Debounce)
		}
		cfg.WatchDebounce = d
	}

	return nil
}

// applyEnv layers environment overrides on top of the file values.
func (l *Loader) applyEnv(cfg *domain.Config) {
	if domain.ParseDebugFlag(l.Getenv(envDebug)) {
		cfg.Debug = true
	}

	if cfg.JDKHome == "" {
		if home := l.Getenv(envJDKHome); home != "" {
			cfg.JDKHome = home
		} else if home := l.Getenv(envJavaHome); home != "" {
			cfg.JDKHome = home
		}
	}

	if cp := l.Getenv(envClasspath); cp != "" {
		cfg.Classpath = append(cfg.Classpath, cp)
	}
}

func findConfigFile(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfigFile
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	// Unknown keys are rejected; an empty file decodes to the zero value.
	decoder := yaml.NewDecoder(bytes.NewReader(configFile))
	decoder.KnownFields(true)
	if parseErr := decoder.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return nil
}
