package jdk

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBatchSize is the number of class files passed to one javap or jdeps run.
const DefaultBatchSize = 256

// Analyzer implements ports.Analyzer with javap and jdeps.
type Analyzer struct {
	runner    *Runner
	logger    ports.Logger
	batchSize int
}

// NewAnalyzer creates an Analyzer describing at most batchSize class files per tool run.
// A non-positive batchSize selects DefaultBatchSize.
func NewAnalyzer(runner *Runner, logger ports.Logger, batchSize int) *Analyzer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Analyzer{
		runner:    runner,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Describe returns the descriptors of classFiles ordered by class name.
// Module descriptors are skipped.
func (a *Analyzer) Describe(ctx context.Context, classFiles []string) ([]domain.UnitDescriptor, error) {
	classFiles = slices.DeleteFunc(slices.Clone(classFiles), func(path string) bool {
		return filepath.Base(path) == domain.ModuleDescriptor
	})
	if len(classFiles) == 0 {
		return nil, nil
	}

	units := make([]domain.UnitDescriptor, 0, len(classFiles))
	for batch := range slices.Chunk(classFiles, a.batchSize) {
		described, err := a.describeBatch(ctx, batch)
		if err != nil {
			return nil, err
		}
		units = append(units, described...)
	}

	slices.SortFunc(units, func(x, y domain.UnitDescriptor) int {
		return strings.Compare(x.Name, y.Name)
	})
	return units, nil
}

func (a *Analyzer) describeBatch(ctx context.Context, batch []string) ([]domain.UnitDescriptor, error) {
	listing, err := a.runner.Output(ctx, javap, batch)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalyzerFailed.Error())
	}

	units := ParseJavap(listing)
	if len(units) != len(batch) {
		err := zerr.With(zerr.Wrap(domain.ErrAnalyzerFailed, "could not determine the name and source of every class file"),
			"class_files", len(batch))
		return nil, zerr.With(err, "described", len(units))
	}

	byName := make(map[string]int, len(units))
	for i, u := range units {
		byName[u.Name] = i
	}

	report, err := a.runner.Output(ctx, jdeps, append([]string{"-v"}, batch...))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAnalyzerFailed.Error())
	}

	for _, edge := range ParseJdeps(report) {
		if domain.IsPlatformClass(edge.Dependency) {
			continue
		}
		i, ok := byName[edge.Dependent]
		if !ok {
			a.logger.Debug("ignoring dependency of unknown class " + edge.Dependent)
			continue
		}
		units[i].DependsOn.Add(edge.Dependency)
	}

	return units, nil
}
