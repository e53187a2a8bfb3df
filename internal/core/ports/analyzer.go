package ports

import (
	"context"

	"go.trai.ch/incjc/internal/core/domain"
)

// Analyzer inspects compiled class files.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	// Describe returns one descriptor per class file. Platform classes are excluded from DependsOn.
	// A class file whose name or source cannot be determined fails the whole call.
	Describe(ctx context.Context, classFiles []string) ([]domain.UnitDescriptor, error)
}
