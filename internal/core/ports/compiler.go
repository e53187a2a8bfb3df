package ports

import (
	"context"

	"go.trai.ch/incjc/internal/core/domain"
)

// Compiler invokes the external compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs the compiler, streaming its output to the process's own stdout and stderr.
	// It reports whether the compiler exited successfully. A launch failure is returned as an error.
	Compile(ctx context.Context, req domain.CompileRequest) (bool, error)
}
