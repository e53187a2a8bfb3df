// Package main is the entry point for incjc.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/incjc/cmd/incjc/commands"
	"go.trai.ch/incjc/internal/app"
	"go.trai.ch/incjc/internal/core/domain"
	_ "go.trai.ch/incjc/internal/wiring"
)

// Exit codes.
const (
	exitOK            = 0
	exitCompileFailed = 1
	exitFailure       = 2
	exitConfigError   = 3
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitCode(err)
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrIllegalArguments) {
			_, _ = fmt.Fprintln(stderr, commands.Usage)
			return exitConfigError
		}
		components.Logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode classifies err: configuration errors exit with 3, compiler failures with 1,
// and everything else with 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrIllegalArguments),
		errors.Is(err, domain.ErrClasspathNotDirectory),
		errors.Is(err, domain.ErrClasspathContainsSources),
		errors.Is(err, domain.ErrSourceDirNotFound),
		errors.Is(err, domain.ErrConfigParseFailed):
		return exitConfigError
	case errors.Is(err, domain.ErrCompilationFailed):
		return exitCompileFailed
	default:
		return exitFailure
	}
}
