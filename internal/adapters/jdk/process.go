package jdk

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner launches JDK tools and drains their output streams.
type Runner struct {
	logger    ports.Logger
	toolchain Toolchain
}

// NewRunner creates a Runner resolving tools through toolchain.
func NewRunner(logger ports.Logger, toolchain Toolchain) *Runner {
	return &Runner{
		logger:    logger,
		toolchain: toolchain,
	}
}

// Run starts tool and copies its stdout and stderr to the given writers until both streams close.
// The exit status is returned as a code; an error means the tool could not be run at all.
func (r *Runner) Run(ctx context.Context, tool string, args []string, stdout, stderr io.Writer) (int, error) {
	path := r.toolchain.Path(tool)
	r.logger.Debug("exec: " + path + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // tool path comes from the configured JDK
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return -1, startError(err, path)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return -1, startError(err, path)
	}
	if err := cmd.Start(); err != nil {
		return -1, startError(err, path)
	}

	// Both pipes are read to EOF before Wait closes them.
	var drains errgroup.Group
	drains.Go(func() error { return drain(stdout, outPipe) })
	drains.Go(func() error { return drain(stderr, errPipe) })
	drainErr := drains.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return -1, zerr.With(zerr.Wrap(ctx.Err(), "process interrupted"), "tool", path)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return -1, zerr.With(zerr.Wrap(waitErr, "process wait failed"), "tool", path)
		}
		return exitErr.ExitCode(), nil
	}
	if drainErr != nil {
		return -1, zerr.With(zerr.Wrap(drainErr, "failed to forward process output"), "tool", path)
	}
	return 0, nil
}

// Output runs tool and returns its stdout. Stderr lines go to the debug log.
// A non-zero exit status is an error carrying the captured stderr.
func (r *Runner) Output(ctx context.Context, tool string, args []string) (string, error) {
	var stdout, stderr bytes.Buffer
	log := &logWriter{logger: r.logger, prefix: tool + ": "}

	code, err := r.Run(ctx, tool, args, &stdout, io.MultiWriter(&stderr, log))
	log.Flush()
	if err != nil {
		return "", err
	}
	if code != 0 {
		failure := zerr.With(zerr.Wrap(domain.ErrProcessFailed, tool+" failed"), "exit_code", code)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			failure = zerr.With(failure, "stderr", msg)
		}
		return "", failure
	}
	return stdout.String(), nil
}

// drain copies r to w. After a write failure the rest of r is discarded so the child never blocks.
func drain(w io.Writer, r io.Reader) error {
	if _, err := io.Copy(w, r); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

func startError(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrProcessStartFailed, err.Error()), "tool", path)
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Debug(w.prefix + strings.TrimRight(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs a trailing partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.logger.Debug(w.prefix + string(w.buf))
		w.buf = nil
	}
}
