package jdk

import (
	"context"
	"io"
	"os"

	"go.trai.ch/incjc/internal/core/domain"
)

// Compiler implements ports.Compiler with javac.
type Compiler struct {
	runner    *Runner
	classpath []string
	args      []string
	stdout    io.Writer
	stderr    io.Writer
}

// NewCompiler creates a Compiler streaming javac output to the process's stdout and stderr.
// classpath entries are appended after the request classpath; args precede the source list.
func NewCompiler(runner *Runner, classpath, args []string) *Compiler {
	return &Compiler{
		runner:    runner,
		classpath: classpath,
		args:      args,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects the compiler's output streams.
func (c *Compiler) SetOutput(stdout, stderr io.Writer) {
	c.stdout = stdout
	c.stderr = stderr
}

// Compile runs javac over req.Sources. An empty source list succeeds without running javac.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) (bool, error) {
	if len(req.Sources) == 0 {
		return true, nil
	}

	cp := joinClasspath(append([]string{req.Classpath}, c.classpath...)...)

	args := make([]string, 0, len(c.args)+4+len(req.Sources))
	args = append(args, c.args...)
	args = append(args, "-cp", cp, "-d", req.OutputDir)
	args = append(args, req.Sources...)

	code, err := c.runner.Run(ctx, javac, args, c.stdout, c.stderr)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}
