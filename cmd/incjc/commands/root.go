// Package commands implements the CLI commands for incjc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/incjc/internal/app"
	"go.trai.ch/incjc/internal/build"
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Usage is printed when the command line does not name a classpath and a source directory.
const Usage = "Usage: incjc <classpath> <sourcepath>"

// CLI represents the command line interface for incjc.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Watch(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "incjc <classpath> <sourcepath>",
		Short:         "Incremental javac: recompile changed sources and their dependents",
		Long: `Compile the sources below <sourcepath> into <classpath>, recompiling only changed
sources and the sources depending on them.

A classpath named like a subcommand (build, watch, clean, version) must follow "--"
or use the build subcommand: "incjc -- clean src" or "incjc build clean src".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          exactPaths(2),
		RunE:          c.runBuild,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("meta-dir", "", "Metadata directory (default: derived from the source directory)")
	rootCmd.Flags().BoolP("force", "f", false, "Ignore existing metadata and recompile all sources")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return zerr.Wrap(domain.ErrIllegalArguments, err.Error())
	})

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// exactPaths rejects any positional argument count other than n with domain.ErrIllegalArguments.
func exactPaths(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return zerr.With(
				zerr.Wrap(domain.ErrIllegalArguments, fmt.Sprintf("expected %d arguments", n)),
				"got", len(args),
			)
		}
		return nil
	}
}

func buildOptions(cmd *cobra.Command, args []string) (app.BuildOptions, error) {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return app.BuildOptions{}, err
	}
	metaDir, err := cmd.Flags().GetString("meta-dir")
	if err != nil {
		return app.BuildOptions{}, err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return app.BuildOptions{}, err
	}

	return app.BuildOptions{
		Classpath: args[0],
		SourceDir: args[1],
		MetaDir:   metaDir,
		Force:     force,
		Debug:     debug,
	}, nil
}
