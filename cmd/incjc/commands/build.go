package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <classpath> <sourcepath>",
		Short: "Build once; same as the root command",
		Args:  exactPaths(2),
		RunE:  c.runBuild,
	}

	cmd.Flags().BoolP("force", "f", false, "Ignore existing metadata and recompile all sources")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}
	return c.app.Build(cmd.Context(), opts)
}
