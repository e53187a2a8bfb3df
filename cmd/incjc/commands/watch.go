package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <classpath> <sourcepath>",
		Short: "Build, then rebuild whenever sources change",
		Args:  exactPaths(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Ignore existing metadata for the first build")

	return cmd
}
