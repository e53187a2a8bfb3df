package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/incjc/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <sourcepath>",
		Short: "Remove the metadata of a source tree, forcing a full build next time",
		Args:  exactPaths(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			metaDir, err := cmd.Flags().GetString("meta-dir")
			if err != nil {
				return err
			}

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				SourceDir: args[0],
				MetaDir:   metaDir,
				Debug:     debug,
			})
		},
	}
}
