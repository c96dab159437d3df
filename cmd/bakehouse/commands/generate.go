package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the bake file and any missing Dockerfiles",
		Args:  cobra.NoArgs,
		RunE:  c.runGenerate,
	}
	cmd.Flags().Bool("refresh-stale", false, "Regenerate unmodified Dockerfiles whose inputs changed")
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	opts := options(cmd)
	opts.RefreshStale, _ = cmd.Flags().GetBool("refresh-stale")
	return c.components.App.Generate(cmd.Context(), opts)
}
