package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the bake file on disk is up to date",
		Long: "check computes the bake file generate would write and compares it with the one on disk.\n" +
			"It exits non-zero when they differ and never writes any file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.components.App.Check(cmd.Context(), options(cmd))
		},
	}
}
