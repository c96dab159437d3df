// Package commands implements the CLI commands for bakehouse.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bakehouse/internal/app"
	"go.trai.ch/bakehouse/internal/build"
)

// CLI represents the command line interface for bakehouse.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:   "bakehouse",
		Short: "Generate docker buildx bake files for pnpm and npm workspaces",
		Long: "bakehouse scans a JavaScript workspace, resolves the dependencies between its packages " +
			"and writes a docker buildx bake file with one target per package.\n" +
			"Running bakehouse without a subcommand is the same as running \"bakehouse generate\".",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// -v is the verbose shorthand, so --version has none.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "Path to the workspace root")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Bake file path, relative to the workspace root (default \"docker-bake.hcl\")")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Bake file format: hcl or json (default \"hcl\")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.components.Logger.SetVerbose(verbose)
	}
	rootCmd.RunE = c.runGenerate

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	rootCmd.Flags().Bool("refresh-stale", false, "Regenerate unmodified Dockerfiles whose inputs changed")

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

// SetOutput sets the destination of command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// options collects the persistent flags shared by every subcommand.
func options(cmd *cobra.Command) app.GenerateOptions {
	workspace, _ := cmd.Flags().GetString("workspace")
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	return app.GenerateOptions{
		Workspace: workspace,
		Output:    output,
		Format:    format,
	}
}
