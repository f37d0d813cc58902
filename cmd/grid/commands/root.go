// Package commands implements the CLI commands for grid.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/grid/internal/app"
	"go.trai.ch/grid/internal/build"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for grid.
type CLI struct {
	app     Application
	setJSON func(bool)
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, patterns []string, opts app.RunOptions) error
	Eval(ctx context.Context, assignments []string, opts app.RunOptions) error
	Serve(ctx context.Context, addr string) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONSwitch registers the callback the --json flag toggles.
func WithJSONSwitch(fn func(bool)) Option {
	return func(c *CLI) {
		c.setJSON = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "grid",
		Short:         "Evaluate spreadsheet scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs && c.setJSON != nil {
			c.setJSON(true)
		}
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newServeCmd())
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

// addPrintFlags registers the flags shared by commands that print a table.
func addPrintFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("print", "p", "", "Table to print: values, texts, both or none (default: the script's choice)")
	cmd.Flags().Int("max-cells", app.DefaultMaxPrintCells, "Refuse to print tables with more cells than this")
}

// printOptions reads the flags registered by addPrintFlags.
func printOptions(cmd *cobra.Command) (app.RunOptions, error) {
	name, _ := cmd.Flags().GetString("print")
	maxCells, _ := cmd.Flags().GetInt("max-cells")

	mode, ok := domain.ParsePrintMode(name)
	if !ok {
		return app.RunOptions{}, zerr.With(zerr.New("unknown print mode"), "print", name)
	}
	return app.RunOptions{
		Output:        cmd.OutOrStdout(),
		Print:         mode,
		MaxPrintCells: maxCells,
	}, nil
}
