package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval CELL=TEXT...",
		Short: "Set cells from the command line and print the sheet",
		Example: "  grid eval A1=2 B1==A1*3\n" +
			"  grid eval --print both A1=1 A2==A1+1",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := printOptions(cmd)
			if err != nil {
				return err
			}
			opts.KeepGoing, _ = cmd.Flags().GetBool("keep-going")

			return c.app.Eval(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolP("keep-going", "k", false, "Log and skip rejected assignments instead of stopping")
	addPrintFlags(cmd)
	return cmd
}
