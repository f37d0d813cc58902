package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scripts...]",
		Short: "Apply script files to fresh sheets and print the results",
		Long: "Apply script files to fresh sheets and print the results.\n\n" +
			"Arguments are files, directories or glob patterns. Directories expand to the\n" +
			"*.yaml and *.yml files they contain. Without arguments the current directory is used.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := printOptions(cmd)
			if err != nil {
				return err
			}
			opts.KeepGoing, _ = cmd.Flags().GetBool("keep-going")

			return c.app.Run(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolP("keep-going", "k", false, "Log and skip rejected steps instead of stopping")
	addPrintFlags(cmd)
	return cmd
}
