package cli

import "github.com/spf13/cobra"

func newHelpCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "help",
		Aliases: []string{"h"},
		Short:   "Print the usage summary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSummary(cmd.OutOrStdout(), a.operations())
			return nil
		},
	}
}
