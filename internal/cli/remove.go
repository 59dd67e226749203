package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:         "remove <command_name>",
		Aliases:     []string{"r"},
		Short:       "Remove a command",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{needsStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()

			if !a.cfg.Remove(name) {
				fmt.Fprintf(out, "Command '%s' not found.\n", name)
				return nil
			}
			if err := a.Store.Save(a.cfg); err != nil {
				errorf(out, "Error saving config: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "Command '%s' removed.\n", name)
			return nil
		},
	}
}
