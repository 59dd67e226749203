package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Aliases:     []string{"s"},
		Short:       "List every command, sorted by name",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{needsStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Present commands:")
			for _, name := range a.cfg.Names() {
				path, _ := a.cfg.Lookup(name)
				fmt.Fprintf(out, "%s -> %s\n", nameColor.Sprint(name), path)
			}
			return nil
		},
	}
}
