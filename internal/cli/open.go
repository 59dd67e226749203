package cli

import (
	"fmt"

	"github.com/agentx-labs/summon/internal/logging"
	"github.com/agentx-labs/summon/internal/platform"
	"github.com/spf13/cobra"
)

func newOpenCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <command>",
		Short: "Open the path stored for a command",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			needsStore: "true",
			"lookup":   "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()

			path, ok := a.cfg.Lookup(name)
			if !ok {
				fmt.Fprintf(out, "Command '%s' not found.\n", name)
				return nil
			}

			if err := a.Launcher.Open(cmd.Context(), path); err != nil {
				logging.Debug().Err(err).Str("command", name).Msg("launch failed")
				errorf(out, "Error: Failed to open file or folder.\n")
				return nil
			}
			fmt.Fprintln(out, platform.Quote(path))
			return nil
		},
	}
}
