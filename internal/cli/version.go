package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/agentx-labs/summon/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), displayVersion(a.Build.Version), orUnknown(a.Build.Commit), orUnknown(a.Build.Date))
			return nil
		},
	}
}

// displayVersion normalises a semver build version ("v1.2" → "1.2.0") and
// passes anything else, such as "dev", through unchanged.
func displayVersion(v string) string {
	if v == "" {
		return "dev"
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return sv.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
