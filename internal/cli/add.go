package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// pwdLiteral as the path argument stands for the current working directory.
const pwdLiteral = "pwd"

func newAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add <command_name> <PATH>",
		Aliases: []string{"a"},
		Short:   "Add or replace a command",
		Args:    cobra.ExactArgs(2),
		Annotations: map[string]string{
			needsStore:  "true",
			summaryArgs: "<command_name> <PATH|pwd>",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			out := cmd.OutOrStdout()

			fromPwd := path == pwdLiteral
			if fromPwd {
				getwd := a.Getwd
				if getwd == nil {
					getwd = os.Getwd
				}
				wd, err := getwd()
				if err != nil {
					errorf(out, "Error getting current directory.\n")
					return nil
				}
				path = wd
			}

			a.cfg.Set(name, path)
			if err := a.Store.Save(a.cfg); err != nil {
				errorf(out, "Error saving config: %v\n", err)
				return nil
			}

			if fromPwd {
				fmt.Fprintf(out, "Command '%s' added with current directory as path.\n", name)
			} else {
				fmt.Fprintf(out, "Command '%s' added with path '%s'.\n", name, path)
			}
			return nil
		},
	}
}
