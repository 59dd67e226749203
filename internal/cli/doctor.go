package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/agentx-labs/summon/internal/branding"
	"github.com/agentx-labs/summon/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the store file and opener command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.runDoctor(cmd.OutOrStdout())
			return nil
		},
	}
}

// runDoctor prints one line per check. Failures are reported, never returned.
func (a *App) runDoctor(w io.Writer) {
	fmt.Fprintln(w, "Store check:")
	path := a.Store.Path()
	okLine(w, "store file is %s", path)

	exists, err := a.Store.Exists()
	switch {
	case err != nil:
		failLine(w, "%s: %v", path, err)
	case !exists:
		missLine(w, "%s does not exist (created on first -add)", path)
	default:
		cfg, loadErr := a.Store.Load()
		if loadErr != nil {
			failLine(w, "%v", loadErr)
		} else {
			okLine(w, "%d command(s) loaded", cfg.Len())
		}
	}

	if err := a.Store.CheckWritable(); err != nil {
		failLine(w, "store directory is not writable: %v", err)
	} else {
		okLine(w, "store directory is writable")
	}

	fmt.Fprintln(w, "Opener check:")
	switch {
	case a.OpenerErr != nil:
		failLine(w, "%v", a.OpenerErr)
	case a.Opener.Name == "":
		skipLine(w, "no opener configured")
	default:
		if bin, err := exec.LookPath(a.Opener.Name); err != nil {
			failLine(w, "%s not found on PATH", a.Opener.Name)
		} else {
			okLine(w, "%s (%s)", a.Opener, bin)
		}
	}

	if a.Settings != nil {
		fmt.Fprintln(w, "Settings check:")
		settingsPath := config.SettingsPath(a.Settings.Dir)
		if _, err := os.Stat(settingsPath); err != nil {
			skipLine(w, "no settings file at %s", settingsPath)
		} else {
			okLine(w, "settings read from %s", settingsPath)
		}
		infoLine(w, "log level %s", a.Settings.LogLevel)
		for _, key := range config.Keys {
			if name := branding.EnvVar(key); os.Getenv(name) != "" {
				infoLine(w, "%s is set", name)
			}
		}
	}
}

func okLine(w io.Writer, format string, args ...interface{}) {
	statusLine(w, okColor, "[ OK ]", format, args...)
}

func failLine(w io.Writer, format string, args ...interface{}) {
	statusLine(w, errColor, "[FAIL]", format, args...)
}

func missLine(w io.Writer, format string, args ...interface{}) {
	statusLine(w, warnColor, "[MISS]", format, args...)
}

func skipLine(w io.Writer, format string, args ...interface{}) {
	statusLine(w, warnColor, "[SKIP]", format, args...)
}

func infoLine(w io.Writer, format string, args ...interface{}) {
	statusLine(w, nameColor, "[INFO]", format, args...)
}

func statusLine(w io.Writer, c *color.Color, marker, format string, args ...interface{}) {
	c.Fprint(w, "  "+marker+" ")
	fmt.Fprintf(w, format+"\n", args...)
}
