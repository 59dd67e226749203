package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/summon/internal/branding"
	"github.com/agentx-labs/summon/internal/config"
	"github.com/agentx-labs/summon/internal/launcher"
	"github.com/agentx-labs/summon/internal/logging"
	"github.com/agentx-labs/summon/internal/platform"
	"github.com/agentx-labs/summon/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Exit codes. Every outcome that is reported to the user exits with
// ExitSuccess, a store load failure included. ExitFailure is left for errors
// raised by cobra itself.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Command annotations.
const (
	// needsStore marks operations that need the alias table loaded first.
	needsStore = "needs-store"
	// summaryArgs overrides the argument part of an operation's line in the
	// no-argument summary.
	summaryArgs = "summary-args"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App holds the dependencies of one invocation.
type App struct {
	Store    *store.Store
	Launcher launcher.Launcher
	// Opener is the command Launcher spawns; -doctor checks it is installed.
	Opener platform.Opener
	// OpenerErr is set when the opener setting could not be parsed.
	OpenerErr error
	// Settings is optional; -doctor reports on it when set.
	Settings *config.Settings
	// Getwd resolves the "pwd" path argument. Defaults to os.Getwd.
	Getwd  func() (string, error)
	Build  BuildInfo
	Stdout io.Writer

	cfg *store.Config
}

// reportedError is returned once the failure has already been printed. It
// stops the invocation without changing the exit code.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute(version, commit, date string) int {
	build := BuildInfo{Version: version, Commit: commit, Date: date}
	return execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, build)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, build BuildInfo) int {
	logging.Init(logging.Config{Level: logging.WarnLevel, Output: stderr, Pretty: true})

	dir, err := config.ExeDir()
	if err != nil {
		logging.Warn().Err(err).Msg("resolving paths against the working directory")
		dir = "."
	}
	settings := loadSettings(dir)

	logging.Init(logging.Config{
		Level:  logging.ParseLevel(settings.LogLevel),
		Output: stderr,
		Pretty: true,
	})
	if settings.NoColor {
		color.NoColor = true
	}

	app := &App{
		Store:    store.New(afero.NewOsFs(), settings.StorePath),
		Settings: settings,
		Getwd:    os.Getwd,
		Build:    build,
		Stdout:   stdout,
	}

	// A bad opener only matters once something is launched.
	opener, err := settings.OpenerCommand()
	if err != nil {
		app.OpenerErr = err
		app.Launcher = &launcher.Misconfigured{Setting: settings.Opener, Err: err}
	} else {
		app.Opener = opener
		app.Launcher = launcher.NewShell(opener)
	}
	return app.Run(ctx, args)
}

// loadSettings never fails: an unreadable settings file in dir is logged and
// the environment and built-in defaults are used instead.
func loadSettings(dir string) *config.Settings {
	settings, err := config.LoadFrom(dir)
	if err != nil {
		logging.Warn().Err(err).Msg("ignoring settings file")
		return config.Defaults(dir)
	}
	return settings
}

// Run dispatches args (without the program name) and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if args == nil {
		// Cobra falls back to os.Args when given nil.
		args = []string{}
	}

	root := a.newRootCmd()
	if a.Stdout != nil {
		root.SetOut(a.Stdout)
		root.SetErr(a.Stdout)
	}

	var err error
	if len(args) > 0 && isCompletionRequest(args[0]) {
		// Cobra routes these to its hidden completion command before RunE,
		// so hand them to the lookup path directly.
		root.SetContext(ctx)
		err = root.RunE(root, args)
	} else {
		root.SetArgs(args)
		err = root.ExecuteContext(ctx)
	}

	if err != nil {
		var reported *reportedError
		if errors.As(err, &reported) {
			return ExitSuccess
		}
		errorf(root.OutOrStdout(), "Error: %v\n", err)
		return ExitFailure
	}
	return ExitSuccess
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// operations returns the dash-option commands in usage order.
func (a *App) operations() []*cobra.Command {
	return []*cobra.Command{
		newAddCmd(a),
		newRemoveCmd(a),
		newShowCmd(a),
		newVersionCmd(a),
		newDoctorCmd(a),
		newHelpCmd(a),
	}
}

func (a *App) newRootCmd() *cobra.Command {
	ops := a.operations()
	openCmd := newOpenCmd(a)

	byFlag := make(map[string]*cobra.Command)
	for _, op := range ops {
		for _, flag := range optionNames(op) {
			byFlag[flag] = op
		}
	}

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` keeps a table of short names for files and folders and
opens them with the system's default application.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printSummary(cmd.OutOrStdout(), ops)
				return nil
			}

			op, rest := openCmd, args
			if found, ok := byFlag[args[0]]; ok {
				op, rest = found, args[1:]
			}
			return a.dispatch(cmd, op, rest)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// dispatch loads the store when op needs it, checks the argument count and
// runs op. A wrong argument count prints op's usage line and is not an error.
func (a *App) dispatch(root, op *cobra.Command, args []string) error {
	op.SetOut(root.OutOrStdout())
	op.SetErr(root.ErrOrStderr())
	op.SetContext(root.Context())

	if op.Annotations[needsStore] == "true" {
		cfg, err := a.Store.Load()
		if err != nil {
			errorf(root.OutOrStdout(), "Error loading %s: %v\n", filepath.Base(a.Store.Path()), err)
			return &reportedError{err: err}
		}
		a.cfg = cfg
	}

	if err := op.ValidateArgs(args); err != nil {
		logging.Debug().Err(err).Str("op", op.Name()).Msg("argument count mismatch")
		fmt.Fprintf(root.OutOrStdout(), "Usage: %s\n", usageLine(op))
		return nil
	}

	return op.RunE(op, args)
}

// optionNames returns the dash forms an operation answers to, e.g. -add and -a.
func optionNames(op *cobra.Command) []string {
	names := []string{"-" + op.Name()}
	for _, alias := range op.Aliases {
		names = append(names, "-"+alias)
	}
	return names
}

// usageLine renders the line printed on an argument-count mismatch, e.g.
// "summon <-add | -a> <command_name> <PATH>".
func usageLine(op *cobra.Command) string {
	return renderUsage(op, strings.TrimSpace(strings.TrimPrefix(op.Use, op.Name())))
}

// summaryLine renders op's line in the no-argument summary.
func summaryLine(op *cobra.Command) string {
	if args, ok := op.Annotations[summaryArgs]; ok {
		return renderUsage(op, args)
	}
	return usageLine(op)
}

func renderUsage(op *cobra.Command, args string) string {
	head := branding.CLIName()
	if op.Annotations["lookup"] != "true" {
		head += " <" + strings.Join(optionNames(op), " | ") + ">"
	}
	return strings.TrimSpace(head + " " + args)
}

func printSummary(w io.Writer, ops []*cobra.Command) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "%s <command>\n", branding.CLIName())
	for _, op := range ops {
		fmt.Fprintln(w, summaryLine(op))
	}
}
