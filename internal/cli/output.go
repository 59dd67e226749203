package cli

import (
	"io"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	nameColor = color.New(color.FgCyan)
)

// errorf prints a failure line in red when color is enabled.
func errorf(w io.Writer, format string, args ...interface{}) {
	errColor.Fprintf(w, format, args...)
}
