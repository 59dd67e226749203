package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Opener is a command line that opens a path with its default association.
type Opener struct {
	Name string
	Args []string
	// QuotePath wraps the path in double quotes before appending it. Needed
	// when the opener re-parses its arguments, as powershell does.
	QuotePath bool
}

// Default returns the opener for the running OS.
func Default() Opener {
	return For(runtime.GOOS)
}

// For returns the built-in opener for goos.
func For(goos string) Opener {
	switch goos {
	case "windows":
		return Opener{Name: "powershell", Args: []string{"start"}, QuotePath: true}
	case "darwin":
		return Opener{Name: "open"}
	default:
		return Opener{Name: "xdg-open"}
	}
}

// Parse builds an opener from a whitespace-separated command line such as
// "code --reuse-window". The path is appended unquoted.
func Parse(line string) (Opener, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Opener{}, fmt.Errorf("opener command is empty")
	}
	return Opener{Name: fields[0], Args: fields[1:]}, nil
}

// Command returns the program and arguments that open path.
func (o Opener) Command(path string) (string, []string) {
	arg := path
	if o.QuotePath {
		arg = Quote(path)
	}
	args := make([]string, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	args = append(args, arg)
	return o.Name, args
}

// String renders the opener as a command line.
func (o Opener) String() string {
	return strings.Join(append([]string{o.Name}, o.Args...), " ")
}

// Quote wraps path in double quotes.
func Quote(path string) string {
	return `"` + path + `"`
}
