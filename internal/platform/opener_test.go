package platform

import (
	"runtime"
	"testing"
)

func TestFor(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"windows", "powershell", []string{"start", `"C:\My Docs"`}},
		{"darwin", "open", []string{`C:\My Docs`}},
		{"linux", "xdg-open", []string{`C:\My Docs`}},
		{"freebsd", "xdg-open", []string{`C:\My Docs`}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := For(tt.goos).Command(`C:\My Docs`)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestDefaultMatchesRuntime(t *testing.T) {
	if got, want := Default().Name, For(runtime.GOOS).Name; got != want {
		t.Errorf("Default().Name = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	o, err := Parse("  code --reuse-window ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, args := o.Command("/home/u/proj")
	if name != "code" {
		t.Errorf("name = %q, want code", name)
	}
	if len(args) != 2 || args[0] != "--reuse-window" || args[1] != "/home/u/proj" {
		t.Errorf("args = %q", args)
	}
	if o.String() != "code --reuse-window" {
		t.Errorf("String() = %q", o.String())
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse("   "); err == nil {
		t.Error("expected error for blank opener")
	}
}

func TestCommandDoesNotAliasArgs(t *testing.T) {
	o := Opener{Name: "x", Args: make([]string, 1, 4)}
	_, first := o.Command("a")
	_, second := o.Command("b")
	if first[1] != "a" || second[1] != "b" {
		t.Errorf("Command reused the opener's backing array: %q %q", first, second)
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("/tmp/a b"); got != `"/tmp/a b"` {
		t.Errorf("Quote = %s", got)
	}
}
