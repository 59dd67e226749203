package launcher

import (
	"context"
	"os/exec"

	"github.com/agentx-labs/summon/internal/logging"
	"github.com/agentx-labs/summon/internal/platform"
)

// Shell opens paths by spawning a platform opener command.
type Shell struct {
	Opener platform.Opener
}

// NewShell returns a Shell using opener.
func NewShell(opener platform.Opener) *Shell {
	return &Shell{Opener: opener}
}

// Open spawns the opener for path. The child is released immediately: its
// output is not captured and its exit status is never observed.
func (s *Shell) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := s.Opener.Command(path)
	// exec.Command rather than CommandContext: the opener must outlive us.
	cmd := exec.Command(name, args...)

	if err := cmd.Start(); err != nil {
		logging.Debug().Err(err).Str("opener", name).Msg("spawn failed")
		return &SpawnError{Command: name, Err: err}
	}

	logging.Debug().Str("opener", name).Int("pid", cmd.Process.Pid).Str("path", path).Msg("spawned")
	if err := cmd.Process.Release(); err != nil {
		logging.Debug().Err(err).Int("pid", cmd.Process.Pid).Msg("release failed")
	}
	return nil
}

// Misconfigured stands in for a Shell whose opener setting could not be
// parsed. Every Open fails with a *SpawnError carrying Err.
type Misconfigured struct {
	// Setting is the raw opener value, reported as the command.
	Setting string
	Err     error
}

// Open always fails.
func (m *Misconfigured) Open(ctx context.Context, path string) error {
	logging.Debug().Err(m.Err).Str("opener", m.Setting).Str("path", path).Msg("opener unusable")
	return &SpawnError{Command: m.Setting, Err: m.Err}
}
