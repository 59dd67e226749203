package launcher

import (
	"context"
	"fmt"
)

// Launcher opens a filesystem path with its default application.
type Launcher interface {
	// Open starts the handler for path and returns without waiting for it.
	Open(ctx context.Context, path string) error
}

// SpawnError reports that the opener process could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
