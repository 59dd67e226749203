package launcher

import "context"

// Recorder is a Launcher that records every path it is asked to open.
// When Err is set, Open records the path and returns Err.
type Recorder struct {
	Err    error
	Opened []string
}

// Open records path.
func (r *Recorder) Open(_ context.Context, path string) error {
	r.Opened = append(r.Opened, path)
	return r.Err
}
