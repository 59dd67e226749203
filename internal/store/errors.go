package store

// ErrorKind distinguishes a failed load from a failed save.
type ErrorKind int

const (
	// LoadError means the store file could not be read, parsed, or did not
	// match the expected shape.
	LoadError ErrorKind = iota
	// SaveError means the store file could not be opened, serialized, or written.
	SaveError
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case LoadError:
		return "load"
	case SaveError:
		return "save"
	default:
		return "unknown"
	}
}

// ConfigError reports a store I/O failure. Err carries the underlying cause.
type ConfigError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
