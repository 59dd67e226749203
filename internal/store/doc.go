// Package store persists the alias table: a mapping from short command names
// to filesystem paths, kept as pretty-printed JSON. A Store is bound to an
// afero filesystem and an explicit file path so callers decide where the
// table lives; the CLI points it at config.json beside the executable.
package store
