package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/agentx-labs/summon/internal/logging"
	"github.com/spf13/afero"
)

// Config is the alias table as persisted on disk.
type Config struct {
	Commands map[string]string `json:"commands"`
}

// NewConfig returns an empty alias table.
func NewConfig() *Config {
	return &Config{Commands: make(map[string]string)}
}

// Set inserts or overwrites the path for name.
func (c *Config) Set(name, path string) {
	if c.Commands == nil {
		c.Commands = make(map[string]string)
	}
	c.Commands[name] = path
}

// Remove deletes name and reports whether it was present.
func (c *Config) Remove(name string) bool {
	if _, ok := c.Commands[name]; !ok {
		return false
	}
	delete(c.Commands, name)
	return true
}

// Lookup returns the path stored for name.
func (c *Config) Lookup(name string) (string, bool) {
	path, ok := c.Commands[name]
	return path, ok
}

// Names returns every command name in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Commands))
	for name := range c.Commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.Commands)
}

// Store reads and writes a Config at a fixed path on a filesystem.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a Store for the file at path on fsys.
func New(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the alias table. A missing file yields an empty table.
func (s *Store) Load() (*Config, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug().Str("path", s.path).Msg("store file absent, starting empty")
			return NewConfig(), nil
		}
		return nil, s.loadErr(fmt.Errorf("reading %s: %w", s.path, err))
	}

	if err := validate(data); err != nil {
		return nil, s.loadErr(fmt.Errorf("parsing %s: %w", s.path, err))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, s.loadErr(fmt.Errorf("decoding %s: %w", s.path, err))
	}
	if cfg.Commands == nil {
		cfg.Commands = make(map[string]string)
	}

	logging.Debug().Str("path", s.path).Int("entries", cfg.Len()).Msg("store loaded")
	return &cfg, nil
}

// Save writes cfg as indented JSON, creating or truncating the file.
func (s *Store) Save(cfg *Config) error {
	out := Config{Commands: cfg.Commands}
	if out.Commands == nil {
		out.Commands = map[string]string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return s.saveErr(fmt.Errorf("marshaling store: %w", err))
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return s.saveErr(fmt.Errorf("creating directory %s: %w", dir, err))
		}
	}

	f, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return s.saveErr(fmt.Errorf("opening %s: %w", s.path, err))
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return s.saveErr(fmt.Errorf("writing %s: %w", s.path, err))
	}
	if err := f.Close(); err != nil {
		return s.saveErr(fmt.Errorf("closing %s: %w", s.path, err))
	}

	logging.Debug().Str("path", s.path).Int("entries", len(out.Commands)).Msg("store saved")
	return nil
}

func (s *Store) loadErr(err error) error {
	return &ConfigError{Kind: LoadError, Path: s.path, Err: err}
}

func (s *Store) saveErr(err error) error {
	return &ConfigError{Kind: SaveError, Path: s.path, Err: err}
}

// Exists reports whether the store file is present.
func (s *Store) Exists() (bool, error) {
	return afero.Exists(s.fs, s.path)
}

// CheckWritable creates and removes a scratch file beside the store file.
func (s *Store) CheckWritable() error {
	dir := filepath.Dir(s.path)
	f, err := afero.TempFile(s.fs, dir, ".summon-check-*")
	if err != nil {
		return fmt.Errorf("creating scratch file in %s: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	if err := s.fs.Remove(name); err != nil {
		return fmt.Errorf("removing scratch file %s: %w", name, err)
	}
	return nil
}
