package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentx-labs/summon/internal/branding"
	"github.com/agentx-labs/summon/internal/platform"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Setting keys. Each maps to the environment variable branding.EnvVar(key).
const (
	KeyStore    = "config"
	KeyOpener   = "opener"
	KeyLogLevel = "log_level"
	KeyNoColor  = "no_color"
)

// Keys lists every setting in the order -doctor reports them.
var Keys = []string{KeyStore, KeyOpener, KeyLogLevel, KeyNoColor}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	// StorePath is the alias store file.
	StorePath string
	// Opener overrides the platform opener command line when non-empty.
	Opener   string
	LogLevel string
	NoColor  bool
	// Dir is the directory settings were resolved against.
	Dir string
}

// ExeDir returns the directory containing the running executable, with
// symlinks resolved.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// LoadFrom resolves settings relative to dir: the default store is
// dir/config.json and the optional settings file is dir/summon.yaml.
// Environment variables take precedence over the file.
func LoadFrom(dir string) (*Settings, error) {
	v := newViper(dir)

	// The settings file is optional.
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("reading settings file %s: %w", SettingsPath(dir), err)
	}
	return resolve(v, dir), nil
}

// Defaults resolves settings from the environment and built-in defaults
// only, ignoring any settings file in dir.
func Defaults(dir string) *Settings {
	return resolve(newViper(dir), dir)
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(SettingsPath(dir))
	v.SetConfigType(fileType)
	for _, key := range Keys {
		_ = v.BindEnv(key, branding.EnvVar(key))
	}

	v.SetDefault(KeyStore, branding.StoreFile())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyNoColor, false)
	return v
}

func resolve(v *viper.Viper, dir string) *Settings {
	storePath := v.GetString(KeyStore)
	if !filepath.IsAbs(storePath) {
		storePath = filepath.Join(dir, storePath)
	}

	return &Settings{
		StorePath: storePath,
		Opener:    v.GetString(KeyOpener),
		LogLevel:  v.GetString(KeyLogLevel),
		NoColor:   v.GetBool(KeyNoColor),
		Dir:       dir,
	}
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &nf)
}

// SettingsPath returns the optional settings file path within dir.
func SettingsPath(dir string) string {
	return filepath.Join(dir, branding.SettingsFile())
}

// OpenerCommand returns the configured opener, or the platform default.
func (s *Settings) OpenerCommand() (platform.Opener, error) {
	if s.Opener == "" {
		return platform.Default(), nil
	}
	o, err := platform.Parse(s.Opener)
	if err != nil {
		return platform.Opener{}, fmt.Errorf("invalid %s setting: %w", KeyOpener, err)
	}
	return o, nil
}
