// Package branding provides compile-time identity values for the CLI.
//
// The identity lives in branding.yaml next to this file and is baked into
// the binary with //go:embed, so a fork can rename the tool and its files
// without touching Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	StoreFile    string `yaml:"store_file"`
	SettingsFile string `yaml:"settings_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "summon",
			DisplayName:  "Summon",
			Description:  "Launch files and folders by short alias",
			EnvPrefix:    "SUMMON",
			StoreFile:    "config.json",
			SettingsFile: "summon.yaml",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "summon").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Summon").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// StoreFile returns the alias store file name (e.g., "config.json").
func StoreFile() string { load(); return defaults.StoreFile }

// SettingsFile returns the optional settings file name (e.g., "summon.yaml").
func SettingsFile() string { load(); return defaults.SettingsFile }

// EnvVar returns a fully qualified env var name, e.g. EnvVar("config") returns "SUMMON_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
