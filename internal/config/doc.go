// Package config resolves user-level settings for summon: where the alias
// store lives, which opener command launches paths, and diagnostic options.
// Values come from SUMMON_* environment variables and an optional
// summon.yaml beside the executable, via viper.
package config
