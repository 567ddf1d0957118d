// Package config manages catena's on-disk preferences: the default named
// instance, associated data, and output length a bare `catena hash`
// invocation falls back to when the caller doesn't override them on the
// command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/r2unit/catena/pkg/toml"
)

// Config is catena's persisted preference set.
type Config struct {
	DefaultInstance string
	DefaultAD       string
	OutputLength    int
}

// DefaultConfig is what a fresh install runs with before any config.toml
// exists.
func DefaultConfig() Config {
	return Config{
		DefaultInstance: "Dragonfly",
		DefaultAD:       "",
		OutputLength:    64,
	}
}

// GetConfigDir returns ~/.config/catena, creating nothing.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "catena"), nil
}

// EnsureConfigDir returns ~/.config/catena, creating it (mode 0700) if
// it doesn't already exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads ~/.config/catena/config.toml, falling back to DefaultConfig
// for any field the file doesn't set and for the case where the file
// doesn't exist at all.
func Load() (Config, error) {
	cfg := DefaultConfig()

	dir, err := GetConfigDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	type fileFormat struct {
		DefaultInstance string `toml:"default_instance"`
		DefaultAD       string `toml:"default_ad"`
		OutputLength    int    `toml:"output_length"`
	}

	var parsed fileFormat
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	}

	if parsed.DefaultInstance != "" {
		cfg.DefaultInstance = parsed.DefaultInstance
	}
	if parsed.DefaultAD != "" {
		cfg.DefaultAD = parsed.DefaultAD
	}
	if parsed.OutputLength != 0 {
		cfg.OutputLength = parsed.OutputLength
	}

	return cfg, nil
}

// Save writes cfg to ~/.config/catena/config.toml, creating the directory
// if needed.
func Save(cfg Config) error {
	dir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "config.toml")
	contents := fmt.Sprintf(
		"default_instance = %q\ndefault_ad = %q\noutput_length = %d\n",
		cfg.DefaultInstance, cfg.DefaultAD, cfg.OutputLength,
	)
	return os.WriteFile(path, []byte(contents), 0600)
}
