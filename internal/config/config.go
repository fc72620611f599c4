// Package config loads btreectl's runtime settings from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"errors"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the ambient settings for the CLI and harnesses: the default
// minimum degree used when a command doesn't specify one, display mode, and
// logging destination/level.
type Config struct {
	Degree   int    `mapstructure:"degree"`
	Color    string `mapstructure:"color"`     // "auto", "always", "never"
	LogPath  string `mapstructure:"log_path"`  // "" means stderr
	LogLevel string `mapstructure:"log_level"` // "debug", "info", "warn", "error"
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Degree:   32,
		Color:    "auto",
		LogPath:  "",
		LogLevel: "info",
	}
}

// Load reads path and decodes it over Default(). A missing file is not an
// error; it yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
