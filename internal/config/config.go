// Package config loads the optional vtfx360 configuration file
// (~/.config/vtfx360/config.yaml). Command-line flags take precedence over
// every value read here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the CLI. Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	Compress      string `yaml:"compress"`
	CompressLevel *int   `yaml:"compress_level"`
	NoClobber     *bool  `yaml:"no_clobber"`
}

// DefaultPath returns the per-user config location, or "" if the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vtfx360", "config.yaml")
}

// Load reads the config at path. A missing file yields a zero Config;
// an unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
