// Package config loads tabmarks settings from a YAML file. Every field has
// a working default; a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all tabmarks configuration.
type Config struct {
	// ServerURL is the base URL of the bookmarks backend, e.g.
	// "http://localhost:3000". When empty, the CLI works entirely from the
	// local store under DataDir.
	ServerURL string `yaml:"server_url"`

	// DataDir holds the local JSON store (also used as the fallback when
	// the backend is unreachable). Defaults to ~/.config/tabmarks.
	DataDir string `yaml:"data_dir"`
}

// DefaultDir returns the default tabmarks directory, ~/.config/tabmarks.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tabmarks"), nil
}

// Load reads the config file at path. When path is empty it falls back to
// $TABMARKS_CONFIG, then ~/.config/tabmarks/config.yaml. A missing file at
// the default location yields a Config with defaults; a missing file at an
// explicitly requested location is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("TABMARKS_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			dir, err := DefaultDir()
			if err != nil {
				return Config{}, err
			}
			path = filepath.Join(dir, "config.yaml")
		}
	}

	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return withDefaults(cfg)
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return withDefaults(cfg)
}

func withDefaults(cfg Config) (Config, error) {
	if cfg.DataDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}
	return cfg, nil
}
