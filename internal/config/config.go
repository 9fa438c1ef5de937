package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const appConfigDir = "narrow"

// Config represents the narrow configuration
type Config struct {
	// Database overrides the default sqlite location.
	Database string   `toml:"database,omitempty"`
	Theme    Theme    `toml:"theme"`
	UI       UIConfig `toml:"ui"`
	Keys     KeyMap   `toml:"keys"`
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appConfigDir, "config.toml"))
}

// DatabasePath is the configured store location, or "" for the default.
func (c *Config) DatabasePath() string {
	if c == nil || c.Database == "" {
		return ""
	}
	if path, ok := expandHome(c.Database); ok {
		return path
	}
	return c.Database
}

func expandHome(path string) (string, bool) {
	if len(path) < 2 || path[:2] != "~/" {
		return "", false
	}
	return filepath.Join(xdg.Home, path[2:]), true
}

// Load reads the config file from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config from path. A missing file yields an empty config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

func SaveFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// CachePath returns the path to the selection pointer cache
func CachePath() (string, error) {
	return xdg.CacheFile(filepath.Join(appConfigDir, "pointers.json"))
}
