// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
}

// DefaultSettings contains default values for common operations
type DefaultSettings struct {
	Field          string `json:"field"`          // Default: gf256
	Characteristic uint16 `json:"characteristic"` // Default: 257 (prime variants only)
	Hex            bool   `json:"hex"`            // Default: true (print elements as hex)
}

// UIConfig contains output preferences
type UIConfig struct {
	Color bool `json:"color"` // Default: true
	JSON  bool `json:"json"`  // Default: false
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Field:          "gf256",
			Characteristic: 257,
			Hex:            true,
		},
		UI: UIConfig{
			Color: true,
			JSON:  false,
		},
	}
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	switch c.Defaults.Field {
	case "gf256", "gfp", "legacy":
	default:
		return fmt.Errorf("unknown default field %q", c.Defaults.Field)
	}
	if c.Defaults.Characteristic < 2 {
		return fmt.Errorf("default characteristic must be at least 2, got %d", c.Defaults.Characteristic)
	}
	return nil
}

// Path returns the location of the configuration file
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "galois", "config.json"), nil
}

// Load reads the configuration file, falling back to defaults when it
// does not exist yet
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to disk, creating the directory if
// needed
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
