// Package config loads the application configuration from an optional YAML
// file, applying defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// appDirName is the per-user directory holding config, the last-viewed
	// database and log files.
	appDirName = ".esportes"

	configFileName = "config.yaml"
	databaseName   = "esportes.db"
	logFileName    = "esportes.log"

	dirMode = 0750
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string `yaml:"level,omitempty"`
	// File overrides the default log file path.
	File string `yaml:"file,omitempty"`
}

// Config is the full application configuration.
type Config struct {
	// DataDir overrides the default per-user data directory.
	DataDir string `yaml:"data_dir,omitempty"`
	// Catalog points at an external catalog JSON file. Empty means the
	// bundled resource.
	Catalog string `yaml:"catalog,omitempty"`
	// Logging controls log level and destination.
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file at path. A missing file is not an error: the
// zero config with defaults applied is returned. An unreadable or
// syntactically invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() error {
	if c.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = filepath.Join(c.DataDir, logFileName)
	}
	return nil
}

// DatabasePath returns the last-viewed database location.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, databaseName)
}

// EnsureDataDir creates the data directory if it does not exist.
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, dirMode); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
