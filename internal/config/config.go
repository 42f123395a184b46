// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all phonebook configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	UI      UI      `yaml:"ui"`
}

// Storage holds database settings.
type Storage struct {
	Path        string        `yaml:"path"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// UI holds interactive dashboard settings.
type UI struct {
	AltScreen    bool   `yaml:"alt_screen"`
	LogFile      string `yaml:"log_file"`      // Debug log destination; empty discards.
	TemplatesDir string `yaml:"templates_dir"` // Local templates that override the embedded ones.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Path:        "phonelist.db",
			BusyTimeout: 5 * time.Second,
		},
		UI: UI{
			AltScreen:    true,
			TemplatesDir: ".phonebook/templates",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("config: storage.path cannot be empty")
	}
	if c.Storage.BusyTimeout < 0 {
		return fmt.Errorf("config: storage.busy_timeout must be non-negative, got %v", c.Storage.BusyTimeout)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONEBOOK_DB, PHONEBOOK_BUSY_TIMEOUT, PHONEBOOK_LOG_FILE,
// PHONEBOOK_ALT_SCREEN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONEBOOK_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("PHONEBOOK_BUSY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_BUSY_TIMEOUT %q: %w", v, err)
		}
		c.Storage.BusyTimeout = d
	}
	if v := os.Getenv("PHONEBOOK_LOG_FILE"); v != "" {
		c.UI.LogFile = v
	}
	if v := os.Getenv("PHONEBOOK_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_ALT_SCREEN %q: %w", v, err)
		}
		c.UI.AltScreen = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage *rawStorage `yaml:"storage"`
	UI      *rawUI      `yaml:"ui"`
}

type rawStorage struct {
	Path        *string        `yaml:"path"`
	BusyTimeout *time.Duration `yaml:"busy_timeout"`
}

type rawUI struct {
	AltScreen    *bool   `yaml:"alt_screen"`
	LogFile      *string `yaml:"log_file"`
	TemplatesDir *string `yaml:"templates_dir"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if s := layer.Storage; s != nil {
		if s.Path != nil {
			c.Storage.Path = *s.Path
		}
		if s.BusyTimeout != nil {
			c.Storage.BusyTimeout = *s.BusyTimeout
		}
	}
	if u := layer.UI; u != nil {
		if u.AltScreen != nil {
			c.UI.AltScreen = *u.AltScreen
		}
		if u.LogFile != nil {
			c.UI.LogFile = *u.LogFile
		}
		if u.TemplatesDir != nil {
			c.UI.TemplatesDir = *u.TemplatesDir
		}
	}
}
