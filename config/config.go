package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// User scopes every datastore read and write.
	User string `json:"user" yaml:"user"`
	// DBPath locates the SQLite database.
	DBPath string `json:"db_path" yaml:"db_path"`
	// SnapshotPath locates the client-store snapshot file.
	SnapshotPath string `json:"snapshot_path" yaml:"snapshot_path"`
	// MaxAccounts caps how many accounts the user may create.
	MaxAccounts int `json:"max_accounts" yaml:"max_accounts"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		User:         "local",
		DBPath:       "./tradejournal.sqlite",
		SnapshotPath: "./tradejournal-snapshot.yaml",
		MaxAccounts:  3,
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content), applies environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load returns the default configuration with environment overrides
// applied. Used when no config file is given.
func Load() (*Config, error) {
	cfg := Default()
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// FromEnv overlays settings from a .env file (if present) and the
// process environment. Environment values win over file values.
func (c *Config) FromEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("TRADEJOURNAL_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("TRADEJOURNAL_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TRADEJOURNAL_SNAPSHOT"); v != "" {
		c.SnapshotPath = v
	}
	if v := os.Getenv("TRADEJOURNAL_MAX_ACCOUNTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxAccounts = n
		}
	}
}

// SaveToFile writes the configuration to path, YAML for .yaml/.yml
// extensions and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.MaxAccounts <= 0 {
		return fmt.Errorf("max_accounts must be positive")
	}
	return nil
}
