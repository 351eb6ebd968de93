// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Preference store backends.
const (
	StoreFile   = "file"
	StoreNATS   = "nats"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds all configuration values for themeswitch.
type Config struct {
	// Options is the ordered list of theme names. Empty means the built-in set.
	Options       []string `mapstructure:"options" yaml:"options"`
	SaveSelection bool     `mapstructure:"save_selection" yaml:"save_selection"`
	Store         string   `mapstructure:"store" yaml:"store"`
	DataDir       string   `mapstructure:"data_dir" yaml:"data_dir"`
	Scope         string   `mapstructure:"scope" yaml:"scope"`
	// NATSURL points at an external NATS server. Empty means the embedded one
	// shared through the data directory.
	NATSURL       string   `mapstructure:"nats_url" yaml:"nats_url,omitempty"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string   `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
// (CLI flags are applied by the caller on top of the returned value.)
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("themeswitch")

	v.SetDefault("options", []string{})
	v.SetDefault("save_selection", true)
	v.SetDefault("store", StoreFile)
	v.SetDefault("data_dir", ".themeswitch")
	v.SetDefault("scope", "default")
	v.SetDefault("nats_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("THEMESWITCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"options", "save_selection", "store", "data_dir", "scope", "nats_url", "log_level", "log_file"} {
		if err := v.BindEnv(key, "THEMESWITCH_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Options = cleanOptions(cfg.Options)

	return &cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreNATS, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("invalid store %q (use %s, %s, %s or %s)", c.Store, StoreFile, StoreNATS, StoreSQLite, StoreMemory)
	}

	if c.Scope == "" {
		return fmt.Errorf("scope cannot be empty")
	}
	if len(c.Scope) > 64 {
		return fmt.Errorf("scope too long (max 64 characters): %s", c.Scope)
	}
	// The scope becomes a NATS subject token.
	for _, r := range c.Scope {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return fmt.Errorf("invalid scope: %s (use only alphanumeric, hyphens, underscores)", c.Scope)
		}
	}

	if c.Store != StoreMemory && c.DataDir == "" {
		return fmt.Errorf("data_dir is required for the %s store", c.Store)
	}
	return nil
}

// cleanOptions trims names and drops blanks. A single comma-separated entry
// (as delivered by an env var) is split.
func cleanOptions(in []string) []string {
	var out []string
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			if name := strings.TrimSpace(part); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/themeswitch/themeswitch.yml or $XDG_CONFIG_HOME/themeswitch/themeswitch.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themeswitch", "themeswitch.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "themeswitch", "themeswitch.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "themeswitch.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return writeYAML(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeYAML(ProjectPath(), cfg)
}

func writeYAML(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
