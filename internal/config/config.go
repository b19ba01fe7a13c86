// Package config loads the bijectz command's YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Defaults for optional fields.
const (
	DefaultName     = "bijectz"
	DefaultLogLevel = "warn"
)

// Config describes which codec chain the command runs.
type Config struct {
	// Name labels the observed chain in logs and failures.
	Name string `yaml:"name,omitempty"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty"`
	// Chain lists registered codec names, applied first to last.
	Chain []string `yaml:"chain"`
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the config used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	chain := cfg.Chain[:0]
	for _, name := range cfg.Chain {
		if name = strings.TrimSpace(name); name != "" {
			chain = append(chain, name)
		}
	}
	cfg.Chain = chain
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
