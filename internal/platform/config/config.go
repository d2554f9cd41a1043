package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no --config
// flag is given.
const EnvConfigPath = "VITALS_CONFIG"

type Config struct {
	// DefaultDays is the window used when a command omits --days.
	DefaultDays int    `yaml:"default_days"`
	LogLevel    string `yaml:"log_level"`
	// Pretty indents the JSON envelope written to stdout.
	Pretty bool `yaml:"pretty"`
}

func Default() Config {
	return Config{DefaultDays: 7, LogLevel: "info", Pretty: false}
}

// Load reads the YAML config at path, falling back to $VITALS_CONFIG and then
// to defaults when no file is named. A named file that is missing or invalid
// is an error; relying on defaults is not.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DefaultDays < 1 || c.DefaultDays > 90 {
		return fmt.Errorf("default_days must be between 1 and 90, got %d", c.DefaultDays)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
}
