package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds tool settings. Values come from (highest priority first)
// VAPRISK_* environment variables, an optional config file, then defaults.
type Config struct {
	Engine      string `mapstructure:"ENGINE"`       // default assessment strategy: score | guideline
	BatchFormat string `mapstructure:"BATCH_FORMAT"` // batch output: table | json
	Debug       bool   `mapstructure:"DEBUG"`
	LogFile     string `mapstructure:"LOG_FILE"`
	NoColor     bool   `mapstructure:"NO_COLOR"`
}

// Load reads configuration from the environment and the optional config
// file at $XDG_CONFIG_HOME/vaprisk/config.env.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VAPRISK")
	v.AutomaticEnv()

	v.SetDefault("ENGINE", "score")
	v.SetDefault("BATCH_FORMAT", "table")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("NO_COLOR", false)

	v.BindEnv("ENGINE")
	v.BindEnv("BATCH_FORMAT")
	v.BindEnv("DEBUG")
	v.BindEnv("LOG_FILE")
	v.BindEnv("NO_COLOR")

	if path, err := defaultConfigPath(); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		// Missing config file is fine; env and defaults still apply.
		_ = v.ReadInConfig()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Engine {
	case "score", "guideline":
	default:
		return fmt.Errorf("invalid engine %q: must be score or guideline", c.Engine)
	}
	switch c.BatchFormat {
	case "table", "json":
	default:
		return fmt.Errorf("invalid batch format %q: must be table or json", c.BatchFormat)
	}
	return nil
}

func defaultConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "vaprisk", "config.env"), nil
}
