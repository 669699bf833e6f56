package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration. Precedence: environment
// (FIELDBOOK_*) over the config file over defaults.
type Config struct {
	DBPath            string `mapstructure:"db_path"`
	DefaultHourlyRate string `mapstructure:"default_hourly_rate"`
	OverdueDays       int    `mapstructure:"overdue_days"`
	Currency          string `mapstructure:"currency"`
	LogCalls          bool   `mapstructure:"log_calls"`
}

const envPrefix = "FIELDBOOK"

// Dir returns ~/.fieldbook, where the database and config file live by default.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".fieldbook"), nil
}

// Load reads path, or ~/.fieldbook/config.yaml when path is empty. A missing
// default config file is not an error.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("db_path", filepath.Join(dir, "fieldbook.db"))
	v.SetDefault("default_hourly_rate", "45")
	v.SetDefault("overdue_days", 30)
	v.SetDefault("currency", "EUR")
	v.SetDefault("log_calls", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that seed the settings row.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: db_path must not be empty")
	}
	rate, err := c.HourlyRate()
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return fmt.Errorf("config: default_hourly_rate must not be negative")
	}
	if c.OverdueDays <= 0 {
		return fmt.Errorf("config: overdue_days must be positive, got %d", c.OverdueDays)
	}
	return nil
}

// HourlyRate parses DefaultHourlyRate.
func (c *Config) HourlyRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.DefaultHourlyRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: default_hourly_rate %q: %w", c.DefaultHourlyRate, err)
	}
	return rate, nil
}
