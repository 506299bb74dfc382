package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Holdings struct {
		File string `yaml:"file"`
	} `yaml:"holdings"`
	Cash struct {
		StateFile string `yaml:"state_file"`
		Initial   int64  `yaml:"initial"`
	} `yaml:"cash"`
	Schedule struct {
		RecalcCron string `yaml:"recalc_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HOLDINGS_FILE"); v != "" {
		cfg.Holdings.File = v
	}
	if v := os.Getenv("CASH_STATE_FILE"); v != "" {
		cfg.Cash.StateFile = v
	}
	if v := os.Getenv("INITIAL_CASH"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse INITIAL_CASH: %w", err)
		}
		cfg.Cash.Initial = n
	}
	if v := os.Getenv("CRON_RECALC"); v != "" {
		cfg.Schedule.RecalcCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Holdings.File == "" {
		cfg.Holdings.File = "configs/holdings.yaml"
	}
	if cfg.Cash.StateFile == "" {
		cfg.Cash.StateFile = "data/cash_state.json"
	}
	if cfg.Schedule.RecalcCron == "" {
		cfg.Schedule.RecalcCron = "0 0 18 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/portfolioo.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Holdings.File == "" {
		return fmt.Errorf("holdings.file is required")
	}
	if c.Cash.StateFile == "" {
		return fmt.Errorf("cash.state_file is required")
	}
	if c.Cash.Initial < 0 {
		return fmt.Errorf("cash.initial must not be negative")
	}
	if c.Schedule.RecalcCron == "" {
		return fmt.Errorf("schedule.recalc_cron is required")
	}
	return nil
}
