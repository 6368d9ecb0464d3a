// Package config loads the process settings from the environment and the
// per-guild deployment tables from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process level settings
type Config struct {
	// Discord bot token
	Token string `env:"DISCORD_TOKEN,required,notEmpty"`

	// Application ID for the bot, falls back to the session user
	ApplicationID string `env:"APPLICATION_ID"`

	// Path of the deployments YAML file
	DeploymentsFile string `env:"DEPLOYMENTS_FILE" envDefault:"deployments.yaml"`

	// Log level: debug, info, warn or error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Prefixes accepted in front of text commands
	CommandPrefixes []string `env:"COMMAND_PREFIXES" envDefault:"!" envSeparator:","`

	// Cron expression for the retention sweep
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"0 1 * * *"`

	// Time zone the sweep schedule is evaluated in
	SweepTimezone string `env:"SWEEP_TIMEZONE" envDefault:"Europe/Helsinki"`
}

// Load reads an optional .env file and parses the environment
func Load(envFiles ...string) (*Config, error) {
	// a missing .env file is fine, real deployments set the environment
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// SweepLocation loads the time zone of the sweep schedule
func (c *Config) SweepLocation() (*time.Location, error) {
	location, err := time.LoadLocation(c.SweepTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}
	return location, nil
}
