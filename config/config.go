// Package config loads the table settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	StartingChips int    `env:"BLACKJACK_STARTING_CHIPS" envDefault:"1000"`
	Seed          string `env:"BLACKJACK_SEED"`
	LogLevel      string `env:"BLACKJACK_LOG_LEVEL" envDefault:"info"`
	MaxRounds     int    `env:"BLACKJACK_MAX_ROUNDS" envDefault:"0"`
	ConfirmStand  bool   `env:"BLACKJACK_CONFIRM_STAND" envDefault:"false"`
}

// Load reads the given .env files, or ./.env when none is given, then parses
// the environment. Missing .env files are ignored and variables already set
// in the environment win.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.StartingChips <= 0 {
		return fmt.Errorf("%w: starting chips must be positive, got %d", ErrInvalidConfig, c.StartingChips)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max rounds must not be negative, got %d", ErrInvalidConfig, c.MaxRounds)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel as a slog level name.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Seeded reports whether shuffles should be replayable.
func (c Config) Seeded() bool {
	return c.Seed != ""
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
