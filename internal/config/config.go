// Package config parses hangman settings from the environment and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// UI modes.
const (
	UILine   = "line"
	UIScreen = "screen"
)

// Config holds application configuration.
type Config struct {
	WordsFile string `env:"HANGMAN_WORDS_FILE"`
	WordsDB   string `env:"HANGMAN_WORDS_DB"`
	UI        string `env:"HANGMAN_UI" envDefault:"line"`
	Debug     bool   `env:"HANGMAN_DEBUG"`
	Daily     bool   `env:"HANGMAN_DAILY"`
	DailySalt string `env:"HANGMAN_DAILY_SALT" envDefault:"hangman"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFile   string `env:"LOG_FILE"`
}

// Parse loads configuration from environment variables, then applies flag overrides
// from args. Remaining positional arguments are returned.
func Parse(fs *flag.FlagSet, args []string) (Config, []string, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "Path to a comma or newline separated word list")
	fs.StringVar(&cfg.WordsDB, "db", cfg.WordsDB, "Path to a SQLite word database (takes precedence over -words)")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Terminal frontend: line or screen")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the secret word while playing")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "Play the word of the day (one round)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate checks values the flag and env parsers cannot.
func (c Config) Validate() error {
	switch c.UI {
	case UILine, UIScreen:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UILine, UIScreen)
	}
	if c.Daily && c.DailySalt == "" {
		return errors.New("daily mode needs HANGMAN_DAILY_SALT")
	}
	return nil
}
