// Package config reads the game's settings from the environment.
package config

import (
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/caarlos0/env/v11"
)

// High-score backends
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds the process configuration
type Config struct {
	Variant    string `env:"YAHTZEE_VARIANT"     envDefault:"standard"`
	MaxPlayers int    `env:"YAHTZEE_MAX_PLAYERS" envDefault:"4"`

	// Seed fixes the dice; 0 seeds from the clock
	Seed int64 `env:"YAHTZEE_SEED" envDefault:"0"`

	HighScore HighScoreConfig
}

// HighScoreConfig selects and configures the high-score store
type HighScoreConfig struct {
	Backend     string `env:"YAHTZEE_HIGHSCORE_BACKEND"      envDefault:"file"`
	File        string `env:"YAHTZEE_HIGHSCORE_FILE"         envDefault:"HighScores.txt"`
	RedisURL    string `env:"YAHTZEE_HIGHSCORE_REDIS_URL"    envDefault:"redis://localhost:6379/0"`
	RedisKey    string `env:"YAHTZEE_HIGHSCORE_REDIS_KEY"    envDefault:"yahtzee:highscores"`
	SQLitePath  string `env:"YAHTZEE_HIGHSCORE_SQLITE_PATH"  envDefault:"highscores.db"`
	PostgresDSN string `env:"YAHTZEE_HIGHSCORE_POSTGRES_DSN"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot
func (c *Config) Validate() error {
	if _, err := models.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("YAHTZEE_VARIANT: %w", err)
	}

	if c.MaxPlayers < 1 {
		return fmt.Errorf("YAHTZEE_MAX_PLAYERS must be at least 1, got %d", c.MaxPlayers)
	}

	switch c.HighScore.Backend {
	case BackendFile, BackendRedis, BackendSQLite:
	case BackendPostgres:
		if c.HighScore.PostgresDSN == "" {
			return fmt.Errorf("YAHTZEE_HIGHSCORE_POSTGRES_DSN is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("YAHTZEE_HIGHSCORE_BACKEND must be one of %s, %s, %s or %s, got %q",
			BackendFile, BackendRedis, BackendSQLite, BackendPostgres, c.HighScore.Backend)
	}
	return nil
}
