// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jason-s-yu/bang/internal/game"
	"github.com/sirupsen/logrus"
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr     string `env:"BANG_ADDR" envDefault:":8080"`
	LogLevel string `env:"BANG_LOG_LEVEL" envDefault:"info"`

	RedisEnabled   bool   `env:"BANG_REDIS_ENABLED" envDefault:"false"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	SnapshotPrefix string `env:"BANG_SNAPSHOT_PREFIX" envDefault:"bang:game:"`

	SeatTokenTTL time.Duration `env:"BANG_SEAT_TOKEN_TTL" envDefault:"12h"`
	SweepEvery   time.Duration `env:"BANG_SWEEP_INTERVAL" envDefault:"1m"`

	// Table defaults, overridable per game when it is created.
	Expansions   []string `env:"BANG_EXPANSIONS" envSeparator:","`
	EventCadence int      `env:"BANG_EVENT_CADENCE" envDefault:"1"`
	Seed         int64    `env:"BANG_SEED" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads and validates the server configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("BANG_LOG_LEVEL: %w", err)
	}
	if cfg.EventCadence < 1 {
		return Config{}, fmt.Errorf("BANG_EVENT_CADENCE must be at least 1, got %d", cfg.EventCadence)
	}
	defaults := game.Options{}
	if err := defaults.Update(map[string]interface{}{"expansions": cfg.Expansions}); err != nil {
		return Config{}, fmt.Errorf("BANG_EXPANSIONS: %w", err)
	}
	return cfg, nil
}

// Level returns the parsed log level. Load has already validated it.
func (c Config) Level() logrus.Level {
	return parseLevel(c.LogLevel)
}

func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// GameOptions returns the table defaults new games start from.
func (c Config) GameOptions(logger *logrus.Logger) game.Options {
	return game.Options{
		Seed:         c.Seed,
		Expansions:   append([]string(nil), c.Expansions...),
		EventCadence: c.EventCadence,
		Logger:       logger,
	}
}
