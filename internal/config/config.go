package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

const (
	DatabaseMongo    = "mongodb"
	DatabasePostgres = "postgres"
)

type Config struct {
	ServerPort   string        `env:"SERVER_PORT" envDefault:"8080"`
	APIPrefix    string        `env:"API_PREFIX" envDefault:"/api/v1"`
	DatabaseType string        `env:"DATABASE_TYPE" envDefault:"mongodb"`
	DatabaseURL  string        `env:"DATABASE_URL,required,notEmpty"`
	DatabaseName string        `env:"DATABASE_NAME" envDefault:"accounts"`
	RedisURL     string        `env:"REDIS_URL"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick
// up a local .env file.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseType != DatabaseMongo && c.DatabaseType != DatabasePostgres {
		return fmt.Errorf("DATABASE_TYPE must be %q or %q, got %q", DatabaseMongo, DatabasePostgres, c.DatabaseType)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.WriteTimeout <= 0 {
		return errors.New("WRITE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsDocumentDatabase() bool {
	return c.DatabaseType == DatabaseMongo
}

func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
