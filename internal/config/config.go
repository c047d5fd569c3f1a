package config

import (
	"fmt"
	"strings"
	"time"

	"job-marketplace/internal/biddingerrors"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by STORE_DRIVER
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds process settings read from the environment
type Config struct {
	Port        string        `env:"PORT"         envDefault:"8080"`
	LogLevel    string        `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT"   envDefault:"json"`
	GinMode     string        `env:"GIN_MODE"     envDefault:"release"`
	StoreDriver string        `env:"STORE_DRIVER" envDefault:"memory"`
	SQLitePath  string        `env:"SQLITE_PATH"  envDefault:"marketplace.db"`
	SeedFile    string        `env:"SEED_FILE"`
	RedisURL    string        `env:"REDIS_URL"`
	LockTTL     time.Duration `env:"LOCK_TTL"     envDefault:"10s"`
}

// Load reads the process environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: %w - PORT is empty", biddingerrors.ErrInvalidArgument)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("config: %w - LOG_FORMAT must be json or text", biddingerrors.ErrInvalidArgument)
	}
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: %w - SQLITE_PATH is required for the sqlite driver", biddingerrors.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("config: %w - unknown STORE_DRIVER %q", biddingerrors.ErrInvalidArgument, c.StoreDriver)
	}
	if c.RedisURL != "" && c.LockTTL <= 0 {
		return fmt.Errorf("config: %w - LOCK_TTL must be positive", biddingerrors.ErrInvalidArgument)
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
