package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port            string        `env:"PORT,             default=8000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	AppName         string        `env:"APP_NAME,         default=NexTier Solutions API"`
	StoreDriver     string        `env:"STORE_DRIVER,     default=mongo"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=nextier_cms"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// IsDevelopment reports whether human-friendly logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch cfg.StoreDriver {
	case StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, StoreMongo, StoreMemory)
	}
	return &cfg, nil
}
