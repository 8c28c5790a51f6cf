// Package config loads server settings from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all server settings
type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	Game    GameConfig
	Log     LogConfig
}

// HTTPConfig configures the listener
type HTTPConfig struct {
	Host string `env:"HTTP_HOST, default=0.0.0.0"`
	Port int    `env:"HTTP_PORT, default=8080"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Type         string `env:"STORAGE_TYPE,  default=memory"`
	RedisURL     string `env:"REDIS_URL"`
	RedisPrefix  string `env:"REDIS_KEY_PREFIX, default=minisudoku"`
	BadgerPath   string `env:"BADGER_PATH,   default=data/minisudoku"`
	DecodePolicy string `env:"DECODE_POLICY, default=lenient"`
}

// GameConfig holds gameplay settings
type GameConfig struct {
	Credentials   string        `env:"CREDENTIALS,    default=plain"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=admin123"`
	TickInterval  time.Duration `env:"TICK_INTERVAL,  default=1s"`
	HistoryLimit  int           `env:"HISTORY_LIMIT,  default=10"`
}

// LogConfig configures the application logger
type LogConfig struct {
	Level string `env:"LOG_LEVEL, default=info"`
	File  string `env:"LOG_FILE"`
}

// Load reads configuration from the process environment
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
