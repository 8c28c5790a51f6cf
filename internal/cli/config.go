package cli

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string `env:"MINISUDOKU_SERVER, default=http://localhost:8080"`
	Output    string `env:"MINISUDOKU_OUTPUT, default=text"`
}

// DefaultConfig returns a Config populated from the environment, falling
// back to defaults when the environment cannot be read
func DefaultConfig() *Config {
	cfg, err := loadConfig(context.Background(), envconfig.OsLookuper())
	if err != nil {
		return &Config{ServerURL: "http://localhost:8080", Output: "text"}
	}
	return cfg
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
