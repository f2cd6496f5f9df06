package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"coinpulse/internal/config/configs"
)

// Config aggregates every configuration section. Each nested struct is read
// from environment variables carrying its envPrefix.
type Config struct {
	// Env names the deployment (prod, dev, ...). It is attached to log lines.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Jobs       configs.Jobs       `envPrefix:"JOBS_"`
	Storage    configs.Storage    `envPrefix:"STORAGE_"`
	Moderation configs.Moderation `envPrefix:"MODERATION_"`
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
