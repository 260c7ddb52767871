package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN"`
	DatabaseURL string `env:"DATABASE_URL"`

	// External providers. DeepL and OpenWeather keys are optional: when a key
	// is absent the corresponding collaborator degrades to its offline
	// fallback instead of failing the turn.
	DeepLAPIKey       string `env:"DEEPL_API_KEY"`
	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`
	GitHubToken       string `env:"GITHUB_TOKEN"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ValidateBot checks the keys the Telegram entrypoint cannot run without.
// The CLI entrypoint skips this so it can run with nothing configured.
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}
