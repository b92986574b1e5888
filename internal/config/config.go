package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	InputPath  string `env:"REPLAY_INPUT" envDefault:"batch.json"`
	OutputPath string `env:"REPLAY_OUTPUT" envDefault:"report.json"`
	LogLevel   string `env:"REPLAY_LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
