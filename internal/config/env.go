package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime overrides read from the environment. Zero values mean
// "not set"; command-line flags win over them.
type Env struct {
	FPS        int    `env:"ISLAND_FPS"`
	Seed       int64  `env:"ISLAND_SEED"`
	DBPath     string `env:"ISLAND_DB"`
	ConfigPath string `env:"ISLAND_CONFIG"`
}

// ParseEnv loads runtime overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
