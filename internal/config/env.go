package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

func parseEnv() (*Settings, error) {
	cfg := &Settings{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
