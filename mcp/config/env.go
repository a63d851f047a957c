package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process level settings read from the environment.
type Env struct {
	Config      string `env:"ICONSET_CONFIG"`
	LogLevel    string `env:"ICONSET_LOG_LEVEL" envDefault:"info"`
	DebugConfig bool   `env:"ICONSET_DEBUG_CONFIG"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (*Env, error) {
	ret := &Env{}
	if err := env.Parse(ret); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return ret, nil
}
