package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerEnv holds SSH server settings read from the environment.
// Unset variables stay zero and leave the server defaults in place;
// command-line flags take precedence over both.
type ServerEnv struct {
	Addr        string        `env:"TETRIS_SSH_ADDR"`
	HostKey     string        `env:"TETRIS_HOST_KEY"`
	DBPath      string        `env:"TETRIS_DB"`
	IdleTimeout time.Duration `env:"TETRIS_IDLE_TIMEOUT"`
}

// LoadServerEnv parses ServerEnv from the process environment.
func LoadServerEnv() (ServerEnv, error) {
	var cfg ServerEnv
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}
