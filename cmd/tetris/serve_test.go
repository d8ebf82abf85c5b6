package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func noneChanged(string) bool { return false }

func TestServeConfigDefaults(t *testing.T) {
	cfg := serveConfig(config.ServerEnv{}, noneChanged)

	if cfg.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, expected empty so the home key is used", cfg.HostKeyPath)
	}
	if cfg.Address != "localhost:2222" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout != 10*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.GameID != tetris.ID {
		t.Errorf("GameID = %q", cfg.GameID)
	}
}

func TestServeConfigEnvThenFlags(t *testing.T) {
	env := config.ServerEnv{
		Addr:        "0.0.0.0:2022",
		HostKey:     "/srv/tetris/host_key",
		DBPath:      "/srv/tetris/scores.db",
		IdleTimeout: time.Minute,
	}

	cfg := serveConfig(env, noneChanged)
	if cfg.Address != env.Addr || cfg.HostKeyPath != env.HostKey ||
		cfg.DBPath != env.DBPath || cfg.IdleTimeout != env.IdleTimeout {
		t.Errorf("environment not applied: %+v", cfg)
	}

	oldAddr := flagSSHAddr
	flagSSHAddr = ":9000"
	defer func() { flagSSHAddr = oldAddr }()

	cfg = serveConfig(env, func(name string) bool { return name == "ssh" })
	if cfg.Address != ":9000" {
		t.Errorf("Address = %q, expected flag to win", cfg.Address)
	}
	if cfg.HostKeyPath != env.HostKey {
		t.Errorf("HostKeyPath = %q, unchanged flags must not override", cfg.HostKeyPath)
	}
}
