package tui

import (
	"path/filepath"
	"testing"
	"time"
)

func TestResolveHostKeyPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if want := filepath.Join(home, ".tetris", "host_key"); got != want {
		t.Errorf("resolveHostKeyPath(\"\") = %q, expected %q", got, want)
	}

	got, err = resolveHostKeyPath("keys/server_ed25519")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != "keys/server_ed25519" {
		t.Errorf("explicit path rewritten to %q", got)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.HostKeyPath != "" {
		t.Errorf("HostKeyPath = %q, expected empty so the home key is used", cfg.HostKeyPath)
	}
	if cfg.Address != "localhost:2222" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout != 10*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}
	if cfg.GameID != "tetris" || cfg.TickRate != 60 {
		t.Errorf("GameID/TickRate = %q/%d", cfg.GameID, cfg.TickRate)
	}
}
