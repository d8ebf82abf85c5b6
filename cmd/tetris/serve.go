package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tetris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the title menu.
Scores are stored per-server (all users share the same leaderboard).

Settings come from the environment and can be overridden by flags:
  TETRIS_SSH_ADDR       listen address (default localhost:2222)
  TETRIS_HOST_KEY       host key path (default ~/.tetris/host_key, generated if missing)
  TETRIS_DB             scores database path (default ~/.tetris/scores.db)
  TETRIS_IDLE_TIMEOUT   idle timeout (default 10m)

Examples:
  tetris serve                           # Listen on localhost:2222
  tetris serve --ssh :2222               # Listen on all interfaces
  tetris serve --host-key ./my_host_key  # Use specific host key
  tetris serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default ~/.tetris/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", def.IdleTimeout, "Idle timeout before disconnecting")
}

// serveConfig layers the environment and then any flags the user set on
// top of tui.DefaultSSHServerConfig.
func serveConfig(env config.ServerEnv, changed func(name string) bool) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.GameID = tetris.ID

	if env.Addr != "" {
		cfg.Address = env.Addr
	}
	if env.HostKey != "" {
		cfg.HostKeyPath = env.HostKey
	}
	if env.DBPath != "" {
		cfg.DBPath = env.DBPath
	}
	if env.IdleTimeout > 0 {
		cfg.IdleTimeout = env.IdleTimeout
	}

	if changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if changed("db") {
		cfg.DBPath = flagDBPath
	}
	if changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) {
	env, err := config.LoadServerEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := serveConfig(env, cmd.Flags().Changed)
	cfg.TickRate = s.runtime.TickRate
	cfg.Keys = s.keys

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tetris SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
