// tetris is a falling-block puzzle game for the terminal, playable locally
// or over SSH.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris menu              - Title menu with high scores
//	tetris serve             - Start SSH server for remote play
//	tetris scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60, or tick_rate from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--log <path>          - Write debug logs to a file
//	--config <path>       - Path to a tetris.yaml
//	--difficulty <preset> - easy, normal or hard
//	--level <n>           - Preselected start level
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Available commands:
  play     - Start a game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Scores are stored under the game id "tetris".

Examples:
  tetris play
  tetris play --level 9
  tetris menu --difficulty hard
  tetris serve --ssh :2222
  tetris scores --player ann`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", -1, "Start level (overrides config and difficulty)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// settings is the resolved configuration shared by the interactive commands.
type settings struct {
	runtime core.RuntimeConfig
	keys    tui.KeyMap
}

// loadSettings validates flags, loads the YAML config and hands the
// game-level options to the tetris package.
func loadSettings(cmd *cobra.Command) (settings, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return settings{}, err
	}
	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return settings{}, err
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(string(preset))
	tetris.SetStartLevel(flagLevel)

	rate := flagFPS
	if !cmd.Flags().Changed("fps") && gameCfg.TickRate > 0 {
		rate = gameCfg.TickRate
	}
	if rate <= 0 {
		return settings{}, fmt.Errorf("--fps must be positive, got %d", rate)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return settings{
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: rate,
			Seed:     flagSeed,
		},
		keys: tui.NewKeyMap(gameCfg.Keys),
	}, nil
}

// newLogger returns a debug logger writing to path, or a discarding logger
// when no path is set. The TUI owns the terminal, so logs never go to stderr.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// localPlayer names the person at the keyboard for score records.
func localPlayer() tui.Player {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return tui.Player{Name: u.Username}
	}
	if name := os.Getenv("USER"); name != "" {
		return tui.Player{Name: name}
	}
	return tui.Player{Name: "local"}
}
