// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import "time"

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	StartLevel  int        `yaml:"start_level"`  // Level preselected on the start screen
	Ghost       bool       `yaml:"ghost"`        // Draw the landing outline
	HighlightMS int        `yaml:"highlight_ms"` // Line-clear highlight duration
	TickRate    int        `yaml:"tick_rate"`    // Simulation ticks per second, 0 keeps the runtime rate
	Keys        KeyBinding `yaml:"keys"`

	// Palette overrides piece colors by shape letter (I O T S Z J L),
	// e.g. {"L": "bright-yellow"}. Unknown letters or colors are ignored.
	Palette map[string]string `yaml:"palette"`
}

// KeyBinding lists the terminal key names bound to each action.
// Names follow Bubble Tea's key strings ("left", "a", "enter", " ").
type KeyBinding struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Rotate  []string `yaml:"rotate"`
	Drop    []string `yaml:"drop"`
	Confirm []string `yaml:"confirm"`
	Pause   []string `yaml:"pause"`
	Back    []string `yaml:"back"`
	Quit    []string `yaml:"quit"`
}

// Highlight returns the highlight duration as a time.Duration.
func (c TetrisConfig) Highlight() time.Duration {
	return time.Duration(c.HighlightMS) * time.Millisecond
}
