package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		StartLevel:  1,
		Ghost:       true,
		HighlightMS: 500,
		TickRate:    60,
		Keys:        DefaultKeyBinding(),
	}
}

// DefaultKeyBinding returns the stock arrow/WASD layout.
func DefaultKeyBinding() KeyBinding {
	return KeyBinding{
		Left:    []string{"left", "a", "h"},
		Right:   []string{"right", "d", "l"},
		Rotate:  []string{"up", "w", "k"},
		Drop:    []string{"down", "s", "j"},
		Confirm: []string{" ", "enter"},
		Pause:   []string{"p"},
		Back:    []string{"esc", "b"},
		Quit:    []string{"q", "ctrl+c"},
	}
}
