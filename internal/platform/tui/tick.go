// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, key mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGens atomic.Uint64

// nextTickGen returns a fresh tick generation for a new game model.
func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// a tick interval. Each handled tick schedules the next.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
