package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "tetris", core.DefaultConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor should stay at 0, got %d", m.cursor)
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != len(menuItems)-1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoiceQuit {
		t.Errorf("Choice = %v, expected quit", m.Choice())
	}
}

func TestMenuChoices(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, "tetris", core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoicePlay {
		t.Errorf("Enter on first item: %v", m.Choice())
	}

	m = menuUpdate(t, NewMenuModel(nil, "tetris", core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if m.Choice() != ChoiceScores {
		t.Errorf("Tab: %v", m.Choice())
	}

	m = menuUpdate(t, NewMenuModel(nil, "tetris", core.DefaultConfig()), runeKey('q'))
	if m.Choice() != ChoiceQuit {
		t.Errorf("q: %v", m.Choice())
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.Result{GameID: "tetris", Score: 4321}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewMenuModel(store, "tetris", core.DefaultConfig())
	view := m.View()
	if !strings.Contains(view, "Best: 4321") {
		t.Errorf("menu should show the best score:\n%s", view)
	}
	if !strings.Contains(view, "High Scores") {
		t.Error("menu should list High Scores")
	}
}

func TestMenuResize(t *testing.T) {
	m := menuUpdate(t, NewMenuModel(nil, "tetris", core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config not updated: %+v", cfg)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}
