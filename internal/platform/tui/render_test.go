package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != "hello\nworld" {
		t.Errorf("RenderScreen = %q", got)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "[][]", core.ColorCyan)
	s.DrawText(4, 0, "ok")

	out := RenderScreen(s)
	// Styling never changes the printable width.
	if lipgloss.Width(out) != 6 {
		t.Errorf("printable width = %d, expected 6", lipgloss.Width(out))
	}
	if !strings.HasSuffix(out, "ok") {
		t.Errorf("default-colored run should be plain, got %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if styleFor(core.Color(200)).Render("x") != "x" {
		t.Error("unknown colors should render unstyled")
	}
}
