package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// scriptedGame is a registry.Game that replays queued step results and
// records the frames it was given.
type scriptedGame struct {
	results []core.StepResult
	frames  []core.InputFrame
	state   core.GameState
	resets  int
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) StartLevel() int          { return 3 }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.results[0]
	g.results = g.results[1:]
	g.state = r.State
	return r
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g *scriptedGame, store *storage.Store) GameModel {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return NewGameModel(g, store, cfg, DefaultKeyMap(), Player{Name: "ann", SessionID: "s-1"}, nil)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(m GameModel) TickMsg {
	return TickMsg{Gen: m.tickGen}
}

func TestModelCollectsKeysPerTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)
	m.Init()

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, tick(m))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, tick(m))

	if len(g.frames) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionUp) {
		t.Errorf("first frame should hold Left and Up: %v", g.frames[0].Actions)
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("frame should be cleared after a tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m, cmd := update(t, m, TickMsg{Gen: m.tickGen + 100})
	if cmd != nil || len(g.frames) != 0 {
		t.Error("stale tick should not step the game")
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openStore(t)
	over := core.GameState{Score: 1200, Lines: 4, Level: 3, GameOver: true}
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 1200, Lines: 4, Level: 3}, Events: []core.Event{{Kind: core.EventLinesCleared, Value: 4}}},
		{State: over, Events: []core.Event{{Kind: core.EventGameOver, Value: 1200}}},
		{State: over},
	}}
	m := newTestModel(g, store)

	for rangeIdx := 0; rangeIdx < 3; rangeIdx++ {
		m, _ = update(t, m, tick(m))
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	s := scores[0]
	if s.Score != 1200 || s.Lines != 4 || s.Level != 3 || s.StartLevel != 3 {
		t.Errorf("saved entry = %+v", s)
	}
	if s.Player != "ann" || s.SessionID != "s-1" {
		t.Errorf("player fields = %q/%q", s.Player, s.SessionID)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{GameOver: true}, Events: []core.Event{{Kind: core.EventGameOver}}},
	}}
	m := newTestModel(g, store)
	update(t, m, tick(m))

	high, _ := store.HighScore("scripted")
	if high != 0 {
		t.Errorf("zero score should not be stored, high = %d", high)
	}
}

func TestModelBackOnlyWhenIdle(t *testing.T) {
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 40}},
		{State: core.GameState{Score: 40, Paused: true}},
	}}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored mid-game")
	}

	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	if !strings.Contains(m.View(), "scripted") {
		t.Errorf("view should contain the rendered game, got %q", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}
