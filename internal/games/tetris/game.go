// Package tetris adapts the falling-block engine to the terminal game platform:
// it paces the engine clock by ticks, turns held actions into edge-triggered
// input and draws the well into the shared screen buffer.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry and score-storage identifier.
const ID = "tetris"

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       = -1 // -1 keeps the configured level
)

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetStartLevel overrides the preselected start level. Negative values
// restore the configured level.
func SetStartLevel(level int) {
	startLevel = level
}

// Game implements registry.Game on top of engine.Game.
type Game struct {
	eng     *engine.Game
	cfg     config.TetrisConfig
	palette [engine.ShapeCount + 1]core.Color
	tracker engine.InputTracker

	tick     uint64
	tickDur  time.Duration
	paused   bool
	lastSeen engine.Phase
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig(), palette: defaultPalette}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset loads configuration and builds a fresh engine seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tcfg, err := config.LoadTetris(configPath)
	if err != nil {
		tcfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&tcfg, difficultyPreset)
	if startLevel >= 0 {
		tcfg.StartLevel = startLevel
	}
	g.cfg = tcfg
	g.palette = buildPalette(tcfg.Palette)

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(rate)

	g.eng = engine.New(tcfg.StartLevel,
		engine.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		engine.WithHighlight(tcfg.Highlight()),
	)
	g.tracker.Reset()
	g.tick = 0
	g.paused = false
	g.lastSeen = g.eng.Phase()
}

// Step advances the engine clock by one tick and runs one update.
// While paused the clock is frozen and input is dropped.
//
// Terminals report key presses but never releases, so every key seen
// during a tick is a fresh press and all buttons are released again after
// the update. Auto-repeat therefore acts once per tick that received a key.
// Several presses of one key inside a single tick still count once.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	phase := g.eng.Phase()
	toggled := false
	if in.Has(core.ActionPause) && (phase == engine.PhasePlay || phase == engine.PhaseLineClear) {
		g.paused = !g.paused
		toggled = true
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var buttons engine.Buttons
	if !toggled {
		buttons = engine.Buttons{
			Left:    in.Has(core.ActionLeft),
			Right:   in.Has(core.ActionRight),
			Up:      in.Has(core.ActionUp),
			Down:    in.Has(core.ActionDown),
			Confirm: in.Has(core.ActionConfirm),
		}
	}

	level := g.eng.Level()
	g.eng.Advance(g.tickDur)
	g.eng.Update(g.tracker.Next(buttons))
	g.tracker.Reset()

	return core.StepResult{State: g.State(), Events: g.events(level)}
}

// events reports phase transitions and level changes caused by the last update.
func (g *Game) events(prevLevel int) []core.Event {
	var events []core.Event
	phase := g.eng.Phase()
	if phase != g.lastSeen {
		switch phase {
		case engine.PhasePlay:
			if g.lastSeen == engine.PhaseStart {
				events = append(events, core.Event{Kind: core.EventGameStarted, Value: g.eng.StartLevel()})
			}
		case engine.PhaseLineClear:
			events = append(events, core.Event{Kind: core.EventLinesCleared, Value: g.eng.PendingLines()})
		case engine.PhaseGameOver:
			events = append(events, core.Event{Kind: core.EventGameOver, Value: g.eng.Score()})
		}
	}
	if phase == engine.PhasePlay && g.lastSeen == engine.PhaseLineClear && g.eng.Level() != prevLevel {
		events = append(events, core.Event{Kind: core.EventLevelUp, Value: g.eng.Level()})
	}
	g.lastSeen = phase
	return events
}

// State returns score, progress and flags for the platform.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		Level:    g.eng.Level(),
		GameOver: g.eng.Phase() == engine.PhaseGameOver,
		Paused:   g.paused,
		Idle:     g.eng.Phase() == engine.PhaseStart,
	}
}

// StartLevel returns the level the current or next game starts at.
func (g *Game) StartLevel() int {
	if g.eng == nil {
		return g.cfg.StartLevel
	}
	return g.eng.StartLevel()
}

// Engine exposes the underlying engine for tests and debugging.
func (g *Game) Engine() *engine.Game { return g.eng }
