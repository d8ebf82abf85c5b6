package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Player identifies who is playing, for score records and logs.
type Player struct {
	Name      string
	SessionID string // Empty for local play
}

// startLeveler is implemented by games that report their chosen start level.
type startLeveler interface {
	StartLevel() int
}

// GameModel is the Bubble Tea model that drives one game.
// Key presses seen between two ticks are collected into one input frame.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     Player
	keys       KeyMap
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	tickGen    uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
// A nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap, player Player, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keys:       keys,
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil // Stale tick from a previous game
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records keyboard input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlS {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving mid-game would lose the run, so only allow it when idle.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused || m.gameState.Idle) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// handleEvent logs game events and records finished games.
func (m *GameModel) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventGameStarted:
		m.logger.Info("game started", "start_level", ev.Value)
	case core.EventLinesCleared:
		m.logger.Debug("lines cleared", "rows", ev.Value, "total", m.gameState.Lines)
	case core.EventLevelUp:
		m.logger.Info("level up", "level", ev.Value)
	case core.EventGameOver:
		m.logger.Info("game over", "score", ev.Value, "lines", m.gameState.Lines, "level", m.gameState.Level)
		m.saveScore()
	}
}

// saveScore stores the finished game. Failures are logged, never fatal.
func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	result := storage.Result{
		GameID:    m.game.ID(),
		Player:    m.player.Name,
		SessionID: m.player.SessionID,
		Score:     m.gameState.Score,
		Lines:     m.gameState.Lines,
		Level:     m.gameState.Level,
	}
	if sl, ok := m.game.(startLeveler); ok {
		result.StartLevel = sl.StartLevel()
	}
	id, err := m.store.SaveScore(result)
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", result.Score)
}

// saveScreenshot writes the current screen as plain text to ~/.tetris/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a local game session ended.
type RunResult struct {
	BackToMenu bool
	State      core.GameState
}

// Run starts the Bubble Tea program for one game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap, player Player, logger *log.Logger) (RunResult, error) {
	model := NewGameModel(game, store, cfg, keys, player, logger)

	p := tea.NewProgram(
		exitOnBack{model},
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(exitOnBack)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{BackToMenu: m.BackToMenu(), State: m.State()}, nil
}

// exitOnBack ends the local program when the player asks for the menu,
// so the CLI can show its own menu program next.
type exitOnBack struct {
	GameModel
}

func (e exitOnBack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := e.GameModel.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		return next, cmd
	}
	if gm.BackToMenu() {
		return exitOnBack{gm}, tea.Quit
	}
	return exitOnBack{gm}, cmd
}
