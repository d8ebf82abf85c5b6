package engine

import (
	"math/rand"
	"time"
)

// Phase is the state of the game's phase machine.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlay
	PhaseLineClear
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlay:
		return "play"
	case PhaseLineClear:
		return "line_clear"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultStartLevel is the start level used when none is chosen.
const DefaultStartLevel = 1

// DefaultHighlight is how long filled rows stay on screen before they are
// removed.
const DefaultHighlight = 500 * time.Millisecond

// Game owns the board and the falling piece and advances them one tick per
// Update call. It is not safe for concurrent use.
type Game struct {
	board *Board
	marks []bool

	piece Piece
	next  Piece
	rand  *Randomizer

	phase        Phase
	startLevel   int
	level        int
	lines        int
	pendingLines int
	score        int

	clock        time.Duration
	nextDrop     time.Duration
	highlightEnd time.Duration
	highlight    time.Duration
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand sets the source used for shape ids.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rand = NewRandomizer(rng)
	}
}

// WithHighlight sets how long the line-clear phase lasts.
func WithHighlight(d time.Duration) Option {
	return func(g *Game) {
		if d >= 0 {
			g.highlight = d
		}
	}
}

// New creates a game in the start phase. Negative start levels are raised
// to 0.
func New(startLevel int, opts ...Option) *Game {
	startLevel = max(startLevel, 0)
	g := &Game{
		board:      NewBoard(Width, Height),
		marks:      make([]bool, Height),
		phase:      PhaseStart,
		startLevel: startLevel,
		level:      startLevel,
		highlight:  DefaultHighlight,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = NewRandomizer(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	g.piece = Spawn(g.rand.Current(), Width)
	g.next = Spawn(g.rand.Next(), Width)
	return g
}

// SetTime sets the game clock. The clock is expected to be monotonic.
func (g *Game) SetTime(t time.Duration) { g.clock = t }

// Advance moves the game clock forward by d.
func (g *Game) Advance(d time.Duration) { g.clock += d }

// Update advances the phase machine by one tick.
func (g *Game) Update(in Input) {
	switch g.phase {
	case PhaseStart:
		g.updateStart(in)
	case PhasePlay:
		g.updatePlay(in)
	case PhaseLineClear:
		g.updateLineClear()
	case PhaseGameOver:
		g.updateGameOver(in)
	}
}

func (g *Game) updateStart(in Input) {
	if in.Up.Pressed() {
		g.startLevel++
	}
	if in.Down.Pressed() && g.startLevel > 0 {
		g.startLevel--
	}
	if in.Confirm.Pressed() {
		g.board.Clear()
		clear(g.marks)
		g.level = g.startLevel
		g.lines = 0
		g.pendingLines = 0
		g.score = 0
		g.spawn()
		g.phase = PhasePlay
	}
}

func (g *Game) updatePlay(in Input) {
	if in.Left.Pressed() {
		g.piece.MoveLeft()
		if !g.piece.Valid(g.board) {
			g.piece.MoveRight()
		}
	}
	if in.Right.Pressed() {
		g.piece.MoveRight()
		if !g.piece.Valid(g.board) {
			g.piece.MoveLeft()
		}
	}
	if in.Up.Pressed() && g.piece.Valid(g.board) {
		g.piece.RotateCW()
		if !g.piece.Valid(g.board) {
			g.piece.RotateCCW()
		}
	}
	if in.Down.Pressed() {
		g.SoftDrop()
	}
	if in.Confirm.Pressed() {
		g.HardDrop()
	}

	// Gravity catches up one step per elapsed interval.
	for g.clock >= g.nextDrop {
		g.drop(g.nextDrop)
	}

	g.pendingLines = g.board.MarkFilled(g.marks)
	if g.pendingLines > 0 {
		g.phase = PhaseLineClear
		g.highlightEnd = g.clock + g.highlight
		return
	}
	if !g.board.RowEmpty(0) {
		g.phase = PhaseGameOver
	}
}

func (g *Game) updateLineClear() {
	if g.clock < g.highlightEnd {
		return
	}
	g.board.Compact(g.marks)
	clear(g.marks)
	g.lines += g.pendingLines
	g.score += Points(g.pendingLines, g.level)
	g.pendingLines = 0
	if g.lines >= LinesForNextLevel(g.startLevel, g.level) {
		g.level++
	}
	g.phase = PhasePlay
}

func (g *Game) updateGameOver(in Input) {
	if in.Confirm.Pressed() {
		g.phase = PhaseStart
	}
}

// SoftDrop performs one drop step from the current clock and reports
// whether the piece locked.
func (g *Game) SoftDrop() (locked bool) {
	return g.drop(g.clock)
}

// HardDrop drops the piece until it locks.
func (g *Game) HardDrop() {
	for !g.SoftDrop() {
	}
}

// drop moves the piece down one row. The next gravity deadline is scheduled
// one interval after from; a lock reschedules from the clock instead.
func (g *Game) drop(from time.Duration) (locked bool) {
	g.piece.MoveDown()
	if g.piece.Valid(g.board) {
		g.nextDrop = from + DropInterval(g.level)
		return false
	}
	g.piece.MoveUp()
	g.board.Merge(g.piece)
	g.rand.Reroll()
	g.spawn()
	return true
}

// spawn promotes the buffered id to the falling piece and refreshes the
// preview.
func (g *Game) spawn() {
	g.piece = Spawn(g.rand.Promote(), Width)
	g.piece.Center(Width)
	g.next = Spawn(g.rand.Next(), Width)
	g.nextDrop = g.clock + DropInterval(g.level)
}

// Cell returns the locked board code at (row, col).
func (g *Game) Cell(row, col int) uint8 { return g.board.Get(row, col) }

// Piece returns the falling piece.
func (g *Game) Piece() Piece { return g.piece }

// NextPiece returns the preview piece.
func (g *Game) NextPiece() Piece { return g.next }

// GhostPiece returns where the falling piece would land if hard dropped.
func (g *Game) GhostPiece() Piece {
	p := g.piece
	if !p.Valid(g.board) {
		return p
	}
	for p.Valid(g.board) {
		p.MoveDown()
	}
	p.MoveUp()
	return p
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// RowMarked reports whether a row is highlighted for clearing.
func (g *Game) RowMarked(row int) bool { return g.marks[row] }

// PendingLines returns how many rows are waiting to be cleared.
func (g *Game) PendingLines() int { return g.pendingLines }

// Score returns the accumulated points.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// StartLevel returns the level the next game will start at.
func (g *Game) StartLevel() int { return g.startLevel }

// Lines returns the number of rows cleared this game.
func (g *Game) Lines() int { return g.lines }

// Clock returns the game clock.
func (g *Game) Clock() time.Duration { return g.clock }

// NextDrop returns the time of the next gravity step.
func (g *Game) NextDrop() time.Duration { return g.nextDrop }
