package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Clock      time.Duration
	Phase      string
	Score      int
	Level      int
	StartLevel int
	Lines      int
	Piece      engine.Piece
	Next       int
	Paused     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Clock:      g.eng.Clock(),
		Phase:      g.eng.Phase().String(),
		Score:      g.eng.Score(),
		Level:      g.eng.Level(),
		StartLevel: g.eng.StartLevel(),
		Lines:      g.eng.Lines(),
		Piece:      g.eng.Piece(),
		Next:       g.eng.NextPiece().Shape,
		Paused:     g.paused,
	}
}
