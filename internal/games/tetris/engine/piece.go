package engine

// Piece is a falling piece: a shape id placed at a board offset with a
// rotation index. It is a plain value; copying it is how callers try a move
// and roll it back.
type Piece struct {
	Shape    int
	Row      int
	Col      int
	Rotation int
}

// Spawn returns a piece of the given shape at the top of a board of the given
// width. The column is the board midpoint; the engine re-centers it with
// Center once the shape's side is known.
func Spawn(shape, width int) Piece {
	return Piece{
		Shape: shape,
		Row:   0,
		Col:   width / 2,
	}
}

// Center moves the piece so its bounding square is centered on the board.
func (p *Piece) Center(width int) {
	p.Col = width/2 - Shapes[p.Shape].Side/2
}

// Side returns the bounding square size of the piece's shape.
func (p Piece) Side() int {
	return Shapes[p.Shape].Side
}

// CellAt returns the piece's code at (row, col) in its own bounding square.
func (p Piece) CellAt(row, col int) uint8 {
	return Shapes[p.Shape].Cell(row, col, p.Rotation)
}

// Each calls fn with the board coordinates and code of every nonzero cell.
func (p Piece) Each(fn func(row, col int, code uint8)) {
	side := p.Side()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if v := p.CellAt(r, c); v != 0 {
				fn(p.Row+r, p.Col+c, v)
			}
		}
	}
}

// Valid reports whether every nonzero cell of the piece lies inside the
// board and on an empty board cell.
func (p Piece) Valid(b *Board) bool {
	side := p.Side()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if p.CellAt(r, c) == 0 {
				continue
			}
			row, col := p.Row+r, p.Col+c
			if !b.InBounds(row, col) {
				return false
			}
			if b.Get(row, col) != 0 {
				return false
			}
		}
	}
	return true
}

// MoveLeft shifts the piece one column left without validation.
func (p *Piece) MoveLeft() { p.Col-- }

// MoveRight shifts the piece one column right without validation.
func (p *Piece) MoveRight() { p.Col++ }

// MoveUp shifts the piece one row up without validation.
func (p *Piece) MoveUp() { p.Row-- }

// MoveDown shifts the piece one row down without validation.
func (p *Piece) MoveDown() { p.Row++ }

// RotateCW advances the rotation index by a quarter turn.
func (p *Piece) RotateCW() { p.Rotation = (p.Rotation + 1) % 4 }

// RotateCCW steps the rotation index back by a quarter turn.
func (p *Piece) RotateCCW() { p.Rotation = (p.Rotation + 3) % 4 }
