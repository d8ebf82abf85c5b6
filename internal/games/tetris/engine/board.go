package engine

import "fmt"

// Board dimensions. Height includes the buffer rows above the visible
// area; only the bottom VisibleHeight rows are drawn.
const (
	Width         = 10
	Height        = 22
	VisibleHeight = 20
)

// Board is a row-major grid of cell codes.
type Board struct {
	width  int
	height int
	cells  []uint8
}

// NewBoard allocates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows, buffer rows included.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (row, col) addresses a board cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("engine: cell (%d,%d) out of range %dx%d", row, col, b.height, b.width))
	}
	return row*b.width + col
}

// Get returns the code at (row, col). Panics when out of range.
func (b *Board) Get(row, col int) uint8 {
	return b.cells[b.index(row, col)]
}

// Set writes the code at (row, col). Panics when out of range.
func (b *Board) Set(row, col int, v uint8) {
	b.cells[b.index(row, col)] = v
}

// Clear zero-fills the whole board.
func (b *Board) Clear() {
	clear(b.cells)
}

// row returns the slice backing row r. Callers must not retain it
// across mutations.
func (b *Board) row(r int) []uint8 {
	start := b.index(r, 0)
	return b.cells[start : start+b.width]
}

// RowFilled reports whether every column of the row is occupied.
func (b *Board) RowFilled(r int) bool {
	for _, v := range b.row(r) {
		if v == 0 {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every column of the row is free.
func (b *Board) RowEmpty(r int) bool {
	for _, v := range b.row(r) {
		if v != 0 {
			return false
		}
	}
	return true
}

// MarkFilled sets marks[r] for every filled row and returns how many rows
// were marked. len(marks) must equal the board height.
func (b *Board) MarkFilled(marks []bool) int {
	count := 0
	for r := 0; r < b.height; r++ {
		marks[r] = b.RowFilled(r)
		if marks[r] {
			count++
		}
	}
	return count
}

// Compact removes the marked rows and drops everything above them.
// Destination rows run from the bottom up to row 1; row 0 is the spawn row
// and is never written by compaction. Vacated rows are zero-filled.
func (b *Board) Compact(marks []bool) {
	src := b.height - 1
	for dst := b.height - 1; dst >= 1; dst-- {
		for src >= 0 && marks[src] {
			src--
		}
		if src < 0 {
			clear(b.row(dst))
			continue
		}
		if src != dst {
			copy(b.row(dst), b.row(src))
		}
		src--
	}
}

// Merge writes every nonzero cell of the piece into the board.
// Cells outside the board are skipped.
func (b *Board) Merge(p Piece) {
	p.Each(func(row, col int, code uint8) {
		if b.InBounds(row, col) {
			b.Set(row, col, code)
		}
	})
}
