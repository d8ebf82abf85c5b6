package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, row int, code uint8) {
	for c := 0; c < b.Width(); c++ {
		b.Set(row, c, code)
	}
}

func TestRowFilledAndEmptyExclusive(t *testing.T) {
	b := NewBoard(Width, Height)
	fillRow(b, 21, 1)
	b.Set(20, 3, 2)

	for r := 0; r < Height; r++ {
		assert.False(t, b.RowFilled(r) && b.RowEmpty(r), "row %d", r)
	}
	assert.True(t, b.RowFilled(21))
	assert.False(t, b.RowEmpty(21))
	assert.False(t, b.RowFilled(20))
	assert.False(t, b.RowEmpty(20))
	assert.True(t, b.RowEmpty(0))
}

func TestBoardOutOfRangePanics(t *testing.T) {
	b := NewBoard(Width, Height)
	assert.Panics(t, func() { b.Get(Height, 0) })
	assert.Panics(t, func() { b.Set(0, -1, 1) })
}

func TestPieceValid(t *testing.T) {
	b := NewBoard(Width, Height)

	p := Spawn(0, Width)
	p.Center(Width)
	assert.True(t, p.Valid(b), "empty board, inside bounds")

	// The I piece occupies the second row of its square.
	p.Row = -1
	assert.True(t, p.Valid(b), "empty top row of the square may sit above the board")
	p.Row = -2
	assert.False(t, p.Valid(b), "cells above row 0")

	p = Spawn(0, Width)
	p.Col = Width - 3
	assert.False(t, p.Valid(b), "cells past the right edge")
	p.Col = -1
	assert.False(t, p.Valid(b), "cells past the left edge")

	p = Spawn(1, Width) // O
	p.Row = Height - 1
	assert.False(t, p.Valid(b), "cells past the bottom")

	p.Row = Height - 2
	require.True(t, p.Valid(b))
	b.Set(Height-1, p.Col+1, 5)
	assert.False(t, p.Valid(b), "overlaps occupied cell")
}

func TestPieceMovesDoNotValidate(t *testing.T) {
	p := Spawn(2, Width)
	p.MoveLeft()
	p.MoveLeft()
	p.MoveUp()
	assert.Equal(t, Width/2-2, p.Col)
	assert.Equal(t, -1, p.Row)
	p.MoveRight()
	p.MoveDown()
	p.MoveDown()
	assert.Equal(t, Width/2-1, p.Col)
	assert.Equal(t, 1, p.Row)

	p.RotateCCW()
	assert.Equal(t, 3, p.Rotation)
	p.RotateCW()
	assert.Equal(t, 0, p.Rotation)
}

func TestSpawnAndCenter(t *testing.T) {
	for id, s := range Shapes {
		p := Spawn(id, Width)
		assert.Equal(t, 0, p.Row)
		assert.Equal(t, Width/2, p.Col)
		assert.Equal(t, 0, p.Rotation)

		p.Center(Width)
		assert.Equal(t, Width/2-s.Side/2, p.Col, "shape %d", id)
	}
}

func TestMerge(t *testing.T) {
	b := NewBoard(Width, Height)
	p := Piece{Shape: 2, Row: 10, Col: 4, Rotation: 1} // T pointing right

	b.Merge(p)

	want := map[[2]int]bool{{10, 5}: true, {11, 5}: true, {11, 6}: true, {12, 5}: true}
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if want[[2]int{r, c}] {
				assert.Equal(t, uint8(3), b.Get(r, c), "(%d,%d)", r, c)
			} else {
				assert.Zero(t, b.Get(r, c), "(%d,%d)", r, c)
			}
		}
	}
}

func TestCompactRemovesMarkedRows(t *testing.T) {
	b := NewBoard(Width, Height)
	for r := 1; r < Height; r++ {
		b.Set(r, 0, uint8(r%7+1))
	}
	fillRow(b, 5, 3)
	fillRow(b, 7, 3)

	marks := make([]bool, Height)
	require.Equal(t, 2, b.MarkFilled(marks))
	require.True(t, marks[5])
	require.True(t, marks[7])

	b.Compact(marks)

	// Rows below the cleared rows are untouched.
	for r := 8; r < Height; r++ {
		assert.Equal(t, uint8(r%7+1), b.Get(r, 0), "row %d", r)
	}
	// Row 6 sits between the cleared rows and drops by one.
	assert.Equal(t, uint8(6%7+1), b.Get(7, 0))
	// Rows 1-4 drop by two.
	for r := 1; r <= 4; r++ {
		assert.Equal(t, uint8(r%7+1), b.Get(r+2, 0), "old row %d", r)
	}
	for r := 0; r <= 2; r++ {
		assert.True(t, b.RowEmpty(r), "row %d", r)
	}
	for r := 0; r < Height; r++ {
		assert.False(t, b.RowFilled(r), "row %d", r)
	}
}

func TestCompactNothingMarked(t *testing.T) {
	b := NewBoard(Width, Height)
	b.Set(0, 0, 1)
	b.Set(21, 9, 2)
	marks := make([]bool, Height)

	b.Compact(marks)

	assert.Equal(t, uint8(1), b.Get(0, 0))
	assert.Equal(t, uint8(2), b.Get(21, 9))
}
