// Package engine implements the falling-block game core: shapes, pieces,
// the board and the phase state machine.
// It has no dependency on terminals, storage or logging so it can be driven
// from tests and from any host loop.
package engine

// ShapeCount is the number of distinct piece shapes.
const ShapeCount = 7

// Shape is an immutable square matrix of cell codes.
// 0 is empty; any other value is the shape's color/type code.
type Shape struct {
	Data []uint8
	Side int
}

// Shapes is the catalog of piece shapes, indexed by shape id.
// Rotations are never stored; see Cell.
var Shapes = [ShapeCount]Shape{
	{ // I
		Side: 4,
		Data: []uint8{
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
	},
	{ // O
		Side: 2,
		Data: []uint8{
			2, 2,
			2, 2,
		},
	},
	{ // T
		Side: 3,
		Data: []uint8{
			0, 3, 0,
			3, 3, 3,
			0, 0, 0,
		},
	},
	{ // S
		Side: 3,
		Data: []uint8{
			0, 4, 4,
			4, 4, 0,
			0, 0, 0,
		},
	},
	{ // Z
		Side: 3,
		Data: []uint8{
			5, 5, 0,
			0, 5, 5,
			0, 0, 0,
		},
	},
	{ // J
		Side: 3,
		Data: []uint8{
			6, 0, 0,
			6, 6, 6,
			0, 0, 0,
		},
	},
	{ // L
		Side: 3,
		Data: []uint8{
			0, 0, 7,
			7, 7, 7,
			0, 0, 0,
		},
	},
}

// Cell returns the code at (row, col) of the shape viewed at the given
// rotation index. Rotation 1 is 90° clockwise, 2 is 180°, 3 is 270°.
// Any other rotation reads as empty.
func (s Shape) Cell(row, col, rotation int) uint8 {
	side := s.Side
	switch rotation {
	case 0:
		return s.Data[row*side+col]
	case 1:
		return s.Data[(side-col-1)*side+row]
	case 2:
		return s.Data[(side-row-1)*side+(side-col-1)]
	case 3:
		return s.Data[col*side+(side-row-1)]
	}
	return 0
}

// ShapeCell is Cell on the catalog shape with the given id.
func ShapeCell(id, row, col, rotation int) uint8 {
	return Shapes[id].Cell(row, col, rotation)
}
