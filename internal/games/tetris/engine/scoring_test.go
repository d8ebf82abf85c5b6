package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		lines int
		level int
		want  int
	}{
		{lines: 0, level: 3, want: 0},
		{lines: 1, level: 0, want: 40},
		{lines: 2, level: 0, want: 100},
		{lines: 3, level: 0, want: 300},
		{lines: 4, level: 0, want: 1200},
		{lines: 1, level: 9, want: 400},
		{lines: 4, level: 9, want: 12000},
		{lines: 5, level: 1, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Points(tt.lines, tt.level), "lines=%d level=%d", tt.lines, tt.level)
	}
}

func TestLinesForNextLevel(t *testing.T) {
	tests := []struct {
		start int
		level int
		want  int
	}{
		{start: 5, level: 5, want: 60},
		{start: 5, level: 6, want: 70},
		{start: 0, level: 0, want: 10},
		{start: 0, level: 3, want: 40},
		{start: 1, level: 1, want: 20},
		{start: 10, level: 10, want: 100},
		{start: 15, level: 15, want: 100},
		{start: 19, level: 19, want: 140},
		{start: 19, level: 21, want: 160},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LinesForNextLevel(tt.start, tt.level), "start=%d level=%d", tt.start, tt.level)
	}
}

func TestDropInterval(t *testing.T) {
	assert.Equal(t, 48*FrameDuration, DropInterval(0))
	assert.Equal(t, 43*FrameDuration, DropInterval(1))
	assert.Equal(t, 6*FrameDuration, DropInterval(9))
	assert.Equal(t, 2*FrameDuration, DropInterval(28))
	assert.Equal(t, FrameDuration, DropInterval(29))
	assert.Equal(t, FrameDuration, DropInterval(120), "clamped to the fastest entry")
	assert.Equal(t, DropInterval(0), DropInterval(-4))

	prev := time.Duration(1 << 62)
	for level := 0; level < 30; level++ {
		cur := DropInterval(level)
		assert.LessOrEqual(t, cur, prev, "level %d", level)
		prev = cur
	}
}

func TestRandomizerBounds(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(3)))
	for rangeIdx := 0; rangeIdx < 1000; rangeIdx++ {
		v := r.Int(0, ShapeCount)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, ShapeCount)
	}
}

func TestRandomizerPreviewIsNextSpawn(t *testing.T) {
	r := NewRandomizer(rand.New(rand.NewSource(11)))
	r.Promote()
	for rangeIdx := 0; rangeIdx < 50; rangeIdx++ {
		preview := r.Next()
		r.Reroll()
		assert.Equal(t, preview, r.Promote())
	}
}
