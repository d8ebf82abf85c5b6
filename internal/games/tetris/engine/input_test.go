package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTrackerDeltas(t *testing.T) {
	var tr InputTracker

	in := tr.Next(Buttons{Left: true})
	assert.Equal(t, Key{Down: true, Delta: 1}, in.Left)
	assert.True(t, in.Left.Pressed())
	assert.Equal(t, Key{}, in.Right)

	in = tr.Next(Buttons{Left: true, Confirm: true})
	assert.Equal(t, Key{Down: true, Delta: 0}, in.Left)
	assert.False(t, in.Left.Pressed())
	assert.True(t, in.Confirm.Pressed())

	in = tr.Next(Buttons{})
	assert.Equal(t, Key{Down: false, Delta: -1}, in.Left)
	assert.Equal(t, Key{Down: false, Delta: -1}, in.Confirm)
	assert.False(t, in.Confirm.Pressed())

	tr.Next(Buttons{Up: true})
	tr.Reset()
	in = tr.Next(Buttons{Up: true})
	assert.True(t, in.Up.Pressed(), "reset forgets held buttons")
}
