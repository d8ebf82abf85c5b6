package engine

// Key is the state of one button for a single tick.
// Delta is +1 on the tick the button went down, -1 on the tick it was
// released, and 0 otherwise.
type Key struct {
	Down  bool
	Delta int8
}

// Pressed reports whether the button went down this tick.
func (k Key) Pressed() bool { return k.Delta > 0 }

// Input is the snapshot handed to Update once per tick.
type Input struct {
	Left    Key
	Right   Key
	Up      Key
	Down    Key
	Confirm Key
}

// Buttons is the raw held state of every button, as sampled by the host.
type Buttons struct {
	Left, Right, Up, Down, Confirm bool
}

// InputTracker turns consecutive Buttons samples into Input snapshots.
// The zero value treats every button as released before the first sample.
type InputTracker struct {
	prev Buttons
}

// Next diffs cur against the previous sample and remembers cur.
func (t *InputTracker) Next(cur Buttons) Input {
	in := Input{
		Left:    diff(t.prev.Left, cur.Left),
		Right:   diff(t.prev.Right, cur.Right),
		Up:      diff(t.prev.Up, cur.Up),
		Down:    diff(t.prev.Down, cur.Down),
		Confirm: diff(t.prev.Confirm, cur.Confirm),
	}
	t.prev = cur
	return in
}

// Reset forgets the previous sample.
func (t *InputTracker) Reset() {
	t.prev = Buttons{}
}

func diff(prev, cur bool) Key {
	return Key{Down: cur, Delta: int8(b2i(cur) - b2i(prev))}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
