package engine

import "math/rand"

// Randomizer double-buffers shape ids so the preview is always the piece
// that spawns next.
type Randomizer struct {
	rng     *rand.Rand
	current int
	next    int
}

// NewRandomizer fills both slots from rng.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	r := &Randomizer{rng: rng}
	r.current = r.Int(0, ShapeCount)
	r.next = r.Int(0, ShapeCount)
	return r
}

// Int draws a uniform value in [lo, hi).
func (r *Randomizer) Int(lo, hi int) int {
	return lo + r.rng.Intn(hi-lo)
}

// Current is the id of the piece about to spawn.
func (r *Randomizer) Current() int { return r.current }

// Next is the id shown in the preview.
func (r *Randomizer) Next() int { return r.next }

// Reroll draws a fresh id into the next slot.
func (r *Randomizer) Reroll() {
	r.next = r.Int(0, ShapeCount)
}

// Promote hands out the current id and moves next into its place.
func (r *Randomizer) Promote() int {
	id := r.current
	r.current = r.next
	return id
}
