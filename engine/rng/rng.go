// Package rng provides a seeded linear-congruential generator with
// deterministic position tracking. Every probabilistic game behavior routes
// through one Generator so a fixed seed replays a session bit-for-bit.
package rng

// Classic LCG parameters (glibc).
const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Generator is a deterministic pseudo-random source.
// Position increments with every draw, enabling save/restore.
type Generator struct {
	seed  int64
	state int64
	pos   int64
}

// New creates a Generator from a seed.
func New(seed int64) *Generator {
	g := &Generator{}
	g.SetSeed(seed)
	return g
}

// SetSeed resets the generator to the start of the sequence for seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.state = seed % modulus
	if g.state < 0 {
		g.state += modulus
	}
	g.pos = 0
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Next returns the next float in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	g.pos++
	return float64(g.state) / float64(modulus)
}

// IntN returns a random integer in [min, max], inclusive on both ends.
// min > max is treated as a single-value range at min.
func (g *Generator) IntN(min, max int) int {
	if max <= min {
		g.Next() // still consume one draw so call sequences stay aligned
		return min
	}
	span := max - min + 1
	return min + int(g.Next()*float64(span))
}

// Bool returns true with probability p. Bool(0) is always false,
// Bool(1) is always true.
func (g *Generator) Bool(p float64) bool {
	return g.Next() < p
}

// Position returns the number of draws made since the last SetSeed.
func (g *Generator) Position() int64 {
	return g.pos
}

// Restore creates a Generator and advances it to the given position.
// This reproduces the exact generator state for save/load.
func Restore(seed int64, position int64) *Generator {
	g := New(seed)
	g.Seek(seed, position)
	return g
}

// Seek resets the generator in place to the given seed and position.
// Holders of the Generator pointer keep drawing from the restored sequence.
func (g *Generator) Seek(seed int64, position int64) {
	g.SetSeed(seed)
	for i := int64(0); i < position; i++ {
		g.Next()
	}
}

// Choice returns a uniformly chosen element of items.
// The second return is false for an empty slice.
func Choice[T any](g *Generator, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[g.IntN(0, len(items)-1)], true
}

// Shuffle permutes items in place using Fisher-Yates.
func Shuffle[T any](g *Generator, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.IntN(0, i)
		items[i], items[j] = items[j], items[i]
	}
}
