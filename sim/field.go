package sim

import (
	"math/rand/v2"
)

// Field owns the full particle collection for one visible area. Particles
// live in sub-row space: Width columns by Subrows half-rows. The collection
// is only ever replaced wholesale (generation, reset), never partially by
// identity, and its cardinality is constant between resets.
type Field struct {
	Particles []Particle

	// Width and Subrows are the generation-time extents. Particles may
	// drift outside them; integration never clamps.
	Width   int
	Subrows int
}

// New generates a field of count particles with positions uniform over
// [0,width) x [0,subrows) and velocities uniform over [-1,1) per axis,
// every draw independent. A zero count is legal and yields an empty
// field.
func New(rng *rand.Rand, count, width, subrows int) *Field {
	f := &Field{
		Particles: make([]Particle, 0, count),
		Width:     width,
		Subrows:   subrows,
	}
	f.populate(rng, count)
	return f
}

// NewDensity generates a field sized as a fraction of the visible sub-row
// area, matching New in every other respect.
func NewDensity(rng *rand.Rand, density float64, width, subrows int) *Field {
	count := int(float64(width*subrows) * density)
	return New(rng, count, width, subrows)
}

// Reset replaces every particle with a freshly randomized one at the
// field's current dimensions. Cardinality is preserved and no particle
// instance survives from the previous generation.
func (f *Field) Reset(rng *rand.Rand) {
	count := len(f.Particles)
	f.Particles = make([]Particle, 0, count)
	f.populate(rng, count)
}

func (f *Field) populate(rng *rand.Rand, count int) {
	w := float64(f.Width)
	h := float64(f.Subrows)
	for i := 0; i < count; i++ {
		f.Particles = append(f.Particles, Particle{
			X:  rng.Float64() * w,
			Y:  rng.Float64() * h,
			DX: rng.Float64()*2 - 1,
			DY: rng.Float64()*2 - 1,
		})
	}
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.Particles)
}
