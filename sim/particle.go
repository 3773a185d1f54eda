package sim

// Particle is a free point mass in sub-row space.
type Particle struct {
	// X and Y are continuous coordinates; X spans the column range and Y
	// spans twice the row range (two sub-rows per character cell)
	X, Y float64
	// DX and DY are velocity components in sub-rows per second, unbounded
	DX, DY float64
}

// Attractor is the single pointer-driven force target. Every particle is
// pulled toward it while it exists; absence is represented by a nil pointer.
type Attractor struct {
	X, Y float64
}
