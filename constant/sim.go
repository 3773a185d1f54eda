package constant

// Particle Generation
const (
	// Density is the particle count as a fraction of the visible sub-row area
	Density = 0.15
)

// Attraction & Friction
const (
	// GravityStrength scales the attractor pull before distance falloff
	GravityStrength = 1.2

	// ImpulseGain multiplies the per-tick attraction impulse
	// The impulse is deliberately not scaled by dt; attraction strength
	// tracks the tick rate while friction stays time-based
	ImpulseGain = 3.0

	// AttractorDeadZone is the distance below which no impulse is applied,
	// keeping the 1/distance term away from the singularity
	AttractorDeadZone = 0.2

	// FrictionPerSecond is the exponential velocity decay base; velocity is
	// multiplied by FrictionPerSecond^dt every step
	FrictionPerSecond = 0.7
)
