// Package physics advances the particle field: point-attractor gravity,
// exponential friction, explicit Euler position update. Particles are
// mutually independent; a step touches nothing but each particle's own
// position and velocity.
package physics

import (
	"math"
	"runtime"
	"sync"

	"github.com/lixenwraith/dustfield/constant"
	"github.com/lixenwraith/dustfield/sim"
)

// Step integrates every particle over dt seconds toward the attractor, or
// with friction only when at is nil. dt must be >= 0. Positions are never
// clamped; particles outside the visible area keep integrating.
func Step(f *sim.Field, dt float64, at *sim.Attractor) {
	friction := math.Pow(constant.FrictionPerSecond, dt)
	for i := range f.Particles {
		advance(&f.Particles[i], dt, friction, at)
	}
}

// StepParallel is Step with the particle slice partitioned across workers
// by disjoint index ranges. Each worker writes only its own particles, so
// the result is identical to the serial step. workers <= 0 selects one per
// CPU. The caller decides when the field is large enough to bother.
func StepParallel(f *sim.Field, dt float64, at *sim.Attractor, workers int) {
	n := len(f.Particles)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		Step(f, dt, at)
		return
	}

	friction := math.Pow(constant.FrictionPerSecond, dt)
	per := n / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * per
		end := start + per
		if w == workers-1 {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				advance(&f.Particles[i], dt, friction, at)
			}
		}(start, end)
	}
	wg.Wait()
}

// advance applies one integration step to a single particle.
//
// The attraction term is a per-tick impulse, not an acceleration: it is
// deliberately left unscaled by dt, so pull strength follows the tick rate
// while friction decays in wall-clock time. Inside the dead zone around the
// attractor no impulse is applied, which keeps the 1/distance factor away
// from the singularity; the boundary itself is exclusive.
func advance(p *sim.Particle, dt, friction float64, at *sim.Attractor) {
	if at != nil {
		ddx := at.X - p.X
		ddy := at.Y - p.Y
		dist := math.Sqrt(ddx*ddx + ddy*ddy)
		if dist > constant.AttractorDeadZone {
			pull := constant.GravityStrength / dist * constant.ImpulseGain
			p.DX += ddx * pull
			p.DY += ddy * pull
		}
	}

	p.DX *= friction
	p.DY *= friction
	p.X += p.DX * dt
	p.Y += p.DY * dt
}
