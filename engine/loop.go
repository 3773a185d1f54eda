package engine

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dustfield/audio"
	"github.com/lixenwraith/dustfield/constant"
	"github.com/lixenwraith/dustfield/input"
	"github.com/lixenwraith/dustfield/physics"
	"github.com/lixenwraith/dustfield/render"
	"github.com/lixenwraith/dustfield/sim"
)

// Loop owns the simulation state and runs the tick cycle: render the
// current field, wait for input up to the remaining tick budget, apply
// at most one command, then integrate with the measured dt.
type Loop struct {
	screen tcell.Screen
	field  *sim.Field
	frame  *render.Frame
	raster *render.Rasterizer
	router *input.Router
	clock  *Clock
	rng    *rand.Rand
	cues   *audio.Cues

	attractor *sim.Attractor
	paused    bool
}

// NewLoop builds a loop for the screen's current dimensions. The field
// is generated by density over the sub-row area. Cues may be nil when
// audio is unavailable.
func NewLoop(screen tcell.Screen, provider TimeProvider, rng *rand.Rand, cues *audio.Cues) *Loop {
	width, height := screen.Size()
	return &Loop{
		screen: screen,
		field:  sim.NewDensity(rng, constant.Density, width, height*2),
		frame:  render.NewFrame(width, height),
		raster: render.NewRasterizer(),
		router: input.NewRouter(),
		clock:  NewClock(provider),
		rng:    rng,
		cues:   cues,
	}
}

// errEventStreamClosed reports the terminal event source shutting down
// outside a quit command, such as the screen dying underneath the loop.
var errEventStreamClosed = errors.New("terminal event stream closed")

// Run drives the loop until a quit command arrives, returning nil. When
// the terminal event source fails it returns a non-nil error instead;
// either way the screen stays acquired so the caller owns teardown.
func (l *Loop) Run() error {
	log.Printf("loop started: %dx%d cells, %d particles",
		l.frame.Width(), l.frame.Height(), l.field.Len())

	// PollEvent returning nil means the screen is gone; closing the
	// channel carries that into the loop as an IO failure.
	events := make(chan tcell.Event, constant.EventQueueSize)
	go func() {
		defer close(events)
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		l.raster.Rasterize(l.frame, l.field)
		l.frame.Flush(l.screen)

		ev, err := l.wait(events)
		if err != nil {
			log.Printf("loop aborted: %v", err)
			return err
		}
		if ev != nil {
			if quit := l.apply(l.router.Translate(ev)); quit {
				log.Print("quit requested")
				return nil
			}
		}

		dt := l.clock.Tick()
		if !l.paused {
			l.step(dt)
		}
	}
}

// wait returns the next pending event, blocking no longer than the
// remainder of the current tick. A nil event means the budget expired;
// an error means the event source is gone.
func (l *Loop) wait(events <-chan tcell.Event) (tcell.Event, error) {
	select {
	case ev, ok := <-events:
		if !ok {
			return nil, errEventStreamClosed
		}
		return ev, nil
	default:
	}

	budget := constant.TickInterval - l.clock.Since()
	if budget <= 0 {
		return nil, nil
	}
	timer := time.NewTimer(budget)
	select {
	case ev, ok := <-events:
		timer.Stop()
		if !ok {
			return nil, errEventStreamClosed
		}
		return ev, nil
	case <-timer.C:
		return nil, nil
	}
}

// apply executes one routed command. It reports whether the loop
// should stop.
func (l *Loop) apply(cmd input.Command) bool {
	switch cmd.Kind {
	case input.KindQuit:
		return true
	case input.KindReset:
		l.reset()
	case input.KindAttractorSet:
		if l.attractor == nil {
			l.cues.Engage()
		}
		l.attractor = &sim.Attractor{X: cmd.X, Y: cmd.Y}
	case input.KindAttractorClear:
		if l.attractor != nil {
			l.cues.Release()
		}
		l.attractor = nil
	case input.KindPaletteNext:
		log.Printf("palette switched to %s", l.raster.CyclePalette())
	case input.KindPauseToggle:
		l.paused = !l.paused
	case input.KindResize:
		l.frame.Resize(cmd.Width, cmd.Height)
	}
	return false
}

// reset regenerates the field at the current frame dimensions. While
// the dimensions are unchanged the cardinality is preserved exactly;
// after a resize the field is resized to the new area.
func (l *Loop) reset() {
	width := l.frame.Width()
	subrows := l.frame.Subrows()
	if width == l.field.Width && subrows == l.field.Subrows {
		l.field.Reset(l.rng)
	} else {
		l.field = sim.NewDensity(l.rng, constant.Density, width, subrows)
	}
	l.cues.Reset()
	log.Printf("field reset: %d particles", l.field.Len())
}

func (l *Loop) step(dt float64) {
	if l.field.Len() >= constant.ParallelThreshold {
		physics.StepParallel(l.field, dt, l.attractor, 0)
	} else {
		physics.Step(l.field, dt, l.attractor)
	}
}
