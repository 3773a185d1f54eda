// Package audio plays short feedback cues for field resets and
// attractor engage/release. Audio is optional: when the speaker cannot
// be acquired the visualizer runs silent.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/dustfield/constant"
)

const cueSampleRate = beep.SampleRate(constant.AudioSampleRate)

// Cues owns the speaker and plays one-shot tones. A nil *Cues is valid
// and silent, so callers do not need to guard for disabled audio.
type Cues struct {
	mu          sync.Mutex
	initialized bool
}

// NewCues acquires the speaker. On failure no Cues value is returned
// and the caller decides whether that matters.
func NewCues() (*Cues, error) {
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(constant.AudioBufferLen)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Cues{initialized: true}, nil
}

// Close stops playback and releases the speaker.
func (c *Cues) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.initialized = false
	speaker.Close()
}

// Reset plays the field-reset blip.
func (c *Cues) Reset() {
	c.play(constant.ResetCueFreq, constant.ResetCueDuration)
}

// Engage plays the attractor pickup tick.
func (c *Cues) Engage() {
	c.play(constant.EngageCueFreq, constant.EngageCueDuration)
}

// Release plays the attractor drop tick.
func (c *Cues) Release() {
	c.play(constant.ReleaseCueFreq, constant.EngageCueDuration)
}

func (c *Cues) play(freq float64, d time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	n := cueSampleRate.N(d)
	speaker.Play(beep.Take(n, newToneGenerator(freq, n)))
}

// toneGenerator streams an enveloped sine tone
type toneGenerator struct {
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

func newToneGenerator(freq float64, total int) *toneGenerator {
	return &toneGenerator{
		freq:    freq,
		total:   total,
		attack:  cueSampleRate.N(constant.CueAttack),
		release: cueSampleRate.N(constant.CueRelease),
	}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(cueSampleRate)
		sample := constant.CueGain * math.Sin(2*math.Pi*g.freq*t)

		// Attack/release envelope avoids clicks at the tone edges
		if g.attack > 0 && g.pos < g.attack {
			sample *= float64(g.pos) / float64(g.attack)
		} else if g.release > 0 && g.pos >= g.total-g.release {
			remaining := g.total - g.pos
			if remaining < 0 {
				remaining = 0
			}
			sample *= float64(remaining) / float64(g.release)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
