package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/dustfield/constant"
)

// TestCuesNilSafe verifies cue calls don't panic when audio is disabled
func TestCuesNilSafe(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue calls panicked on nil receiver: %v", r)
		}
	}()

	var c *Cues
	c.Reset()
	c.Engage()
	c.Release()
	c.Close()
}

// TestCuesAcquireRelease verifies the speaker can be acquired and released
func TestCuesAcquireRelease(t *testing.T) {
	c, err := NewCues()
	if err != nil {
		// Speaker acquisition may fail in test environments without audio devices
		t.Logf("Cue initialization failed (expected in test environment): %v", err)
		return
	}

	c.Reset()
	c.Close()
	c.Reset()
	c.Close()
}

func TestToneGeneratorBounds(t *testing.T) {
	total := cueSampleRate.N(constant.EngageCueDuration)
	g := newToneGenerator(constant.EngageCueFreq, total)
	buf := make([][2]float64, total)

	n, ok := g.Stream(buf)
	if n != total || !ok {
		t.Fatalf("Expected full stream of %d samples, got %d ok=%v", total, n, ok)
	}

	for i, s := range buf {
		if math.Abs(s[0]) > constant.CueGain || math.Abs(s[1]) > constant.CueGain {
			t.Fatalf("Expected samples within gain %v, got %v at %d", constant.CueGain, s, i)
		}
		if s[0] != s[1] {
			t.Fatalf("Expected identical stereo channels, got %v at %d", s, i)
		}
	}
}

func TestToneGeneratorEnvelopeEdges(t *testing.T) {
	total := cueSampleRate.N(constant.ResetCueDuration)
	g := newToneGenerator(constant.ResetCueFreq, total)
	buf := make([][2]float64, total)
	g.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample from attack ramp, got %v", buf[0][0])
	}

	release := cueSampleRate.N(constant.CueRelease)
	peak := 0.0
	for _, s := range buf[total-release/4:] {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak > constant.CueGain/2 {
		t.Errorf("Expected release tail attenuated, peak %v", peak)
	}
}
