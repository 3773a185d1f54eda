package constant

import "time"

// Audio Cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer length; latency ceiling for cues
	AudioBufferLen = 100 * time.Millisecond

	// ResetCueDuration is the length of the field-reset blip
	ResetCueDuration = 90 * time.Millisecond

	// ResetCueFreq is the field-reset blip frequency in Hz
	ResetCueFreq = 660.0

	// EngageCueDuration is the length of the attractor engage/release tick
	EngageCueDuration = 45 * time.Millisecond

	// EngageCueFreq is the attractor engage tick frequency in Hz
	EngageCueFreq = 880.0

	// ReleaseCueFreq is the attractor release tick frequency in Hz
	ReleaseCueFreq = 440.0

	// CueAttack and CueRelease are the envelope ramps applied to every cue
	CueAttack  = 4 * time.Millisecond
	CueRelease = 20 * time.Millisecond

	// CueGain is the output level of generated cues
	CueGain = 0.25
)
