package parameter

import "time"

// Sequencer timing
const (
	// SchedulerLookahead is the wall-clock period of the scheduling timer
	SchedulerLookahead = 25 * time.Millisecond

	// SchedulerAhead is the window past the audio clock that gets filled per tick (seconds)
	SchedulerAhead = 0.1

	StepsPerBeat = 4                         // 16th notes
	StepsPerBar  = 16                        // arrangement pattern length
	BeatsPerBar  = StepsPerBar / StepsPerBeat // 4/4 time
)

// Note reference
const (
	// A4Midi and A4Freq anchor equal temperament
	A4Midi = 69
	A4Freq = 440.0

	// ScaleLength is the number of degrees in every built-in scale
	ScaleLength = 7
)

// Mix levels
const (
	// MusicVolume is the master gain of the music bus
	MusicVolume = 0.25

	// SFXVolume is the master gain of the effects bus
	SFXVolume = 0.5

	// LeadFillChance is the per-beat probability of a lead fill where the arrangement allows one
	LeadFillChance = 0.15
)

// SecondsPerStep returns the duration of one 16th note at bpm
func SecondsPerStep(bpm float64) float64 {
	return 60.0 / bpm / StepsPerBeat
}
