package audio

import (
	"math"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
)

// Scales as semitone offsets from the tonic
var (
	ScaleDorian = [parameter.ScaleLength]int{0, 2, 3, 5, 7, 9, 10}
	ScaleMajor  = [parameter.ScaleLength]int{0, 2, 4, 5, 7, 9, 11}
	ScaleMinor  = [parameter.ScaleLength]int{0, 2, 3, 5, 7, 8, 10}
)

// StepMask marks active steps of a 16-step bar, bit i = step i
type StepMask uint16

// Steps builds a mask from step indices
func Steps(steps ...int) StepMask {
	var m StepMask
	for _, s := range steps {
		m |= 1 << (s % parameter.StepsPerBar)
	}
	return m
}

// Every builds a mask hitting every n-th step starting at 0
func Every(n int) StepMask {
	var m StepMask
	for s := 0; s < parameter.StepsPerBar; s += n {
		m |= 1 << s
	}
	return m
}

// Has reports whether step is active
func (m StepMask) Has(step int) bool {
	return m&(1<<(step%parameter.StepsPerBar)) != 0
}

// Index returns the ordinal of step among active steps, or -1
func (m StepMask) Index(step int) int {
	step %= parameter.StepsPerBar
	if !m.Has(step) {
		return -1
	}
	below := m & (1<<step - 1)
	n := 0
	for ; below != 0; below &= below - 1 {
		n++
	}
	return n
}

// Part is one instrument line of an arrangement
type Part struct {
	Steps  StepMask
	Volume float64

	// Jitter adds uniform random volume in [0, Jitter)
	Jitter float64

	// Degree is a scale-degree offset applied to the chosen chord tone
	Degree int

	// Chance gates each hit with a probability; 0 means always
	Chance float64
}

// Active reports whether the part plays at all
func (p Part) Active() bool { return p.Steps != 0 }

// Arrangement is the per-instrument step table of a track
type Arrangement [core.InstrumentCount]Part

// Track is a read-only song definition
type Track struct {
	Name          string
	BPM           float64
	Scale         [parameter.ScaleLength]int
	BaseNote      int
	Chords        [][]int
	BeatsPerChord int
	Arrangement   Arrangement
}

// ScaleNote maps a scale degree (any integer) to a MIDI pitch
func (t *Track) ScaleNote(degree int) int {
	octave := floorDiv(degree, parameter.ScaleLength)
	idx := ((degree % parameter.ScaleLength) + parameter.ScaleLength) % parameter.ScaleLength
	return t.BaseNote + octave*12 + t.Scale[idx]
}

// StepSeconds is the duration of one 16th note
func (t *Track) StepSeconds() float64 {
	return parameter.SecondsPerStep(t.BPM)
}

// MidiToFreq converts a MIDI pitch to Hz in equal temperament
func MidiToFreq(midi int) float64 {
	return parameter.A4Freq * math.Pow(2, float64(midi-parameter.A4Midi)/12)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Tracks is the built-in song list, indexed by core.TrackID
var Tracks = [core.TrackCount]Track{
	core.TrackLofiSpace: {
		Name:          "Lofi Space",
		BPM:           75,
		Scale:         ScaleDorian,
		BaseNote:      48,
		Chords:        [][]int{{0, 3, 5, 9}, {5, 8, 10, 14}, {3, 7, 10, 12}, {7, 10, 14, 17}},
		BeatsPerChord: 16,
		Arrangement: Arrangement{
			core.InstrBass:  {Steps: Steps(0, 8), Volume: 0.4, Degree: -7},
			core.InstrHihat: {Steps: Every(2), Volume: 0.08, Jitter: 0.05},
			core.InstrSnare: {Steps: Steps(4, 12), Volume: 0.15},
			core.InstrChord: {Steps: Steps(0, 6, 10), Volume: 0.12},
			core.InstrLead:  {Steps: Steps(2, 6, 10, 14), Volume: 0.1, Degree: 12, Chance: parameter.LeadFillChance},
		},
	},
	core.TrackTakeOnMe: {
		Name:          "Take On Me",
		BPM:           169,
		Scale:         ScaleMajor,
		BaseNote:      57,
		Chords:        [][]int{{0, 4, 7}, {9, 13, 16}, {-3, 1, 4}, {2, 6, 9}},
		BeatsPerChord: 16,
		Arrangement: Arrangement{
			core.InstrBass:  {Steps: Every(4), Volume: 0.3, Degree: -14},
			core.InstrHihat: {Steps: Every(2), Volume: 0.12},
			core.InstrSnare: {Steps: Steps(4, 12), Volume: 0.18},
			core.InstrArp:   {Steps: Every(4), Volume: 0.15, Degree: 7},
		},
	},
	core.TrackBillieJean: {
		Name:          "Billie Jean",
		BPM:           117,
		Scale:         ScaleMinor,
		BaseNote:      54,
		Chords:        [][]int{{0, 3, 7}, {2, 5, 9}, {3, 7, 10}, {2, 5, 9}},
		BeatsPerChord: 8,
		Arrangement: Arrangement{
			core.InstrBass:  {Steps: Steps(0, 1, 4, 6, 8, 9, 12, 14), Volume: 0.45, Degree: -14},
			core.InstrHihat: {Steps: Every(4), Volume: 0.10},
			core.InstrSnare: {Steps: Steps(4, 12), Volume: 0.20},
			core.InstrChord: {Steps: Steps(0, 8), Volume: 0.10},
		},
	},
}
