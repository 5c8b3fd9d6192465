package audio

import (
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
)

// Rand is the random source for hit probability and volume jitter
// *rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NoteEvent is one voice to start at an absolute audio-clock time
type NoteEvent struct {
	// Time is seconds on the backend clock
	Time       float64
	Instrument core.InstrumentType

	// Pitches are MIDI notes; empty for drums, several for chords
	Pitches []int
	Volume  float64
}

// BeatNotes selects the notes of one beat for the given chord
// Returned events are in instrument order and share the same time
func (t *Track) BeatNotes(beat int, chord []int, at float64, rng Rand) []NoteEvent {
	step := beat % parameter.StepsPerBar
	var out []NoteEvent

	for instr := core.InstrumentType(0); instr < core.InstrumentCount; instr++ {
		part := t.Arrangement[instr]
		if !part.Steps.Has(step) {
			continue
		}
		if part.Chance > 0 && rng.Float64() >= part.Chance {
			continue
		}

		vol := part.Volume
		if part.Jitter > 0 {
			vol += rng.Float64() * part.Jitter
		}
		ev := NoteEvent{Time: at, Instrument: instr, Volume: vol}

		switch instr {
		case core.InstrBass:
			ev.Pitches = []int{t.ScaleNote(chord[0] + part.Degree)}
		case core.InstrChord:
			ev.Pitches = make([]int, len(chord))
			for i, deg := range chord {
				ev.Pitches[i] = t.ScaleNote(deg+part.Degree) + 12
			}
		case core.InstrLead:
			ev.Pitches = []int{t.ScaleNote(chord[rng.Intn(len(chord))] + part.Degree)}
		case core.InstrArp:
			idx := part.Steps.Index(step)
			ev.Pitches = []int{t.ScaleNote(chord[idx%len(chord)] + part.Degree)}
		}
		out = append(out, ev)
	}
	return out
}
