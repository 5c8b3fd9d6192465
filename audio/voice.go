package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar-winds/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
	WaveSquare
)

// Voice shaping, seconds unless noted
const (
	bassAttack  = 0.01
	bassDecay   = 0.4
	bassLength  = 0.5
	bassCutoff  = 200.0
	hihatLength = 0.05
	hihatDecay  = 0.1 // fraction of length
	hihatCutoff = 7000.0
	hihatSpread = 2000.0
	snareLength = 0.15
	snareDecay  = 0.15 // fraction of length
	snareCenter = 3000.0
	snareToneHi = 180.0
	snareToneLo = 80.0
	snareSweep  = 0.05
	snareRing   = 0.1
	chordAttack = 0.02
	chordDecay  = 0.8
	chordLength = 1.0
	chordCutoff = 2000.0
	chordDetune = 0.003
	leadAttack  = 0.01
	leadDecay   = 0.5
	leadLength  = 0.6
	leadCutoff  = 3000.0
	arpAttack   = 0.005
	arpHold     = 0.08
	arpDecay    = 0.15
	arpLength   = 0.2
	arpCutoff   = 2500.0
	arpQ        = 2.0

	// silenceFloor is the exponential ramp target standing in for zero
	silenceFloor = 0.001
)

// partial is one source → filter → gain chain inside a voice
type partial struct {
	src    func(i int, t float64) float64
	filter *biquad
	gain   *Envelope
	length int
}

// voice is a self-terminating streamer summing its partials
type voice struct {
	partials []partial
	rate     float64
	pos      int
	length   int
}

func newVoiceStreamer(rate float64, parts ...partial) *voice {
	v := &voice{partials: parts, rate: rate}
	for _, p := range parts {
		v.length = max(v.length, p.length)
	}
	return v
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.length {
			return i, i > 0
		}
		t := float64(v.pos) / v.rate
		var sum float64
		for j := range v.partials {
			p := &v.partials[j]
			if v.pos >= p.length {
				continue
			}
			x := p.src(v.pos, t)
			if p.filter != nil {
				x = p.filter.process(x)
			}
			sum += x * p.gain.At(t)
		}
		samples[i][0] = sum
		samples[i][1] = sum
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// NewVoice builds the synthesizer voice for one note event
// The voice starts at its own t=0; placement on the clock is the backend's job
func NewVoice(ev NoteEvent, rate beep.SampleRate) beep.Streamer {
	r := float64(rate)
	n := func(sec float64) int { return int(sec * r) }
	vol := ev.Volume

	switch ev.Instrument {
	case core.InstrBass:
		return newVoiceStreamer(r, partial{
			src:    tone(WaveSine, NewEnvelope(pitchFreq(ev, 0)), r),
			filter: newBiquad(FilterLowpass, bassCutoff, DefaultQ, r),
			gain:   NewEnvelope(0).LinearTo(vol, bassAttack).ExpTo(silenceFloor, bassDecay),
			length: n(bassLength),
		})

	case core.InstrHihat:
		length := n(hihatLength)
		return newVoiceStreamer(r, partial{
			src:    decayingNoise(length, hihatDecay),
			filter: newBiquad(FilterHighpass, hihatCutoff+rand.Float64()*hihatSpread, DefaultQ, r),
			gain:   NewEnvelope(vol),
			length: length,
		})

	case core.InstrSnare:
		length := n(snareLength)
		return newVoiceStreamer(r,
			partial{
				src:    decayingNoise(length, snareDecay),
				filter: newBiquad(FilterBandpass, snareCenter, 1, r),
				gain:   NewEnvelope(vol),
				length: length,
			},
			partial{
				src:    tone(WaveTriangle, NewEnvelope(snareToneHi).ExpTo(snareToneLo, snareSweep), r),
				gain:   NewEnvelope(vol*0.5).ExpTo(silenceFloor, snareRing),
				length: length,
			},
		)

	case core.InstrChord:
		parts := make([]partial, 0, 2*len(ev.Pitches))
		for i := range ev.Pitches {
			f := pitchFreq(ev, i)
			for _, d := range [...]float64{-1, 1} {
				parts = append(parts, partial{
					src:    tone(WaveTriangle, NewEnvelope(f*(1+d*chordDetune)), r),
					filter: newBiquad(FilterLowpass, chordCutoff, 1, r),
					gain:   NewEnvelope(0).LinearTo(vol*0.5, chordAttack).ExpTo(silenceFloor, chordDecay),
					length: n(chordLength),
				})
			}
		}
		return newVoiceStreamer(r, parts...)

	case core.InstrLead:
		return newVoiceStreamer(r, partial{
			src:    tone(WaveSine, NewEnvelope(pitchFreq(ev, 0)), r),
			filter: newBiquad(FilterLowpass, leadCutoff, DefaultQ, r),
			gain:   NewEnvelope(0).LinearTo(vol, leadAttack).ExpTo(silenceFloor, leadDecay),
			length: n(leadLength),
		})

	case core.InstrArp:
		return newVoiceStreamer(r, partial{
			src:    tone(WaveSaw, NewEnvelope(pitchFreq(ev, 0)), r),
			filter: newBiquad(FilterLowpass, arpCutoff, arpQ, r),
			gain:   NewEnvelope(0).LinearTo(vol, arpAttack).LinearTo(vol, arpHold).ExpTo(silenceFloor, arpDecay),
			length: n(arpLength),
		})
	}
	return newVoiceStreamer(r)
}

func pitchFreq(ev NoteEvent, i int) float64 {
	if i >= len(ev.Pitches) {
		return 0
	}
	return MidiToFreq(ev.Pitches[i])
}

// tone returns a phase-accumulating oscillator following a frequency curve
func tone(wave WaveType, freq *Envelope, rate float64) func(int, float64) float64 {
	phase := 0.0
	return func(_ int, t float64) float64 {
		v := waveAt(wave, phase)
		phase += freq.At(t) / rate
		phase -= math.Floor(phase)
		return v
	}
}

// decayingNoise returns white noise under exp(-i/(length*k))
func decayingNoise(length int, k float64) func(int, float64) float64 {
	tau := float64(length) * k
	return func(i int, _ float64) float64 {
		return (rand.Float64()*2 - 1) * math.Exp(-float64(i)/tau)
	}
}

func waveAt(w WaveType, phase float64) float64 {
	switch w {
	case WaveTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	case WaveSaw:
		p := phase + 0.5
		return 2*(p-math.Floor(p)) - 1
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
