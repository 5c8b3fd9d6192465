package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/parameter"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestEnvelope(t *testing.T) {
	e := NewEnvelope(0).LinearTo(1, 0.1).ExpTo(0.001, 0.5)

	tests := []struct {
		at   float64
		want float64
	}{
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.3, math.Pow(0.001, 0.5)},
		{0.5, 0.001},
		{2, 0.001},
	}
	for _, tt := range tests {
		if got := e.At(tt.at); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("At(%.2f) = %.6f, want %.6f", tt.at, got, tt.want)
		}
	}
	if e.End() != 0.5 {
		t.Errorf("Expected end 0.5, got %.2f", e.End())
	}
}

func TestEnvelopeSetHolds(t *testing.T) {
	e := NewEnvelope(0.2).Set(0.8, 0.1)
	if e.At(0.05) != 0.2 || e.At(0.1) != 0.8 {
		t.Errorf("Unexpected step values %.2f/%.2f", e.At(0.05), e.At(0.1))
	}
}

func TestVoicesSelfTerminate(t *testing.T) {
	tests := []struct {
		instr   core.InstrumentType
		pitches []int
		seconds float64
	}{
		{core.InstrBass, []int{36}, bassLength},
		{core.InstrHihat, nil, hihatLength},
		{core.InstrSnare, nil, snareLength},
		{core.InstrChord, []int{60, 63, 67}, chordLength},
		{core.InstrLead, []int{72}, leadLength},
		{core.InstrArp, []int{64}, arpLength},
	}
	for _, tt := range tests {
		t.Run(tt.instr.String(), func(t *testing.T) {
			v := NewVoice(NoteEvent{Instrument: tt.instr, Pitches: tt.pitches, Volume: 0.3}, testRate)
			total, peak := drain(v)
			if want := int(tt.seconds * float64(testRate)); total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
			if peak == 0 || peak > 2 {
				t.Errorf("Unexpected peak %.4f", peak)
			}
		})
	}
}

func TestBiquadLowpassAttenuates(t *testing.T) {
	rate := float64(testRate)
	measure := func(freq float64) float64 {
		f := newBiquad(FilterLowpass, 200, DefaultQ, rate)
		peak := 0.0
		for i := 0; i < int(rate/2); i++ {
			y := f.process(math.Sin(2 * math.Pi * freq * float64(i) / rate))
			if i > int(rate/4) {
				peak = math.Max(peak, math.Abs(y))
			}
		}
		return peak
	}
	low, high := measure(50), measure(5000)
	if low < 0.9 || high > 0.01 {
		t.Errorf("Expected passband ~1 and stopband ~0, got %.4f / %.4f", low, high)
	}
}

func TestBeepBackendClockAndPlacement(t *testing.T) {
	b := NewBeepBackend(testRate, nil)
	b.Schedule(NoteEvent{Time: 0.05, Instrument: core.InstrHihat, Volume: 0.5})
	b.Schedule(NoteEvent{Time: 0.01, Instrument: core.InstrBass, Pitches: []int{36}, Volume: 0.5})

	buf := make([][2]float64, 441) // 10ms
	n, ok := b.Stream(buf)
	if n != 441 || !ok {
		t.Fatalf("Expected full buffer, got %d/%v", n, ok)
	}
	if math.Abs(b.Now()-0.01) > 1e-9 {
		t.Errorf("Expected clock 0.01, got %.6f", b.Now())
	}
	for i := range buf {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence before first note, sample %d = %.6f", i, buf[i][0])
		}
	}
	if b.Pending() != 2 {
		t.Errorf("Expected 2 pending, got %d", b.Pending())
	}

	b.Stream(buf)
	if b.Pending() != 1 {
		t.Errorf("Expected bass started, %d pending", b.Pending())
	}
}

func TestBeepBackendAmbient(t *testing.T) {
	amb := floatBuffer{0.5, 0.5}.streamer(true)
	b := NewBeepBackend(testRate, amb)
	buf := make([][2]float64, 8)

	b.Stream(buf)
	if buf[0][0] != 0 {
		t.Error("Ambient should be silent until started")
	}
	b.StartAmbient()
	b.Stream(buf)
	if buf[7][0] != 0.5 {
		t.Errorf("Expected looping ambient, got %.2f", buf[7][0])
	}
}

type recordingPlayer struct {
	played []beep.Streamer
}

func (p *recordingPlayer) Play(s beep.Streamer) { p.played = append(p.played, s) }

func TestSFXEvents(t *testing.T) {
	out := &recordingPlayer{}
	sfx := NewSFX(out, testRate)
	bus := event.NewBus()
	bus.Register(sfx)

	bus.Emit(event.EventShipFired, &event.ShipFiredPayload{Ship: 1})
	bus.Emit(event.EventShipDamaged, &event.ShipDamagedPayload{Ship: 1, ShieldDamage: 5})
	bus.Emit(event.EventShipDestroyed, &event.ShipDestroyedPayload{Ship: 1})
	bus.Emit(event.EventEnemySpawned, nil)

	if len(out.played) != 3 {
		t.Fatalf("Expected 3 effects, got %d", len(out.played))
	}
	total, _ := drain(out.played[0])
	if want := int(parameter.LaserDuration.Seconds() * float64(testRate)); total != want {
		t.Errorf("Expected laser of %d samples, got %d", want, total)
	}
}

func TestSFXSplitHitPlaysBothCues(t *testing.T) {
	out := &recordingPlayer{}
	sfx := NewSFX(out, testRate)

	sfx.HandleEvent(event.GameEvent{
		Type:    event.EventShipDamaged,
		Payload: &event.ShipDamagedPayload{Ship: 1, ShieldDamage: 10, HullDamage: 15},
	})
	if len(out.played) != 2 {
		t.Fatalf("Expected shield and hull cues, got %d", len(out.played))
	}

	shield, _ := drain(out.played[0])
	if want := int(parameter.ShieldHitDuration.Seconds() * float64(testRate)); shield != want {
		t.Errorf("Expected shield hit of %d samples first, got %d", want, shield)
	}
	hull, _ := drain(out.played[1])
	if want := int(parameter.HullHitDuration.Seconds() * float64(testRate)); hull != want {
		t.Errorf("Expected hull hit of %d samples second, got %d", want, hull)
	}

	sfx.HandleEvent(event.GameEvent{
		Type:    event.EventShipDamaged,
		Payload: &event.ShipDamagedPayload{Ship: 1, HullDamage: 5},
	})
	if len(out.played) != 3 {
		t.Errorf("Expected hull-only hit to play one cue, got %d total", len(out.played))
	}
}

func TestSFXThrustGate(t *testing.T) {
	out := &recordingPlayer{}
	sfx := NewSFX(out, testRate)

	sfx.Thrust(true)
	sfx.Thrust(false)
	sfx.Thrust(true)
	if len(out.played) != 1 {
		t.Fatalf("Expected single engine loop, got %d", len(out.played))
	}

	sfx.Thrust(false)
	buf := make([][2]float64, 64)
	n, ok := out.played[0].Stream(buf)
	if n != 64 || !ok || buf[10][0] != 0 {
		t.Errorf("Expected silent pass-through while off")
	}
}
