package audio

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Backend is the audio clock plus synthesis sink the scheduler drives
type Backend interface {
	// Now returns seconds on the audio clock
	Now() float64

	// Schedule queues a note to start at ev.Time
	Schedule(ev NoteEvent)

	// StartAmbient and StopAmbient control the looping background layer
	StartAmbient()
	StopAmbient()
}

type pendingVoice struct {
	start int64
	s     beep.Streamer
}

type activeVoice struct {
	s      beep.Streamer
	offset int
}

// BeepBackend renders scheduled voices as a beep.Streamer
// The count of rendered samples is the audio clock, so note placement is sample-accurate
// regardless of how often the scheduler runs
type BeepBackend struct {
	rate beep.SampleRate

	mu       sync.Mutex
	rendered int64
	pending  []pendingVoice
	active   []activeVoice
	scratch  [][2]float64

	ambient   beep.Streamer
	ambientOn bool
}

// NewBeepBackend creates a backend rendering at rate
// ambient may be nil
func NewBeepBackend(rate beep.SampleRate, ambient beep.Streamer) *BeepBackend {
	return &BeepBackend{rate: rate, ambient: ambient}
}

// Now returns rendered samples as seconds
func (b *BeepBackend) Now() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return float64(b.rendered) / float64(b.rate)
}

// Schedule converts the event time to a sample index and queues the voice
// Events in the past start on the next rendered buffer
func (b *BeepBackend) Schedule(ev NoteEvent) {
	s := NewVoice(ev, b.rate)
	start := int64(ev.Time * float64(b.rate))

	b.mu.Lock()
	defer b.mu.Unlock()
	i := sort.Search(len(b.pending), func(i int) bool { return b.pending[i].start > start })
	b.pending = slices.Insert(b.pending, i, pendingVoice{start: start, s: s})
}

func (b *BeepBackend) StartAmbient() {
	b.mu.Lock()
	b.ambientOn = true
	b.mu.Unlock()
}

func (b *BeepBackend) StopAmbient() {
	b.mu.Lock()
	b.ambientOn = false
	b.mu.Unlock()
}

// Pending returns the number of queued voices not yet started
func (b *BeepBackend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Stream mixes due and running voices; it never drains
func (b *BeepBackend) Stream(samples [][2]float64) (n int, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n = len(samples)
	clear(samples)
	end := b.rendered + int64(n)

	for len(b.pending) > 0 && b.pending[0].start < end {
		p := b.pending[0]
		b.pending = b.pending[1:]
		b.active = append(b.active, activeVoice{s: p.s, offset: int(max(0, p.start-b.rendered))})
	}

	if cap(b.scratch) < n {
		b.scratch = make([][2]float64, n)
	}

	kept := b.active[:0]
	for _, v := range b.active {
		buf := b.scratch[:n-v.offset]
		m, more := v.s.Stream(buf)
		for i := 0; i < m; i++ {
			samples[v.offset+i][0] += buf[i][0]
			samples[v.offset+i][1] += buf[i][1]
		}
		if more && m == len(buf) {
			kept = append(kept, activeVoice{s: v.s})
		}
	}
	clear(b.active[len(kept):])
	b.active = kept

	if b.ambientOn && b.ambient != nil {
		buf := b.scratch[:n]
		m, _ := b.ambient.Stream(buf)
		for i := 0; i < m; i++ {
			samples[i][0] += buf[i][0]
			samples[i][1] += buf[i][1]
		}
	}

	b.rendered = end
	return n, true
}

func (b *BeepBackend) Err() error { return nil }

// SilentBackend keeps a wall clock and drops every note
// Used when no audio device is available
type SilentBackend struct {
	start time.Time
}

// NewSilentBackend starts the clock at zero
func NewSilentBackend() *SilentBackend {
	return &SilentBackend{start: time.Now()}
}

func (s *SilentBackend) Now() float64 { return time.Since(s.start).Seconds() }
func (s *SilentBackend) Schedule(NoteEvent) {}
func (s *SilentBackend) StartAmbient() {}
func (s *SilentBackend) StopAmbient() {}
