package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/parameter"
)

// SchedulerState is a snapshot for display and tests
type SchedulerState struct {
	Track        core.TrackID
	TrackName    string
	Beat         int
	Chord        int
	NextNoteTime float64
	Playing      bool
}

// Scheduler is the lookahead music sequencer
// A wall-clock timer wakes it every lookahead period; each wake fills the window
// [now, now+ahead) of the backend clock with notes, so timing accuracy depends on
// the audio clock only
type Scheduler struct {
	mu      sync.Mutex
	backend Backend
	rng     Rand
	log     zerolog.Logger
	notes   metric.Int64Counter

	lookahead time.Duration
	ahead     float64

	track        core.TrackID
	beat         int
	chord        int
	nextNoteTime float64

	playing  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// SchedulerOption adjusts scheduler timing
type SchedulerOption func(*Scheduler)

// WithLookahead sets the timer period
func WithLookahead(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.lookahead = d
		}
	}
}

// WithScheduleAhead sets the window size in seconds
func WithScheduleAhead(sec float64) SchedulerOption {
	return func(s *Scheduler) {
		if sec > 0 {
			s.ahead = sec
		}
	}
}

// NewScheduler creates a stopped scheduler on track 0
func NewScheduler(backend Backend, rng Rand, log zerolog.Logger, opts ...SchedulerOption) (*Scheduler, error) {
	s := &Scheduler{
		backend:   backend,
		rng:       rng,
		log:       log.With().Str("component", "music").Logger(),
		lookahead: parameter.SchedulerLookahead,
		ahead:     parameter.SchedulerAhead,
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	s.notes, err = meter().Int64Counter(
		"audio.notes.scheduled",
		metric.WithDescription("Total notes handed to the audio backend"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating notes counter: %w", err)
	}
	return s, nil
}

// Tick fills the lookahead window; one timer invocation
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

func (s *Scheduler) tickLocked() {
	t := &Tracks[s.track]
	horizon := s.backend.Now() + s.ahead

	for s.nextNoteTime < horizon {
		chord := t.Chords[s.chord]
		for _, ev := range t.BeatNotes(s.beat, chord, s.nextNoteTime, s.rng) {
			s.backend.Schedule(ev)
			s.notes.Add(context.Background(), 1,
				metric.WithAttributes(attribute.String("instrument", ev.Instrument.String())))
		}
		s.advance(t)
	}
}

// advance moves one 16th note forward; the chord changes on every beatsPerChord boundary
func (s *Scheduler) advance(t *Track) {
	s.nextNoteTime += t.StepSeconds()
	s.beat++
	if s.beat%t.BeatsPerChord == 0 {
		s.chord = (s.chord + 1) % len(t.Chords)
	}
}

// Start anchors the sequence at the backend's now and launches the timer
// No-op while playing
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing {
		return
	}

	s.playing = true
	s.nextNoteTime = s.backend.Now()
	s.beat = 0
	s.backend.StartAmbient()

	s.stopChan = make(chan struct{})
	s.wg.Add(1)
	go s.loop(s.stopChan)

	s.log.Info().Str("track", Tracks[s.track].Name).Float64("bpm", Tracks[s.track].BPM).Msg("Music started")
}

func (s *Scheduler) loop(stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.lookahead)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.playing {
				s.tickLocked()
			}
			s.mu.Unlock()
		}
	}
}

// Stop cancels the timer and the ambient layer; queued voices finish on their own
// Idempotent
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}
	s.playing = false
	close(s.stopChan)
	s.backend.StopAmbient()
	s.mu.Unlock()

	s.wg.Wait()
	s.log.Info().Msg("Music stopped")
}

// SwitchTrack changes the active track, resetting beat and chord
// Playback restarts if it was running
func (s *Scheduler) SwitchTrack(id core.TrackID) error {
	if id < 0 || id >= core.TrackCount {
		return fmt.Errorf("%w: %d", ErrTrackOutOfRange, id)
	}

	wasPlaying := s.Playing()
	if wasPlaying {
		s.Stop()
	}

	s.mu.Lock()
	s.track = id
	s.beat = 0
	s.chord = 0
	s.mu.Unlock()

	s.log.Info().Str("track", Tracks[id].Name).Msg("Track switched")

	if wasPlaying {
		s.Start()
	}
	return nil
}

// NextTrack cycles to the following track
func (s *Scheduler) NextTrack() error {
	s.mu.Lock()
	next := (s.track + 1) % core.TrackCount
	s.mu.Unlock()
	return s.SwitchTrack(next)
}

// Playing reports whether the timer is running
func (s *Scheduler) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// State returns a snapshot
func (s *Scheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SchedulerState{
		Track:        s.track,
		TrackName:    Tracks[s.track].Name,
		Beat:         s.beat,
		Chord:        s.chord,
		NextNoteTime: s.nextNoteTime,
		Playing:      s.playing,
	}
}
