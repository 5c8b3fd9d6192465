package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Loop drives Game.Tick on a fixed wall interval
// Frame time is measured against the TimeProvider, deadlines are drift corrected
type Loop struct {
	game  *Game
	clock TimeProvider
	log   zerolog.Logger

	tickInterval     time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time
	mu               sync.Mutex

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// frames is signalled after each tick for the renderer
	frames chan struct{}
}

// NewLoop creates a stopped loop
func NewLoop(game *Game, clock TimeProvider, tickInterval time.Duration, log zerolog.Logger) *Loop {
	return &Loop{
		game:         game,
		clock:        clock,
		log:          log,
		tickInterval: tickInterval,
		lastTickTime: clock.Now(),
		stopChan:     make(chan struct{}),
		frames:       make(chan struct{}, 1),
	}
}

// Frames delivers a coalesced signal after every completed tick
func (l *Loop) Frames() <-chan struct{} { return l.frames }

// Ticks returns the number of ticks run
func (l *Loop) Ticks() uint64 { return l.tickCount.Load() }

// Start begins ticking on a new goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.mu.Lock()
		l.lastTickTime = l.clock.Now()
		l.nextTickDeadline = time.Now().Add(l.tickInterval)
		l.mu.Unlock()

		l.wg.Add(1)
		go l.run()
		l.log.Info().Dur("interval", l.tickInterval).Msg("Game loop started")
	}
}

// Stop halts the loop and waits for the goroutine; safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
			l.log.Info().Uint64("ticks", l.tickCount.Load()).Msg("Game loop stopped")
		}
	})
}

func (l *Loop) run() {
	defer l.wg.Done()

	timer := time.NewTimer(l.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		l.Step()

		l.mu.Lock()
		now := time.Now()
		l.nextTickDeadline = l.nextTickDeadline.Add(l.tickInterval)
		if now.Sub(l.nextTickDeadline) > 2*l.tickInterval {
			l.nextTickDeadline = now.Add(l.tickInterval)
		}
		sleep := max(0, l.nextTickDeadline.Sub(now))
		l.mu.Unlock()

		timer.Reset(sleep)
	}
}

// Step runs one tick with dt measured since the previous step
func (l *Loop) Step() {
	now := l.clock.Now()

	l.mu.Lock()
	dt := now.Sub(l.lastTickTime).Seconds()
	l.lastTickTime = now
	l.mu.Unlock()

	l.game.RunSafe(func() {
		l.game.Tick(dt)
	})
	l.tickCount.Add(1)

	select {
	case l.frames <- struct{}{}:
	default:
	}
}
