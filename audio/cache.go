package audio

import (
	"sync"

	"github.com/lixenwraith/solar-winds/core"
)

// soundCache stores pre-generated effect buffers
type soundCache struct {
	rate  float64
	mu    sync.RWMutex
	store [core.SoundTypeCount]floatBuffer
	ready [core.SoundTypeCount]bool
}

func newSoundCache(rate float64) *soundCache {
	return &soundCache{rate: rate}
}

// get returns cached buffer or generates on demand
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := generateSound(st, c.rate)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload generates the whole bank
func (c *soundCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
