package audio

import (
	"errors"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/solar-winds/parameter"
)

var (
	ErrNoAudioDevice   = errors.New("audio: no output device")
	ErrTrackOutOfRange = errors.New("audio: track index out of range")
)

// Player accepts one-shot and looping streamers for the effects bus
type Player interface {
	Play(s beep.Streamer)
}

// Device owns the speaker and the music and effects buses
type Device struct {
	rate  beep.SampleRate
	music *BeepBackend
	sfx   *beep.Mixer

	musicVol *effects.Volume
	sfxVol   *effects.Volume
}

// OpenDevice initializes the speaker and starts the top-level mix
func OpenDevice(sampleRate int, musicVolume, sfxVolume float64) (*Device, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAudioDevice, err)
	}

	d := &Device{
		rate:  rate,
		music: NewBeepBackend(rate, generateCrackle(float64(rate)).streamer(true)),
		sfx:   &beep.Mixer{},
	}
	d.musicVol = newVolume(d.music, musicVolume)
	d.sfxVol = newVolume(d.sfx, sfxVolume)

	mix := &beep.Mixer{}
	mix.Add(d.musicVol, d.sfxVol)
	speaker.Play(mix)
	return d, nil
}

// Rate returns the output sample rate
func (d *Device) Rate() beep.SampleRate { return d.rate }

// Music returns the scheduler backend rendering into the music bus
func (d *Device) Music() *BeepBackend { return d.music }

// Play adds s to the effects bus
func (d *Device) Play(s beep.Streamer) {
	speaker.Lock()
	d.sfx.Add(s)
	speaker.Unlock()
}

// SetMusicVolume sets the music bus gain, 0..1
func (d *Device) SetMusicVolume(v float64) {
	speaker.Lock()
	setVolume(d.musicVol, v)
	speaker.Unlock()
}

// SetSFXVolume sets the effects bus gain, 0..1
func (d *Device) SetSFXVolume(v float64) {
	speaker.Lock()
	setVolume(d.sfxVol, v)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (d *Device) Close() {
	speaker.Clear()
	speaker.Close()
}

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setVolume(v, vol)
	return v
}

func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(vol)
	v.Silent = false
}
