package audio

import "math"

// FilterKind selects a biquad response
type FilterKind uint8

const (
	FilterLowpass FilterKind = iota
	FilterHighpass
	FilterBandpass
)

// DefaultQ is the Butterworth quality factor
const DefaultQ = 0.7071067811865476

// biquad is a direct-form-I second-order section with RBJ cookbook coefficients
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func newBiquad(kind FilterKind, freq, q, rate float64) *biquad {
	freq = min(freq, rate*0.49)
	if q <= 0 {
		q = DefaultQ
	}
	w0 := 2 * math.Pi * freq / rate
	cosw, sinw := math.Cos(w0), math.Sin(w0)
	alpha := sinw / (2 * q)

	var b0, b1, b2 float64
	switch kind {
	case FilterHighpass:
		b0 = (1 + cosw) / 2
		b1 = -(1 + cosw)
		b2 = (1 + cosw) / 2
	case FilterBandpass:
		b0 = alpha
		b1 = 0
		b2 = -alpha
	default:
		b0 = (1 - cosw) / 2
		b1 = 1 - cosw
		b2 = (1 - cosw) / 2
	}
	a0 := 1 + alpha
	return &biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
