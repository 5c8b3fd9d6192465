package audio

import "math"

type rampKind uint8

const (
	rampSet rampKind = iota
	rampLinear
	rampExp
)

type breakpoint struct {
	t    float64
	v    float64
	kind rampKind
}

// Envelope is a piecewise automation curve over voice-local seconds
// Segments end at a breakpoint and take its ramp kind; the value holds after the last point
type Envelope struct {
	points []breakpoint
}

// NewEnvelope starts a curve at v from t=0
func NewEnvelope(v float64) *Envelope {
	return &Envelope{points: []breakpoint{{t: 0, v: v, kind: rampSet}}}
}

// Set jumps to v at t
func (e *Envelope) Set(v, t float64) *Envelope {
	e.points = append(e.points, breakpoint{t: t, v: v, kind: rampSet})
	return e
}

// LinearTo ramps linearly from the previous point to v at t
func (e *Envelope) LinearTo(v, t float64) *Envelope {
	e.points = append(e.points, breakpoint{t: t, v: v, kind: rampLinear})
	return e
}

// ExpTo ramps exponentially from the previous point to v at t
// Both endpoints must be positive; otherwise the segment falls back to linear
func (e *Envelope) ExpTo(v, t float64) *Envelope {
	e.points = append(e.points, breakpoint{t: t, v: v, kind: rampExp})
	return e
}

// End returns the time of the last breakpoint
func (e *Envelope) End() float64 {
	return e.points[len(e.points)-1].t
}

// At evaluates the curve at t
func (e *Envelope) At(t float64) float64 {
	prev := e.points[0]
	if t <= prev.t {
		return prev.v
	}
	for _, p := range e.points[1:] {
		if t < p.t {
			frac := (t - prev.t) / (p.t - prev.t)
			switch p.kind {
			case rampLinear:
				return prev.v + (p.v-prev.v)*frac
			case rampExp:
				if prev.v > 0 && p.v > 0 {
					return prev.v * math.Pow(p.v/prev.v, frac)
				}
				return prev.v + (p.v-prev.v)*frac
			default:
				return prev.v
			}
		}
		prev = p
	}
	return prev.v
}
