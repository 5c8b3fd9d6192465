package vmath

import "math"

// Vec2 is a 2D world-space vector in float64 units
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }
func (a Vec2) LenSq() float64 { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Angle() float64 { return math.Atan2(a.Y, a.X) }
func (a Vec2) Dist(b Vec2) float64 { return b.Sub(a).Len() }
func (a Vec2) IsFinite() bool { return isFinite(a.X) && isFinite(a.Y) }

// Equal reports component-wise equality within eps
func (a Vec2) Equal(b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FromAngle returns the unit vector for heading angle (0 = +X)
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Polar returns a vector of given length along angle
func Polar(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := v.Len()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// RotateVector rotates vector by angle radians
func RotateVector(v Vec2, angle float64) Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// NormalizeAngle wraps angle into (-π, π]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// AngleDiff returns shortest signed rotation from 'from' to 'to' in (-π, π]
func AngleDiff(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
