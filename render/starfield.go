package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

type star struct {
	pos      vmath.Vec2
	parallax float64
	glyph    rune
	bright   bool
}

// Rand is the random source for decorative layout
type Rand interface {
	Float64() float64
}

// starfield is a repeating tile of background stars scrolling with parallax
type starfield struct {
	stars []star
}

func newStarfield(rng Rand) starfield {
	sf := starfield{stars: make([]star, parameter.StarCount)}
	for i := range sf.stars {
		p := parameter.StarParallaxMin + rng.Float64()*(parameter.StarParallaxMax-parameter.StarParallaxMin)
		s := star{
			pos:      vmath.Vec2{X: rng.Float64() * parameter.StarFieldSpan, Y: rng.Float64() * parameter.StarFieldSpan},
			parallax: p,
			glyph:    '.',
		}
		if p > 0.6 {
			s.glyph, s.bright = '·', true
		}
		if rng.Float64() < 0.03 {
			s.glyph = '+'
		}
		sf.stars[i] = s
	}
	return sf
}

func (sf *starfield) draw(screen tcell.Screen, cam *Camera, base tcell.Style) {
	span := parameter.StarFieldSpan
	for _, s := range sf.stars {
		// Offset by camera scaled to parallax, wrapped into a tile centered on the camera
		off := cam.Center.Scale(s.parallax)
		wx := wrap(s.pos.X-off.X, span)
		wy := wrap(s.pos.Y-off.Y, span)
		p := vmath.Vec2{X: cam.Center.X + wx - span/2, Y: cam.Center.Y + wy - span/2}

		x, y := cam.ToScreen(p)
		if !cam.InView(x, y) {
			continue
		}
		color := RgbStarDim
		if s.bright {
			color = RgbStarBright
		}
		screen.SetContent(x, y, s.glyph, nil, base.Foreground(color))
	}
}

func wrap(v, span float64) float64 {
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}
