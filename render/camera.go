package render

import (
	"math"

	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

// Camera maps world space onto the terminal grid
type Camera struct {
	Center vmath.Vec2
	// Scale is world units per column; rows cover Scale*Aspect units
	Scale  float64
	Aspect float64
	Width  int
	Height int

	placed bool
}

// NewCamera creates a camera for a viewport of w by h cells
func NewCamera(w, h int) Camera {
	return Camera{Scale: parameter.CameraScale, Aspect: parameter.CellAspect, Width: w, Height: h}
}

// Follow eases the camera toward target, snapping on first use
func (c *Camera) Follow(target vmath.Vec2, factor float64) {
	if !c.placed {
		c.Center = target
		c.placed = true
		return
	}
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(factor))
}

// ToScreen converts a world position to a cell
func (c *Camera) ToScreen(p vmath.Vec2) (int, int) {
	d := p.Sub(c.Center)
	x := float64(c.Width)/2 + d.X/c.Scale
	y := float64(c.Height)/2 + d.Y/(c.Scale*c.Aspect)
	return int(math.Floor(x)), int(math.Floor(y))
}

// InView reports whether a cell lies inside the viewport
func (c *Camera) InView(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// EdgePoint clamps the direction toward an off-screen point onto the viewport border
func (c *Camera) EdgePoint(p vmath.Vec2) (int, int) {
	x, y := c.ToScreen(p)
	if c.InView(x, y) {
		return x, y
	}
	cx, cy := float64(c.Width)/2, float64(c.Height)/2
	dx, dy := float64(x)-cx, float64(y)-cy
	t := math.Min(
		math.Abs((cx-1)/nonZero(dx)),
		math.Abs((cy-1)/nonZero(dy)),
	)
	return int(cx + dx*t), int(cy + dy*t)
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1e-9
	}
	return v
}

// headingGlyphs are clockwise from east; screen y grows downward like world y
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to angle
func HeadingGlyph(angle float64) rune {
	i := int(math.Round(angle/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headingGlyphs[i]
}
