// Package render draws the game onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/core"
	"github.com/lixenwraith/solar-winds/engine"
	"github.com/lixenwraith/solar-winds/parameter"
)

// HUD carries presentation state that lives outside the simulation
type HUD struct {
	Track         string
	MusicOn       bool
	AudioOK       bool
	PowerChannel  component.PowerChannel
	MissionCursor int
}

// TerminalRenderer draws frames from game state
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	cam    Camera
	stars  starfield
	base   tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, rng Rand) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		cam:    NewCamera(0, 0),
		stars:  newStarfield(rng),
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the screen size after a resize
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
	r.cam.Width = r.width
	r.cam.Height = max(1, r.height-parameter.HUDRows)
}

// Camera exposes the view transform
func (r *TerminalRenderer) Camera() *Camera { return &r.cam }

// RenderFrame draws a full frame; the caller holds the game lock
func (r *TerminalRenderer) RenderFrame(g *engine.Game, hud HUD) {
	r.screen.Fill(' ', r.base)

	p := g.Player()
	r.cam.Follow(p.Pos, parameter.CameraFollow)

	r.stars.draw(r.screen, &r.cam, r.base)
	r.drawStations(g)
	r.drawWaypoint(g)

	for _, e := range g.Enemies() {
		r.drawShots(e, RgbEnemyProjectile)
	}
	r.drawShots(p, RgbPlayerProjectile)

	for _, e := range g.Enemies() {
		locked := p.Weapon.Target == e.ID
		r.drawEnemy(e, locked)
	}
	r.drawShip(p, r.base.Foreground(RgbPlayer).Bold(true))

	r.drawMessages(g)
	r.drawHUD(g, hud)

	switch {
	case g.Over():
		r.drawGameOver(g)
	case g.Docked() != nil:
		r.drawStationPanel(g, hud)
	case g.Paused():
		r.drawCentered(r.cam.Height/2, " PAUSED - Esc to resume ", r.base.Foreground(RgbMessage).Background(RgbPanelBg))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if r.cam.InView(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawShip(s component.Movable, style tcell.Style) {
	x, y := r.cam.ToScreen(s.Position())
	r.set(x, y, HeadingGlyph(s.Heading()), style)
}

func (r *TerminalRenderer) drawEnemy(e *component.Enemy, locked bool) {
	x, y := r.cam.ToScreen(e.Pos)
	if e.Destroyed {
		r.set(x, y, '*', r.base.Foreground(RgbExplosion))
		return
	}
	style := r.base.Foreground(EnemyColor(e.Type))
	if e.Type == core.EnemyHeavy {
		style = style.Bold(true)
	}
	r.set(x, y, HeadingGlyph(e.Rotation), style)
	if locked {
		lock := r.base.Foreground(RgbTargetLock)
		r.set(x-1, y, '[', lock)
		r.set(x+1, y, ']', lock)
	}
}

func (r *TerminalRenderer) drawShots(s component.Armable, color tcell.Color) {
	style := r.base.Foreground(color)
	for _, p := range s.Shots() {
		if p.Hit {
			continue
		}
		glyph := '·'
		if p.Homing() {
			glyph = '•'
		}
		x, y := r.cam.ToScreen(p.Pos)
		r.set(x, y, glyph, style)
	}
}

func (r *TerminalRenderer) drawStations(g *engine.Game) {
	frame := r.base.Foreground(RgbStation)
	label := r.base.Foreground(RgbStationName)
	for _, st := range g.Sector().Stations {
		x, y := r.cam.ToScreen(st.Pos)
		half := max(1, int(st.Size/2/r.cam.Scale))
		vhalf := max(1, int(st.Size/2/(r.cam.Scale*r.cam.Aspect)))

		for dx := -half; dx <= half; dx++ {
			r.set(x+dx, y-vhalf, '─', frame)
			r.set(x+dx, y+vhalf, '─', frame)
		}
		for dy := -vhalf; dy <= vhalf; dy++ {
			r.set(x-half, y+dy, '│', frame)
			r.set(x+half, y+dy, '│', frame)
		}
		r.set(x-half, y-vhalf, '┌', frame)
		r.set(x+half, y-vhalf, '┐', frame)
		r.set(x-half, y+vhalf, '└', frame)
		r.set(x+half, y+vhalf, '┘', frame)
		r.set(x, y, '◊', frame.Bold(true))

		r.drawText(x-len(st.Name)/2, y+vhalf+1, st.Name, label)
	}
}

func (r *TerminalRenderer) drawWaypoint(g *engine.Game) {
	wp := g.Waypoint()
	if wp == nil {
		return
	}
	x, y := r.cam.EdgePoint(*wp)
	r.set(x, y, '◎', r.base.Foreground(RgbWaypoint).Bold(true))
}

// drawText writes s clipped to the screen, returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= 0 && x < r.width && y >= 0 && y < r.height {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText((r.width-len([]rune(s)))/2, y, s, style)
}
