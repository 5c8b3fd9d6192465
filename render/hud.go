package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/engine"
	"github.com/lixenwraith/solar-winds/parameter"
)

func (r *TerminalRenderer) drawMessages(g *engine.Game) {
	msgs := g.Messages()
	if len(msgs) == 0 {
		return
	}
	style := r.base.Foreground(RgbMessage)
	// Newest first
	for i := range msgs {
		m := msgs[len(msgs)-1-i]
		r.drawCentered(parameter.MessageRow+i, m.Text, style)
	}
}

// drawBar renders a labelled gauge and returns the next free column
func (r *TerminalRenderer) drawBar(x, y int, label string, pct float64, color tcell.Color) int {
	bg := r.base.Background(RgbHUDBg)
	x = r.drawText(x, y, label+" ", bg.Foreground(RgbHUDDim))

	filled := int(pct / 100 * parameter.HUDBarWidth)
	fill := bg.Foreground(gaugeColor(color, pct))
	empty := bg.Foreground(RgbBarEmpty)
	for i := range parameter.HUDBarWidth {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, fill)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
	x += parameter.HUDBarWidth
	return r.drawText(x, y, fmt.Sprintf(" %3.0f%%  ", pct), bg.Foreground(RgbHUDText))
}

func (r *TerminalRenderer) drawHUD(g *engine.Game, hud HUD) {
	top := r.height - parameter.HUDRows
	if top < 0 {
		return
	}
	bg := r.base.Background(RgbHUDBg)
	for y := top; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	p := g.Player()
	var d component.Damageable = p

	// Row 1: gauges, speed, credits
	x := r.drawBar(1, top, "HULL", d.HullPercent(), RgbHull)
	x = r.drawBar(x, top, "SHLD", d.ShieldPercent(), RgbShields)
	x = r.drawBar(x, top, "ENRG", d.EnergyPercent(), RgbEnergy)
	x = r.drawText(x, top, fmt.Sprintf("SPD %3.0f  ", p.Speed()), bg.Foreground(RgbHUDText))
	r.drawText(x, top, fmt.Sprintf("CR %d", g.Credits()), bg.Foreground(RgbCredits).Bold(true))

	// Row 2: power distribution and tuning
	x = r.drawText(1, top+1, "PWR ", bg.Foreground(RgbHUDDim))
	for c := range component.PowerChannelCount {
		style := bg.Foreground(RgbHUDText)
		if c == hud.PowerChannel {
			style = bg.Foreground(RgbSelected).Bold(true).Reverse(true)
		}
		x = r.drawText(x, top+1, fmt.Sprintf("%s:%3d", strings.ToUpper(c.String()[:3]), p.Power.Get(c)), style)
		x++
	}
	homing := "off"
	if p.Weapon.Seeking > 0 {
		homing = fmt.Sprintf("%.1f", p.Weapon.Seeking)
	}
	x = r.drawText(x+1, top+1, fmt.Sprintf("x%.2f  HOMING %s  ", g.TimeScale(), homing), bg.Foreground(RgbHUDText))
	if hud.AudioOK && hud.MusicOn {
		r.drawText(x, top+1, "♫ "+hud.Track, bg.Foreground(RgbSelected))
	} else if hud.AudioOK {
		r.drawText(x, top+1, "♫ off", bg.Foreground(RgbHUDDim))
	}

	// Row 3: mission or dock hint
	r.drawText(1, top+2, r.statusLine(g), bg.Foreground(RgbHUDText))
}

func (r *TerminalRenderer) statusLine(g *engine.Game) string {
	p := g.Player()
	if g.Docked() == nil && !p.Destroyed {
		if st := g.Sector().InDockRange(p); st != nil {
			return "Press E to dock at " + st.Name
		}
		if st, dist := g.Sector().Nearest(p.Pos); st != nil && st.InDockZone(p) {
			return "Slow down to dock"
		} else if st != nil && g.Missions().Active == nil {
			return fmt.Sprintf("Nearest: %s %.0fm", st.Name, dist)
		}
	}
	if m := g.Missions().Active; m != nil {
		line := fmt.Sprintf("MISSION %s  %s", m.Title, m.Progress())
		if t := m.TimeText(); t != "" {
			line += "  " + t
		}
		return line
	}
	return "No active mission"
}

func (r *TerminalRenderer) drawPanel(lines []string, selected int) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	x0 := (r.width - w) / 2
	y0 := max(0, (r.cam.Height-len(lines))/2)
	panel := r.base.Background(RgbPanelBg).Foreground(RgbHUDText)
	for i, l := range lines {
		style := panel
		if i == selected {
			style = panel.Foreground(RgbSelected).Reverse(true)
		}
		row := "  " + l + strings.Repeat(" ", w-2-len([]rune(l)))
		r.drawText(x0, y0+i, row, style)
	}
}

// missionLineOffset is the panel row of the first mission entry
const missionLineOffset = 3

func (r *TerminalRenderer) drawStationPanel(g *engine.Game, hud HUD) {
	st := g.Docked()
	lines := []string{
		"STATION DOCKED: " + st.Name,
		fmt.Sprintf("Ship repaired and refueled. Credits: %d", g.Credits()),
		"",
	}
	board := g.Missions()
	for _, m := range board.Available {
		lines = append(lines, fmt.Sprintf("%-18s %4d cr  %s", m.Title, m.Credits, m.Giver))
	}
	if len(board.Available) == 0 {
		lines = append(lines, "No missions available")
	}
	lines = append(lines, "", "Tab select  Enter accept  E undock")

	selected := -1
	if len(board.Available) > 0 && board.Active == nil {
		selected = missionLineOffset + hud.MissionCursor%len(board.Available)
	}
	r.drawPanel(lines, selected)
}

func (r *TerminalRenderer) drawGameOver(g *engine.Game) {
	r.drawPanel([]string{
		"GAME OVER",
		"",
		fmt.Sprintf("Credits: %d   Survived: %.0fs", g.Credits(), g.GameTime()),
		"",
		"R restart   Q quit",
	}, 0)
}
