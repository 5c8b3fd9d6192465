package main

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/audio"
	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/engine"
	"github.com/lixenwraith/solar-winds/input"
	"github.com/lixenwraith/solar-winds/mission"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/render"
)

// app binds the terminal front end to one running game
type app struct {
	game     *engine.Game
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.Keyboard
	music    *audio.Scheduler
	sfx      *audio.SFX // nil without an audio device
	log      zerolog.Logger

	audioOK bool
	channel component.PowerChannel
	cursor  int
}

// handleEvent processes one terminal event; returns false when the player quits
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.dispatch(a.keys.HandleKey(ev, now))
	case *tcell.EventResize:
		a.screen.Sync()
		a.game.RunSafe(a.renderer.UpdateDimensions)
	}
	return true
}

// dispatch applies a decoded command
func (a *app) dispatch(cmd input.Command) bool {
	switch cmd.Kind {
	case input.CmdNone:
	case input.CmdQuit:
		return false
	case input.CmdNextTrack:
		if err := a.music.NextTrack(); err != nil {
			a.log.Warn().Err(err).Msg("Track switch failed")
		}
	case input.CmdToggleMusic:
		if a.music.Playing() {
			a.music.Stop()
		} else {
			a.music.Start()
		}
	default:
		a.game.RunSafe(func() { a.apply(cmd) })
	}
	return true
}

// apply runs a game command; the caller holds the game lock
func (a *app) apply(cmd input.Command) {
	g := a.game
	switch cmd.Kind {
	case input.CmdPause:
		g.TogglePause()
	case input.CmdRestart:
		a.keys.Release()
		a.cursor = 0
		g.Restart()
	case input.CmdDock:
		if err := g.ToggleDock(); err != nil {
			a.log.Debug().Err(err).Msg("Dock request rejected")
		}
	case input.CmdSelectPower:
		a.channel = cmd.Channel
	case input.CmdAdjustPower:
		g.AdjustPower(a.channel, int(cmd.Delta))
	case input.CmdTimeScale:
		g.SetTimeScale(g.TimeScale() + cmd.Delta)
	case input.CmdToggleHoming:
		if g.Settings().WeaponSeeking > 0 {
			g.SetWeaponSeeking(0)
			g.Notify("Homing disengaged")
		} else {
			g.SetWeaponSeeking(parameter.DefaultHomingStrength)
			g.Notify("Homing engaged")
		}
	case input.CmdNextMission:
		if n := len(g.Missions().Available); n > 0 {
			a.cursor = (a.cursor + 1) % n
		}
	case input.CmdAcceptMission:
		a.acceptSelected()
	case input.CmdAbandonMission:
		if err := g.AbandonMission(); err != nil {
			g.Notify("No active mission")
		}
	}
}

func (a *app) acceptSelected() {
	g := a.game
	if g.Docked() == nil {
		return
	}
	avail := g.Missions().Available
	if len(avail) == 0 {
		return
	}
	a.cursor = min(a.cursor, len(avail)-1)
	err := g.AcceptMission(avail[a.cursor].ID)
	switch {
	case errors.Is(err, mission.ErrMissionActive):
		g.Notify("Finish or abandon your current mission first")
	case err != nil:
		a.log.Warn().Err(err).Msg("Mission accept failed")
	default:
		a.cursor = 0
	}
}

// frame pushes held controls into the game and draws
func (a *app) frame(now time.Time) {
	in, fire := a.keys.Controls(now)
	var thrusting bool
	a.game.RunSafe(func() {
		a.game.SetInput(in)
		a.game.SetFiring(fire)
		thrusting = in.Thrust && !a.game.Paused() && !a.game.Over() && a.game.Docked() == nil
		a.cursor = min(a.cursor, max(0, len(a.game.Missions().Available)-1))
		a.renderer.RenderFrame(a.game, a.hud())
	})
	if a.sfx != nil {
		a.sfx.Thrust(thrusting)
	}
}

func (a *app) hud() render.HUD {
	st := a.music.State()
	return render.HUD{
		Track:         st.TrackName,
		MusicOn:       st.Playing,
		AudioOK:       a.audioOK,
		PowerChannel:  a.channel,
		MissionCursor: a.cursor,
	}
}
