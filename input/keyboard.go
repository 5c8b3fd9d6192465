// Package input maps terminal key events to flight controls and game commands
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/parameter"
)

// Control is a held flight input
type Control int

const (
	ControlThrust Control = iota
	ControlBrake
	ControlRotateLeft
	ControlRotateRight
	ControlFire
	ControlCount
)

// CommandKind is a discrete one-shot action
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdPause
	CmdRestart
	CmdDock
	CmdSelectPower
	CmdAdjustPower
	CmdTimeScale
	CmdToggleHoming
	CmdNextMission
	CmdAcceptMission
	CmdAbandonMission
	CmdNextTrack
	CmdToggleMusic
)

// Command is a decoded key press
type Command struct {
	Kind    CommandKind
	Channel component.PowerChannel
	Delta   float64
}

// Keyboard tracks held controls from press and repeat events
// Terminals never report key release, so each control stays engaged for a hold window
type Keyboard struct {
	hold     time.Duration
	deadline [ControlCount]time.Time
}

// NewKeyboard creates a keyboard with the standard hold window
func NewKeyboard() *Keyboard {
	return &Keyboard{hold: parameter.KeyHoldDuration}
}

// SetHold changes the hold window
func (k *Keyboard) SetHold(d time.Duration) { k.hold = d }

// press refreshes a control, cancelling its opposite
func (k *Keyboard) press(c Control, now time.Time) {
	k.deadline[c] = now.Add(k.hold)
	switch c {
	case ControlThrust:
		k.deadline[ControlBrake] = time.Time{}
	case ControlBrake:
		k.deadline[ControlThrust] = time.Time{}
	case ControlRotateLeft:
		k.deadline[ControlRotateRight] = time.Time{}
	case ControlRotateRight:
		k.deadline[ControlRotateLeft] = time.Time{}
	}
}

// Held reports whether c is engaged at now
func (k *Keyboard) Held(c Control, now time.Time) bool {
	return now.Before(k.deadline[c])
}

// Controls returns the flight input and trigger state at now
func (k *Keyboard) Controls(now time.Time) (component.ControlInput, bool) {
	return component.ControlInput{
		Thrust:      k.Held(ControlThrust, now),
		Brake:       k.Held(ControlBrake, now),
		RotateLeft:  k.Held(ControlRotateLeft, now),
		RotateRight: k.Held(ControlRotateRight, now),
	}, k.Held(ControlFire, now)
}

// Release drops every held control
func (k *Keyboard) Release() {
	clear(k.deadline[:])
}

// HandleKey records a key event and returns the command it maps to, if any
func (k *Keyboard) HandleKey(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		k.press(ControlThrust, now)
		return Command{}
	case tcell.KeyDown:
		k.press(ControlBrake, now)
		return Command{}
	case tcell.KeyLeft:
		k.press(ControlRotateLeft, now)
		return Command{}
	case tcell.KeyRight:
		k.press(ControlRotateRight, now)
		return Command{}
	case tcell.KeyCtrlC:
		return Command{Kind: CmdQuit}
	case tcell.KeyEscape:
		return Command{Kind: CmdPause}
	case tcell.KeyTab:
		return Command{Kind: CmdNextMission}
	case tcell.KeyEnter:
		return Command{Kind: CmdAcceptMission}
	case tcell.KeyRune:
		return k.handleRune(ev.Rune(), now)
	}
	return Command{}
}

func (k *Keyboard) handleRune(r rune, now time.Time) Command {
	switch r {
	case 'w', 'W':
		k.press(ControlThrust, now)
	case 's', 'S':
		k.press(ControlBrake, now)
	case 'a', 'A':
		k.press(ControlRotateLeft, now)
	case 'd', 'D':
		k.press(ControlRotateRight, now)
	case ' ':
		k.press(ControlFire, now)

	case 'q', 'Q':
		return Command{Kind: CmdQuit}
	case 'p', 'P':
		return Command{Kind: CmdPause}
	case 'r', 'R':
		return Command{Kind: CmdRestart}
	case 'e', 'E':
		return Command{Kind: CmdDock}
	case '1', '2', '3', '4':
		return Command{Kind: CmdSelectPower, Channel: component.PowerChannel(r - '1')}
	case '+', '=':
		return Command{Kind: CmdAdjustPower, Delta: parameter.PowerStep}
	case '-', '_':
		return Command{Kind: CmdAdjustPower, Delta: -parameter.PowerStep}
	case ']':
		return Command{Kind: CmdTimeScale, Delta: parameter.TimeScaleStep}
	case '[':
		return Command{Kind: CmdTimeScale, Delta: -parameter.TimeScaleStep}
	case 'h', 'H':
		return Command{Kind: CmdToggleHoming}
	case 'x', 'X':
		return Command{Kind: CmdAbandonMission}
	case 'm', 'M':
		return Command{Kind: CmdNextTrack}
	case 'n', 'N':
		return Command{Kind: CmdToggleMusic}
	}
	return Command{}
}
