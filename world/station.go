// Package world holds the static layout of the sector and the docking rules
package world

import (
	"errors"
	"math"

	"github.com/lixenwraith/solar-winds/component"
	"github.com/lixenwraith/solar-winds/event"
	"github.com/lixenwraith/solar-winds/parameter"
	"github.com/lixenwraith/solar-winds/vmath"
)

var (
	ErrNotInRange    = errors.New("world: no station in docking range")
	ErrNotDocked     = errors.New("world: ship is not docked")
	ErrAlreadyDocked = errors.New("world: ship is already docked")
)

// StationKind is the role of a station
type StationKind int

const (
	StationHome StationKind = iota
	StationTrading
	StationMilitary
	StationScience
)

func (k StationKind) String() string {
	names := [...]string{"home", "trading", "military", "science"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Station is a dockable structure
type Station struct {
	Name       string
	Kind       StationKind
	Pos        vmath.Vec2
	Size       float64
	DockRadius float64
}

// NewStation creates a station with standard size and dock radius
func NewStation(name string, kind StationKind, x, y float64) Station {
	return Station{
		Name:       name,
		Kind:       kind,
		Pos:        vmath.Vec2{X: x, Y: y},
		Size:       parameter.StationSize,
		DockRadius: parameter.StationDockRadius,
	}
}

// CanDock reports whether s is close and slow enough to dock
func (st *Station) CanDock(s *component.Ship) bool {
	if s.Docked || s.Destroyed {
		return false
	}
	return s.Pos.Dist(st.Pos) < st.DockRadius && s.Speed() < parameter.StationMaxDockSpeed
}

// InDockZone reports whether s is within the dock radius regardless of speed
func (st *Station) InDockZone(s *component.Ship) bool {
	return s.Pos.Dist(st.Pos) < st.DockRadius
}

// Dock snaps s onto the station, stops it and repairs it
func (st *Station) Dock(s *component.Ship, emit event.Emitter) error {
	if s.Docked {
		return ErrAlreadyDocked
	}
	if !st.CanDock(s) {
		return ErrNotInRange
	}
	s.Docked = true
	s.Pos = st.Pos
	s.Vel = vmath.Vec2{}
	s.Repair()

	if emit != nil {
		emit.Emit(event.EventShipDocked, &event.DockPayload{Ship: s.ID, Station: st.Name})
	}
	return nil
}

// Undock releases s east of the station, outside the dock radius
func (st *Station) Undock(s *component.Ship, emit event.Emitter) error {
	if !s.Docked {
		return ErrNotDocked
	}
	s.Docked = false
	s.Pos = vmath.Vec2{X: st.Pos.X + st.DockRadius + parameter.StationUndockClearance, Y: st.Pos.Y}

	if emit != nil {
		emit.Emit(event.EventShipUndocked, &event.DockPayload{Ship: s.ID, Station: st.Name})
	}
	return nil
}

// Sector is the set of stations
type Sector struct {
	Stations []Station
}

// DefaultSector returns the standard four-station layout
func DefaultSector() *Sector {
	return &Sector{Stations: []Station{
		NewStation("ALPHA STATION", StationHome, 0, 0),
		NewStation("TRADING POST", StationTrading, 2000, 500),
		NewStation("OUTPOST GAMMA", StationMilitary, -1500, 1200),
		NewStation("RESEARCH LAB", StationScience, 1000, -1800),
	}}
}

// Nearest returns the closest station to pos and its distance
// Returns nil for an empty sector
func (sec *Sector) Nearest(pos vmath.Vec2) (*Station, float64) {
	var best *Station
	bestDist := math.Inf(1)
	for i := range sec.Stations {
		if d := pos.Dist(sec.Stations[i].Pos); d < bestDist {
			best, bestDist = &sec.Stations[i], d
		}
	}
	return best, bestDist
}

// InDockRange returns the first station s can dock at, or nil
func (sec *Sector) InDockRange(s *component.Ship) *Station {
	for i := range sec.Stations {
		if sec.Stations[i].CanDock(s) {
			return &sec.Stations[i]
		}
	}
	return nil
}

// ByName finds a station by exact name
func (sec *Sector) ByName(name string) (*Station, bool) {
	for i := range sec.Stations {
		if sec.Stations[i].Name == name {
			return &sec.Stations[i], true
		}
	}
	return nil, false
}
