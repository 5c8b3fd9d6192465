// Package mission tracks contracts offered by stations and their progress
package mission

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/solar-winds/core"
)

// Type is the objective kind of a mission
type Type int

const (
	TypeBounty Type = iota
	TypeDelivery
	TypeExploration
)

func (t Type) String() string {
	switch t {
	case TypeBounty:
		return "bounty"
	case TypeDelivery:
		return "delivery"
	case TypeExploration:
		return "exploration"
	}
	return "unknown"
}

// Status is the lifecycle state of a mission
type Status int

const (
	StatusAvailable Status = iota
	StatusActive
	StatusCompleted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// AnyEnemy matches every enemy type in a bounty
const AnyEnemy core.EnemyType = -1

// Mission is a single contract
type Mission struct {
	ID          uuid.UUID
	Title       string
	Description string
	Type        Type
	Status      Status
	Giver       string
	Credits     int

	// Bounty
	TargetType  core.EnemyType
	TargetCount int
	Kills       int

	// Delivery and exploration
	Destination string

	// Zero TimeLimit means untimed
	TimeLimit     float64
	TimeRemaining float64
}

// Spec is the data a mission is created from
type Spec struct {
	Title       string
	Description string
	Type        Type
	Giver       string
	Credits     int
	TargetType  core.EnemyType
	TargetCount int
	Destination string
	TimeLimit   float64
}

// New creates an available mission with a fresh ID
func New(s Spec) *Mission {
	m := &Mission{
		ID:          uuid.New(),
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		Status:      StatusAvailable,
		Giver:       s.Giver,
		Credits:     s.Credits,
		TargetType:  s.TargetType,
		TargetCount: s.TargetCount,
		Destination: s.Destination,
		TimeLimit:   s.TimeLimit,
	}
	if m.Credits <= 0 {
		m.Credits = 100
	}
	if m.TargetCount <= 0 {
		m.TargetCount = 1
	}
	if m.Giver == "" {
		m.Giver = "Unknown"
	}
	return m
}

func (m *Mission) start() {
	m.Status = StatusActive
	m.Kills = 0
	m.TimeRemaining = m.TimeLimit
}

// tick advances the time limit, returns true when it ran out
func (m *Mission) tick(dt float64) bool {
	if m.Status != StatusActive || m.TimeLimit <= 0 {
		return false
	}
	m.TimeRemaining -= dt
	if m.TimeRemaining <= 0 {
		m.TimeRemaining = 0
		m.Status = StatusFailed
		return true
	}
	return false
}

// recordKill counts a matching kill, returns true on completion
func (m *Mission) recordKill(t core.EnemyType) bool {
	if m.Status != StatusActive || m.Type != TypeBounty {
		return false
	}
	if m.TargetType != AnyEnemy && m.TargetType != t {
		return false
	}
	m.Kills++
	if m.Kills >= m.TargetCount {
		m.Status = StatusCompleted
		return true
	}
	return false
}

// recordVisit checks a station arrival, returns true on completion
func (m *Mission) recordVisit(station string) bool {
	if m.Status != StatusActive {
		return false
	}
	if m.Type != TypeDelivery && m.Type != TypeExploration {
		return false
	}
	if m.Destination != station {
		return false
	}
	m.Status = StatusCompleted
	return true
}

// Progress is a one-line objective summary
func (m *Mission) Progress() string {
	switch m.Type {
	case TypeBounty:
		return fmt.Sprintf("%d/%d targets", m.Kills, m.TargetCount)
	case TypeDelivery, TypeExploration:
		return "Destination: " + m.Destination
	}
	return ""
}

// TimeText formats the remaining time as m:ss, empty when untimed
func (m *Mission) TimeText() string {
	if m.TimeLimit <= 0 {
		return ""
	}
	secs := int(m.TimeRemaining)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
