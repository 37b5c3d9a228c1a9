package game

import (
	"chosenoffset.com/chomper/internal/config"
	"chosenoffset.com/chomper/internal/entity"
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome describes how a session ended.
type Outcome struct {
	Status Status
	Score  int
	Tick   uint64
}

// Message returns the text shown to the player for the outcome.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusWon:
		return "You Win!"
	case StatusLost:
		return "You Lose! Try Again!"
	default:
		return ""
	}
}

const (
	// TicksPerSecond is the fixed simulation rate. Every frontend steps at it.
	TicksPerSecond = 60
	// ScaredTicks is how long a power item scares the adversaries.
	ScaredTicks = 5 * TicksPerSecond
	// CollectiblePoints is the score for one collectible.
	CollectiblePoints = 10
)

// Rules are the parameters a session runs with.
type Rules struct {
	AvatarSpeed       float64
	AdversarySpeed    float64
	ScaredTicks       uint64
	CollectiblePoints int
	StickyKeys        bool
}

// DefaultRules returns the classic arcade rules.
func DefaultRules() Rules {
	return Rules{
		AvatarSpeed:       entity.DefaultAvatarSpeed,
		AdversarySpeed:    entity.DefaultAdversarySpeed,
		ScaredTicks:       ScaredTicks,
		CollectiblePoints: CollectiblePoints,
		StickyKeys:        true,
	}
}

// RulesFromConfig returns the classic rules with the player's input preference.
func RulesFromConfig(c *config.Config) Rules {
	rules := DefaultRules()
	rules.StickyKeys = c.Input.StickyKeys
	return rules
}
