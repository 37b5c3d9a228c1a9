package entity

import (
	"fmt"

	"chosenoffset.com/chomper/internal/core/geom"
)

// Direction represents one of the four axis-aligned movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirRight
	DirLeft
	DirUp
	DirDown
)

// Directions lists the four movement directions in the order they are probed.
var Directions = [...]Direction{DirRight, DirLeft, DirUp, DirDown}

// Velocity returns the per-frame velocity for moving in d at the given speed.
func (d Direction) Velocity(speed float64) geom.Vec {
	switch d {
	case DirRight:
		return geom.Vec{X: speed}
	case DirLeft:
		return geom.Vec{X: -speed}
	case DirUp:
		return geom.Vec{Y: -speed}
	case DirDown:
		return geom.Vec{Y: speed}
	default:
		return geom.Vec{}
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// String returns a lowercase name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection converts a name produced by String back into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "right":
		return DirRight, nil
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "", "none":
		return DirNone, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// DirectionOf infers the travel direction from the sign of a velocity.
// Horizontal motion wins when both axes are non-zero.
func DirectionOf(v geom.Vec) Direction {
	switch {
	case v.X > 0:
		return DirRight
	case v.X < 0:
		return DirLeft
	case v.Y < 0:
		return DirUp
	case v.Y > 0:
		return DirDown
	default:
		return DirNone
	}
}
