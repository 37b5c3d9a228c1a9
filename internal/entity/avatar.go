package entity

import (
	"math"

	"chosenoffset.com/chomper/internal/core/geom"
)

// Avatar is the player-controlled circle with a chomping mouth.
type Avatar struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Speed  float64

	// Mouth is the half-angle of the mouth opening in radians.
	Mouth    float64
	OpenRate float64
	// Rotation is the facing angle in radians (0 = right, clockwise positive).
	Rotation float64
}

// NewAvatar creates a resting avatar at pos.
func NewAvatar(pos geom.Vec, speed float64) *Avatar {
	return &Avatar{
		Pos:      pos,
		Radius:   AvatarRadius,
		Speed:    speed,
		Mouth:    MouthMax,
		OpenRate: DefaultOpenRate,
	}
}

// Circle returns the avatar's bounds.
func (a *Avatar) Circle() geom.Circle {
	return geom.Circle{Pos: a.Pos, Radius: a.Radius}
}

// Update commits the velocity and advances the mouth animation.
func (a *Avatar) Update() {
	a.Pos = a.Pos.Add(a.Vel)

	if a.Mouth < 0 || a.Mouth > MouthMax {
		a.OpenRate = -a.OpenRate
	}
	a.Mouth += a.OpenRate
}

// Face points the avatar along its velocity. A resting avatar keeps its rotation.
func (a *Avatar) Face() {
	switch DirectionOf(a.Vel) {
	case DirRight:
		a.Rotation = 0
	case DirLeft:
		a.Rotation = math.Pi
	case DirDown:
		a.Rotation = math.Pi / 2
	case DirUp:
		a.Rotation = math.Pi * 1.5
	}
}

// Sprite implements Drawable.
func (a *Avatar) Sprite() Sprite {
	return Sprite{
		Kind:     SpriteAvatar,
		Pos:      a.Pos,
		Radius:   a.Radius,
		Mouth:    a.Mouth,
		Rotation: a.Rotation,
	}
}
