// Package entity provides the things that live in the maze: the avatar, the
// adversaries, collectibles, power items and the obstacles that make up the walls.
// Each entity owns its geometry and exposes a Sprite for renderers.
package entity

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/chomper/internal/core/geom"
)

const (
	// CellSize is the width and height of one maze cell.
	CellSize = 40.0

	AvatarRadius      = 15.0
	AdversaryRadius   = 15.0
	CollectibleRadius = 3.0
	PowerItemRadius   = 8.0

	// Speeds must divide CellSize/2 so movers pass exactly through cell centres,
	// the only place a turn fits between the walls.
	DefaultAvatarSpeed    = 2.0
	DefaultAdversarySpeed = 2.0

	// MouthMax is the widest mouth opening in radians; the mouth oscillates in [0, MouthMax].
	MouthMax        = 0.75
	DefaultOpenRate = 0.12
)

// Obstacle is one immovable wall cell.
type Obstacle struct {
	Rect geom.Rect
	Kind TileKind
}

// NewObstacle creates an obstacle covering the cell whose top-left corner is pos.
func NewObstacle(pos geom.Vec, size float64, kind TileKind) *Obstacle {
	return &Obstacle{
		Rect: geom.Rect{Pos: pos, W: size, H: size},
		Kind: kind,
	}
}

// Sprite implements Drawable.
func (o *Obstacle) Sprite() Sprite {
	return Sprite{
		Kind: SpriteObstacle,
		Pos:  o.Rect.Pos,
		W:    o.Rect.W,
		H:    o.Rect.H,
		Tile: o.Kind,
	}
}

// Collectible is a dot worth points.
type Collectible struct {
	Pos    geom.Vec
	Radius float64
}

// NewCollectible creates a collectible centred on pos.
func NewCollectible(pos geom.Vec) *Collectible {
	return &Collectible{Pos: pos, Radius: CollectibleRadius}
}

// Circle returns the collectible's bounds.
func (c *Collectible) Circle() geom.Circle {
	return geom.Circle{Pos: c.Pos, Radius: c.Radius}
}

// Sprite implements Drawable.
func (c *Collectible) Sprite() Sprite {
	return Sprite{Kind: SpriteCollectible, Pos: c.Pos, Radius: c.Radius}
}

// PowerItem scares every adversary for a while when eaten.
type PowerItem struct {
	Pos    geom.Vec
	Radius float64
}

// NewPowerItem creates a power item centred on pos.
func NewPowerItem(pos geom.Vec) *PowerItem {
	return &PowerItem{Pos: pos, Radius: PowerItemRadius}
}

// Circle returns the power item's bounds.
func (p *PowerItem) Circle() geom.Circle {
	return geom.Circle{Pos: p.Pos, Radius: p.Radius}
}

// Sprite implements Drawable.
func (p *PowerItem) Sprite() Sprite {
	return Sprite{Kind: SpritePowerItem, Pos: p.Pos, Radius: p.Radius}
}

// Adversary is an autonomously moving enemy.
type Adversary struct {
	ID     int
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Color  string
	Scared bool
	Speed  float64

	// PrevBlocked remembers the blocked directions seen since the last turn.
	PrevBlocked mapset.Set[Direction]
}

// NewAdversary creates an adversary heading in dir.
func NewAdversary(id int, pos geom.Vec, color string, dir Direction, speed float64) *Adversary {
	return &Adversary{
		ID:          id,
		Pos:         pos,
		Vel:         dir.Velocity(speed),
		Radius:      AdversaryRadius,
		Color:       color,
		Speed:       speed,
		PrevBlocked: mapset.New[Direction](),
	}
}

// Circle returns the adversary's bounds.
func (a *Adversary) Circle() geom.Circle {
	return geom.Circle{Pos: a.Pos, Radius: a.Radius}
}

// Heading returns the current travel direction.
func (a *Adversary) Heading() Direction {
	return DirectionOf(a.Vel)
}

// Update moves the adversary by its velocity.
func (a *Adversary) Update() {
	a.Pos = a.Pos.Add(a.Vel)
}

// Sprite implements Drawable.
func (a *Adversary) Sprite() Sprite {
	return Sprite{
		Kind:   SpriteAdversary,
		Pos:    a.Pos,
		Radius: a.Radius,
		Color:  a.Color,
		Scared: a.Scared,
	}
}
