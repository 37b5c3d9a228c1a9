// Package geom holds the small geometry types shared by the maze, the entities
// and the collision tests. All coordinates are in maze units (40 per cell).
package geom

import "math"

// Vec is a 2D point or a per-frame velocity.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Pos  Vec
	W, H float64
}

// Center returns the rectangle's centre point.
func (r Rect) Center() Vec {
	return Vec{X: r.Pos.X + r.W/2, Y: r.Pos.Y + r.H/2}
}

// Circle is a circle centred on Pos.
type Circle struct {
	Pos    Vec
	Radius float64
}
