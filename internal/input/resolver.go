// Package input turns raw direction key presses into the avatar's velocity.
package input

import (
	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

// Key is a logical direction key.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Keys lists every logical direction key.
var Keys = [...]Key{KeyW, KeyA, KeyS, KeyD, KeyUp, KeyDown, KeyLeft, KeyRight}

// Direction returns the movement direction bound to k.
func (k Key) Direction() entity.Direction {
	switch k {
	case KeyW, KeyUp:
		return entity.DirUp
	case KeyS, KeyDown:
		return entity.DirDown
	case KeyA, KeyLeft:
		return entity.DirLeft
	case KeyD, KeyRight:
		return entity.DirRight
	default:
		return entity.DirNone
	}
}

// Resolver tracks which keys are held and which was pressed last.
//
// In sticky mode releases are ignored, so the last pressed direction stays
// active until another key is pressed. Otherwise releasing the active key hands
// control back to the most recently pressed key that is still held.
type Resolver struct {
	held   map[Key]bool
	order  []Key // held keys, oldest first
	last   Key
	sticky bool
}

// NewResolver creates a resolver with nothing held.
func NewResolver(sticky bool) *Resolver {
	return &Resolver{
		held:   make(map[Key]bool),
		sticky: sticky,
	}
}

// Sticky reports whether releases are ignored.
func (r *Resolver) Sticky() bool {
	return r.sticky
}

// Press records a key-down event.
func (r *Resolver) Press(k Key) {
	if k.Direction() == entity.DirNone {
		return
	}
	r.held[k] = true
	r.last = k
	r.removeFromOrder(k)
	r.order = append(r.order, k)
}

// Release records a key-up event.
func (r *Resolver) Release(k Key) {
	if r.sticky || !r.held[k] {
		return
	}
	r.held[k] = false
	r.removeFromOrder(k)

	if r.last == k {
		r.last = KeyNone
		if n := len(r.order); n > 0 {
			r.last = r.order[n-1]
		}
	}
}

func (r *Resolver) removeFromOrder(k Key) {
	for i, o := range r.order {
		if o == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Held reports whether k is currently held.
func (r *Resolver) Held(k Key) bool {
	return r.held[k]
}

// Last returns the arbitrating key, or KeyNone.
func (r *Resolver) Last() Key {
	return r.last
}

// Active returns the direction the player is asking for this frame, or DirNone.
func (r *Resolver) Active() entity.Direction {
	if r.last == KeyNone || !r.held[r.last] {
		return entity.DirNone
	}
	return r.last.Direction()
}

// Resolve validates the requested direction against the obstacles and updates
// the avatar's velocity. A blocked request zeroes only the requested axis so the
// avatar keeps sliding along its current path until the turn opens up.
func (r *Resolver) Resolve(avatar *entity.Avatar, obstacles []geom.Rect) {
	dir := r.Active()
	if dir == entity.DirNone {
		if !r.sticky {
			avatar.Vel = geom.Vec{}
		}
		return
	}

	proposed := dir.Velocity(avatar.Speed)
	if geom.FirstCollision(avatar.Circle(), proposed, obstacles) >= 0 {
		if proposed.X != 0 {
			avatar.Vel.X = 0
		} else {
			avatar.Vel.Y = 0
		}
		return
	}
	avatar.Vel = proposed
}
