// Package ai steers adversaries through the maze. Adversaries keep heading in a
// straight line and only pick a new direction when the set of walls around them
// changes, which makes them turn at junctions and dead ends.
package ai

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

// Controller picks travel directions for adversaries.
type Controller struct {
	rng *rand.Rand
}

// NewController creates a controller drawing its choices from rng.
func NewController(rng *rand.Rand) *Controller {
	return &Controller{rng: rng}
}

// Blocked returns the directions in which a one-step move would hit an obstacle.
func Blocked(a *entity.Adversary, obstacles []geom.Rect) mapset.Set[entity.Direction] {
	blocked := mapset.New[entity.Direction]()
	circle := a.Circle()

	for _, dir := range entity.Directions {
		if geom.FirstCollision(circle, dir.Velocity(a.Speed), obstacles) >= 0 {
			blocked.Put(dir)
		}
	}
	return blocked
}

// Steer runs the junction check for one adversary after it has moved and
// reports whether it turned.
func (c *Controller) Steer(a *entity.Adversary, obstacles []geom.Rect) bool {
	blocked := Blocked(a, obstacles)

	// Remember the most enclosed position seen since the last turn.
	if blocked.Size() > a.PrevBlocked.Size() {
		a.PrevBlocked = clone(blocked)
	}

	heading := a.Heading()
	headingBlocked := heading != entity.DirNone && blocked.Has(heading)

	if sameSet(blocked, a.PrevBlocked) && !headingBlocked {
		return false
	}

	if heading != entity.DirNone {
		a.PrevBlocked.Put(heading)
	}

	var openings []entity.Direction
	for _, dir := range entity.Directions {
		if a.PrevBlocked.Has(dir) && !blocked.Has(dir) {
			openings = append(openings, dir)
		}
	}

	if len(openings) == 0 {
		// Nothing new opened up, e.g. a dead end reached head on. Take any free way out.
		for _, dir := range entity.Directions {
			if !blocked.Has(dir) {
				openings = append(openings, dir)
			}
		}
	}

	if len(openings) == 0 {
		a.Vel = geom.Vec{}
	} else {
		a.Vel = openings[c.rng.Intn(len(openings))].Velocity(a.Speed)
	}

	a.PrevBlocked = mapset.New[entity.Direction]()
	return true
}

func sameSet(a, b mapset.Set[entity.Direction]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for _, dir := range entity.Directions {
		if a.Has(dir) != b.Has(dir) {
			return false
		}
	}
	return true
}

func clone(s mapset.Set[entity.Direction]) mapset.Set[entity.Direction] {
	c := mapset.New[entity.Direction]()
	s.Each(func(dir entity.Direction) {
		c.Put(dir)
	})
	return c
}
