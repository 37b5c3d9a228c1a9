package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

func cell(col, row int) geom.Rect {
	return geom.Rect{Pos: geom.Vec{X: float64(col) * 40, Y: float64(row) * 40}, W: 40, H: 40}
}

// corridor returns the walls of a horizontal corridor along row 1, columns 1..5.
func corridor() []geom.Rect {
	var walls []geom.Rect
	for col := 0; col <= 6; col++ {
		walls = append(walls, cell(col, 0), cell(col, 2))
	}
	return append(walls, cell(0, 1), cell(6, 1))
}

func TestKeyDirections(t *testing.T) {
	assert.Equal(t, entity.DirUp, KeyW.Direction())
	assert.Equal(t, entity.DirUp, KeyUp.Direction())
	assert.Equal(t, entity.DirLeft, KeyA.Direction())
	assert.Equal(t, entity.DirDown, KeyDown.Direction())
	assert.Equal(t, entity.DirRight, KeyD.Direction())
	assert.Equal(t, entity.DirNone, KeyNone.Direction())
}

func TestMostRecentPressWins(t *testing.T) {
	r := NewResolver(true)
	r.Press(KeyD)
	r.Press(KeyUp)

	assert.Equal(t, KeyUp, r.Last())
	assert.Equal(t, entity.DirUp, r.Active())
	assert.True(t, r.Held(KeyD))
}

func TestStickyModeIgnoresRelease(t *testing.T) {
	r := NewResolver(true)
	r.Press(KeyA)
	r.Release(KeyA)

	assert.True(t, r.Held(KeyA))
	assert.Equal(t, entity.DirLeft, r.Active())
}

func TestReleaseFallsBackToMostRecentHeldKey(t *testing.T) {
	r := NewResolver(false)
	r.Press(KeyD)
	r.Press(KeyS)
	r.Press(KeyW)

	r.Release(KeyW)
	assert.Equal(t, KeyS, r.Last())

	r.Release(KeyD)
	assert.Equal(t, KeyS, r.Last(), "releasing a non-active key keeps the active one")

	r.Release(KeyS)
	assert.Equal(t, KeyNone, r.Last())
	assert.Equal(t, entity.DirNone, r.Active())
}

func TestResolveAcceptsOpenDirection(t *testing.T) {
	r := NewResolver(true)
	a := entity.NewAvatar(geom.Vec{X: 60, Y: 60}, 2)
	r.Press(KeyRight)

	r.Resolve(a, corridor())
	assert.Equal(t, geom.Vec{X: 2}, a.Vel)
}

func TestResolveRejectsBlockedAxisOnly(t *testing.T) {
	r := NewResolver(true)
	a := entity.NewAvatar(geom.Vec{X: 100, Y: 60}, 2)
	a.Vel = geom.Vec{X: 2}
	r.Press(KeyUp)

	r.Resolve(a, corridor())
	assert.Equal(t, geom.Vec{X: 2}, a.Vel, "blocked turn keeps the current heading")
}

func TestResolveKeepsVelocityWithoutInputInStickyMode(t *testing.T) {
	r := NewResolver(true)
	a := entity.NewAvatar(geom.Vec{X: 60, Y: 60}, 2)
	a.Vel = geom.Vec{X: -2}

	r.Resolve(a, corridor())
	assert.Equal(t, geom.Vec{X: -2}, a.Vel)
}

func TestResolveStopsWhenNothingHeldInReleaseMode(t *testing.T) {
	r := NewResolver(false)
	a := entity.NewAvatar(geom.Vec{X: 60, Y: 60}, 2)
	r.Press(KeyRight)
	r.Resolve(a, corridor())
	r.Release(KeyRight)
	r.Resolve(a, corridor())

	assert.Equal(t, geom.Vec{}, a.Vel)
}
