package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func cell(col, row int) geom.Rect {
	return geom.Rect{Pos: geom.Vec{X: float64(col) * 40, Y: float64(row) * 40}, W: 40, H: 40}
}

// straightCorridor builds a closed corridor along row 1 from column 1 to 9.
func straightCorridor() []geom.Rect {
	var walls []geom.Rect
	for col := 0; col <= 10; col++ {
		walls = append(walls, cell(col, 0), cell(col, 2))
	}
	return append(walls, cell(0, 1), cell(10, 1))
}

// corridorWithAlcove builds a corridor along row 2 with a one-cell alcove above column 5.
func corridorWithAlcove() []geom.Rect {
	var walls []geom.Rect
	for col := 0; col <= 10; col++ {
		if col != 5 {
			walls = append(walls, cell(col, 1))
		}
		walls = append(walls, cell(col, 3))
	}
	return append(walls, cell(5, 0), cell(0, 2), cell(10, 2))
}

func TestBlockedInCorridor(t *testing.T) {
	a := entity.NewAdversary(1, geom.Vec{X: 60, Y: 60}, "red", entity.DirRight, 2)
	blocked := Blocked(a, straightCorridor())

	assert.Equal(t, 2, blocked.Size())
	assert.True(t, blocked.Has(entity.DirUp))
	assert.True(t, blocked.Has(entity.DirDown))
}

func TestNoTurnInStraightCorridorUntilWall(t *testing.T) {
	c := NewController(testRNG())
	walls := straightCorridor()
	a := entity.NewAdversary(1, geom.Vec{X: 60, Y: 60}, "red", entity.DirRight, 2)

	turnedAt := -1.0
	for i := 0; i < 400 && turnedAt < 0; i++ {
		a.Update()
		if c.Steer(a, walls) {
			turnedAt = a.Pos.X
		}
	}

	require.GreaterOrEqual(t, turnedAt, 0.0, "adversary never turned")
	// Right becomes blocked once x+15+2 reaches the padded wall edge at 396.
	assert.Equal(t, 380.0, turnedAt)
	assert.Equal(t, entity.DirLeft, a.Heading(), "a dead end reverses the adversary")
	assert.Equal(t, 0, a.PrevBlocked.Size())
}

func TestTurnDecisionAtSideOpening(t *testing.T) {
	walls := corridorWithAlcove()

	for seed := int64(0); seed < 8; seed++ {
		c := NewController(rand.New(rand.NewSource(seed)))
		a := entity.NewAdversary(1, geom.Vec{X: 60, Y: 100}, "pink", entity.DirRight, 2)

		turnedAt := -1.0
		for i := 0; i < 200 && turnedAt < 0; i++ {
			a.Update()
			if c.Steer(a, walls) {
				turnedAt = a.Pos.X
			}
		}

		assert.Equal(t, 220.0, turnedAt, "seed %d", seed)
		assert.Contains(t, []entity.Direction{entity.DirUp, entity.DirRight}, a.Heading(), "seed %d", seed)
	}
}

func TestEnclosedAdversaryStops(t *testing.T) {
	c := NewController(testRNG())
	walls := []geom.Rect{cell(0, 1), cell(2, 1), cell(1, 0), cell(1, 2)}
	a := entity.NewAdversary(1, geom.Vec{X: 60, Y: 60}, "blue", entity.DirRight, 2)

	assert.True(t, c.Steer(a, walls))
	assert.Equal(t, geom.Vec{}, a.Vel)
	assert.False(t, c.Steer(a, walls), "a stopped adversary stays put")
}

func TestSteerIsDeterministicForSeed(t *testing.T) {
	walls := corridorWithAlcove()
	run := func() entity.Direction {
		c := NewController(rand.New(rand.NewSource(99)))
		a := entity.NewAdversary(1, geom.Vec{X: 60, Y: 100}, "red", entity.DirRight, 2)
		for i := 0; i < 200; i++ {
			a.Update()
			c.Steer(a, walls)
		}
		return a.Heading()
	}
	assert.Equal(t, run(), run())
}
