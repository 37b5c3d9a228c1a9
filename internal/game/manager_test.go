package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/chomper/internal/entity"
	"chosenoffset.com/chomper/internal/render"
	"chosenoffset.com/chomper/internal/render/rendertest"
	"chosenoffset.com/chomper/internal/ui/hud"
	"chosenoffset.com/chomper/internal/world/maze"
)

func newTestManager(t *testing.T, doc string) (*Manager, *rendertest.Renderer, *rendertest.InputManager) {
	t.Helper()
	rendertest.Install()

	def, err := maze.Parse([]byte(doc), "test.yaml")
	require.NoError(t, err)
	session := NewSession(def, DefaultRules(), rand.New(rand.NewSource(1)), zerolog.Nop())

	r := rendertest.NewRenderer()
	in := rendertest.NewInputManager()
	return NewManager(r, in, session, zerolog.Nop()), r, in
}

func TestManagerLayoutIncludesHUDStrip(t *testing.T) {
	m, _, _ := newTestManager(t, singleCollectibleMaze)

	w, h := m.Layout(1920, 1080)
	assert.Equal(t, 5*40, w)
	assert.Equal(t, 3*40+hud.Height, h)
}

func TestManagerForwardsKeysAndSteps(t *testing.T) {
	m, _, in := newTestManager(t, singleCollectibleMaze)

	in.Press(render.KeyRight)
	require.NoError(t, m.Update())
	in.EndFrame()

	assert.Equal(t, entity.DirRight, m.Session.Input.Active())
	assert.Equal(t, uint64(1), m.Session.Tick())
	assert.Equal(t, 62.0, m.Session.Avatar.Pos.X)
}

func TestManagerForwardsReleasesWithoutStickyKeys(t *testing.T) {
	rendertest.Install()
	def, err := maze.Parse([]byte(singleCollectibleMaze), "test.yaml")
	require.NoError(t, err)
	rules := DefaultRules()
	rules.StickyKeys = false
	session := NewSession(def, rules, rand.New(rand.NewSource(1)), zerolog.Nop())
	in := rendertest.NewInputManager()
	m := NewManager(rendertest.NewRenderer(), in, session, zerolog.Nop())

	in.Press(render.KeyRight)
	require.NoError(t, m.Update())
	in.EndFrame()
	require.Equal(t, 62.0, m.Session.Avatar.Pos.X)

	in.Release(render.KeyRight)
	require.NoError(t, m.Update())
	in.EndFrame()

	assert.Equal(t, entity.DirNone, m.Session.Input.Active())
	assert.True(t, m.Session.Avatar.Vel.IsZero())
	assert.Equal(t, 62.0, m.Session.Avatar.Pos.X)
}

func TestManagerUpdatesHUDAndRestarts(t *testing.T) {
	m, _, in := newTestManager(t, singleCollectibleMaze)

	in.Press(render.KeyD)
	for i := 0; i < 60 && m.Session.Running(); i++ {
		require.NoError(t, m.Update())
		in.EndFrame()
	}
	require.Equal(t, StatusWon, m.Session.Status)
	assert.Equal(t, "Score: 10", m.HUD.ScoreText())
	assert.Equal(t, "You Win!", m.HUD.Banner())

	// Steps stop until the player restarts.
	tick := m.Session.Tick()
	require.NoError(t, m.Update())
	assert.Equal(t, tick, m.Session.Tick())

	in.Press(render.KeyEnter)
	require.NoError(t, m.Update())
	in.EndFrame()

	assert.Equal(t, StatusRunning, m.Session.Status)
	assert.Equal(t, "Score: 0", m.HUD.ScoreText())
	assert.Empty(t, m.HUD.Banner())
}

func TestManagerQuitsOnEscape(t *testing.T) {
	m, _, in := newTestManager(t, singleCollectibleMaze)

	in.Press(render.KeyEscape)
	assert.ErrorIs(t, m.Update(), render.ErrQuit)
}

func TestManagerDrawCachesWalls(t *testing.T) {
	m, r, _ := newTestManager(t, poweredHeadOnMaze)
	screen := rendertest.NewImage(m.ScreenWidth, m.ScreenHeight)

	m.Draw(screen)
	layer, ok := m.mazeLayer.(*rendertest.Image)
	require.True(t, ok)
	wallDraws := layer.Draws
	assert.Positive(t, wallDraws)

	m.Draw(screen)
	assert.Equal(t, wallDraws, layer.Draws, "walls are drawn once")

	require.Len(t, screen.Blits, 2)
	assert.Same(t, layer, screen.Blits[0].Src)
	assert.Equal(t, float64(hud.Height), screen.Blits[0].GeoM.TY)

	sectors := r.Ops("sector")
	require.Len(t, sectors, 2, "one avatar per frame")
	assert.Equal(t, float32(60+hud.Height), sectors[0].Y)

	assert.Contains(t, r.Texts(), "Score: 0")
}

func TestDrawSpriteColoursScaredAdversaries(t *testing.T) {
	r := rendertest.NewRenderer()
	dst := rendertest.NewImage(100, 100)

	drawSprite(r, dst, entity.Sprite{Kind: entity.SpriteAdversary, Radius: 15, Color: "red"}, 0)
	drawSprite(r, dst, entity.Sprite{Kind: entity.SpriteAdversary, Radius: 15, Color: "red", Scared: true}, 0)

	circles := r.Ops("circle")
	require.Len(t, circles, 2)
	assert.Equal(t, AdversaryColor("red"), circles[0].Color)
	assert.Equal(t, scaredColor, circles[1].Color)
	assert.Len(t, r.Ops("stroke-circle"), 1, "scared adversaries get a rim")
}

func TestDrawObstacleArms(t *testing.T) {
	r := rendertest.NewRenderer()
	dst := rendertest.NewImage(40, 40)

	drawSprite(r, dst, entity.Sprite{Kind: entity.SpriteObstacle, W: 40, H: 40, Tile: entity.TileCross}, 0)
	assert.Len(t, r.Ops("line"), 4)

	r.Reset()
	drawSprite(r, dst, entity.Sprite{Kind: entity.SpriteObstacle, W: 40, H: 40, Tile: entity.TileCornerTopLeft}, 0)
	assert.Len(t, r.Ops("line"), 2)

	r.Reset()
	drawSprite(r, dst, entity.Sprite{Kind: entity.SpriteObstacle, W: 40, H: 40, Tile: entity.TileBlock}, 0)
	assert.Empty(t, r.Ops("line"))
	assert.Len(t, r.Ops("stroke-rect"), 1)
}
