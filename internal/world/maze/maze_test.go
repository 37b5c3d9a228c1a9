package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

func gridOf(rows ...string) Grid {
	g := make(Grid, len(rows))
	for i, r := range rows {
		g[i] = []rune(r)
	}
	return g
}

func TestLoadPlacesEntitiesPerSymbol(t *testing.T) {
	layout := Load(gridOf(
		"1-2",
		"|.|",
		"|p|",
		"4?3",
	), 40)

	require.Len(t, layout.Obstacles, 9)
	require.Len(t, layout.Collectibles, 1)
	require.Len(t, layout.PowerItems, 1)

	assert.Equal(t, geom.Vec{X: 0, Y: 0}, layout.Obstacles[0].Rect.Pos)
	assert.Equal(t, entity.TileCornerTopLeft, layout.Obstacles[0].Kind)
	assert.Equal(t, 40.0, layout.Obstacles[0].Rect.W)
	assert.Equal(t, geom.Vec{X: 60, Y: 60}, layout.Collectibles[0].Pos)
	assert.Equal(t, geom.Vec{X: 60, Y: 100}, layout.PowerItems[0].Pos)
	assert.Equal(t, entity.CollectibleRadius, layout.Collectibles[0].Radius)
	assert.Equal(t, entity.PowerItemRadius, layout.PowerItems[0].Radius)
}

func TestLoadIgnoresFloorAndUnknownSymbols(t *testing.T) {
	layout := Load(gridOf("  x#@ "), 40)
	assert.Empty(t, layout.Obstacles)
	assert.Empty(t, layout.Collectibles)
	assert.Empty(t, layout.PowerItems)
}

func TestLoadIsDeterministic(t *testing.T) {
	g := gridOf("1-.p2", "|b.]|")
	a := Load(g, 40)
	b := Load(g, 40)
	assert.Equal(t, a.ObstacleRects(), b.ObstacleRects())
	assert.Equal(t, len(a.Collectibles), len(b.Collectibles))
}

func TestEveryObstacleSymbolHasAKind(t *testing.T) {
	for _, s := range "-|1234b[]_^+5678" {
		assert.True(t, IsObstacle(s), "symbol %q", s)
	}
	for _, s := range ". p" {
		assert.False(t, IsObstacle(s), "symbol %q", s)
	}
}

func TestClassicMaze(t *testing.T) {
	def := Classic()

	assert.Equal(t, "classic", def.Name)
	assert.Equal(t, 20, def.Width())
	assert.Equal(t, 13, def.Height())
	assert.Equal(t, geom.Vec{X: 60, Y: 60}, def.AvatarStart())

	adversaries := def.SpawnAdversaries(entity.DefaultAdversarySpeed)
	require.Len(t, adversaries, 3)
	assert.Equal(t, "red", adversaries[0].Color)
	assert.Equal(t, geom.Vec{X: 260, Y: 60}, adversaries[0].Pos)
	assert.Equal(t, geom.Vec{X: 2}, adversaries[0].Vel)
	assert.Equal(t, geom.Vec{X: 420, Y: 300}, adversaries[2].Pos)

	layout := Load(def.Grid(), def.CellSize)
	assert.Len(t, layout.PowerItems, 2)
	assert.NotEmpty(t, layout.Collectibles)
}

func TestParseRejectsInvalidMazes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no rows", "name: x\n"},
		{"ragged rows", "rows: [\"|.|\", \"||\"]\n"},
		{"avatar outside", "avatar_spawn: {col: 5, row: 0}\nrows: [\"|.|\"]\n"},
		{"adversary outside", "rows: [\"|.|\"]\nadversaries: [{col: 0, row: 3, color: red, direction: left}]\n"},
		{"bad direction", "rows: [\"|.|\"]\nadversaries: [{col: 1, row: 0, color: red, direction: sideways}]\n"},
		{"bad cell size", "cell_size: 0\nrows: [\"|.|\"]\n"},
		{"not yaml", "rows: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), "test.yaml")
			assert.Error(t, err)
		})
	}
}

func TestLoadFileAndScan(t *testing.T) {
	dir := t.TempDir()
	good := "name: tiny\navatar_spawn: {col: 1, row: 0}\nrows: [\"|.|\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiny.yaml"), []byte(good), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("rows: []\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	def, err := LoadFile(filepath.Join(dir, "tiny.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 40.0, def.CellSize)
	assert.Equal(t, geom.Vec{X: 60, Y: 20}, def.AvatarStart())

	entries, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "broken", entries[0].Name)
	assert.Error(t, entries[0].Err)
	assert.Equal(t, "tiny", entries[1].Name)
	assert.NoError(t, entries[1].Err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBundledMazesAreValid(t *testing.T) {
	entries, err := Scan(filepath.Join("..", "..", "..", "mazes"))
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NoError(t, e.Err, e.Path)
	}
}
