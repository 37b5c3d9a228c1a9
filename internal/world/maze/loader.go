// Package maze turns symbolic grids into placed obstacles, collectibles and power
// items, and loads maze definitions from YAML files.
package maze

import (
	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
)

// Grid is a rectangular array of cell symbols indexed [row][col].
type Grid [][]rune

const (
	SymbolCollectible = '.'
	SymbolPowerItem   = 'p'
	SymbolFloor       = ' '
)

// obstacleSymbols maps wall symbols to the tile kind used for drawing them.
var obstacleSymbols = map[rune]entity.TileKind{
	'-': entity.TilePipeHorizontal,
	'|': entity.TilePipeVertical,
	'1': entity.TileCornerTopLeft,
	'2': entity.TileCornerTopRight,
	'3': entity.TileCornerBottomRight,
	'4': entity.TileCornerBottomLeft,
	'b': entity.TileBlock,
	'[': entity.TileCapLeft,
	']': entity.TileCapRight,
	'_': entity.TileCapBottom,
	'^': entity.TileCapTop,
	'+': entity.TileCross,
	'5': entity.TileConnectorTop,
	'6': entity.TileConnectorRight,
	'7': entity.TileConnectorBottom,
	'8': entity.TileConnectorLeft,
}

// IsObstacle reports whether the symbol places a wall.
func IsObstacle(symbol rune) bool {
	_, ok := obstacleSymbols[symbol]
	return ok
}

// Layout is the result of loading a grid.
type Layout struct {
	Obstacles    []*entity.Obstacle
	Collectibles []*entity.Collectible
	PowerItems   []*entity.PowerItem
}

// Load places one entity per recognised symbol. Obstacles are anchored at the
// cell's top-left corner, collectibles and power items at its centre. Floor and
// unrecognised symbols produce nothing.
func Load(grid Grid, cellSize float64) *Layout {
	layout := &Layout{}

	for row, symbols := range grid {
		for col, symbol := range symbols {
			corner := geom.Vec{X: float64(col) * cellSize, Y: float64(row) * cellSize}
			center := CellCenter(col, row, cellSize)

			if kind, ok := obstacleSymbols[symbol]; ok {
				layout.Obstacles = append(layout.Obstacles, entity.NewObstacle(corner, cellSize, kind))
				continue
			}

			switch symbol {
			case SymbolCollectible:
				layout.Collectibles = append(layout.Collectibles, entity.NewCollectible(center))
			case SymbolPowerItem:
				layout.PowerItems = append(layout.PowerItems, entity.NewPowerItem(center))
			}
		}
	}

	return layout
}

// CellCenter returns the centre point of the cell at (col, row).
func CellCenter(col, row int, cellSize float64) geom.Vec {
	return geom.Vec{
		X: float64(col)*cellSize + cellSize/2,
		Y: float64(row)*cellSize + cellSize/2,
	}
}

// ObstacleRects returns the bounds of every obstacle, in load order.
func (l *Layout) ObstacleRects() []geom.Rect {
	rects := make([]geom.Rect, len(l.Obstacles))
	for i, o := range l.Obstacles {
		rects[i] = o.Rect
	}
	return rects
}
