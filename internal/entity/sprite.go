package entity

import "chosenoffset.com/chomper/internal/core/geom"

// SpriteKind tells a renderer which shape to draw.
type SpriteKind int

const (
	SpriteObstacle SpriteKind = iota
	SpriteCollectible
	SpritePowerItem
	SpriteAvatar
	SpriteAdversary
)

// Sprite is a render-only snapshot of an entity. Circles are positioned by their
// centre, obstacles by their top-left corner.
type Sprite struct {
	Kind   SpriteKind
	Pos    geom.Vec
	Radius float64
	W, H   float64

	Tile     TileKind // obstacles
	Color    string   // adversaries
	Scared   bool     // adversaries
	Mouth    float64  // avatar
	Rotation float64  // avatar
}

// Drawable is anything that can be handed to a renderer.
type Drawable interface {
	Sprite() Sprite
}

// TileKind is the cosmetic kind of an obstacle.
type TileKind string

const (
	TilePipeHorizontal    TileKind = "pipe_horizontal"
	TilePipeVertical      TileKind = "pipe_vertical"
	TileCornerTopLeft     TileKind = "corner_top_left"
	TileCornerTopRight    TileKind = "corner_top_right"
	TileCornerBottomRight TileKind = "corner_bottom_right"
	TileCornerBottomLeft  TileKind = "corner_bottom_left"
	TileBlock             TileKind = "block"
	TileCapLeft           TileKind = "cap_left"
	TileCapRight          TileKind = "cap_right"
	TileCapBottom         TileKind = "cap_bottom"
	TileCapTop            TileKind = "cap_top"
	TileCross             TileKind = "cross"
	TileConnectorTop      TileKind = "connector_top"
	TileConnectorRight    TileKind = "connector_right"
	TileConnectorBottom   TileKind = "connector_bottom"
	TileConnectorLeft     TileKind = "connector_left"
)

// Arm is a bit set of the cell edges a pipe tile reaches.
type Arm uint8

const (
	ArmNorth Arm = 1 << iota
	ArmEast
	ArmSouth
	ArmWest
)

// Arms returns which cell edges the tile's pipe connects to. A block has none.
func (k TileKind) Arms() Arm {
	switch k {
	case TilePipeHorizontal:
		return ArmEast | ArmWest
	case TilePipeVertical:
		return ArmNorth | ArmSouth
	case TileCornerTopLeft:
		return ArmEast | ArmSouth
	case TileCornerTopRight:
		return ArmWest | ArmSouth
	case TileCornerBottomRight:
		return ArmWest | ArmNorth
	case TileCornerBottomLeft:
		return ArmEast | ArmNorth
	case TileCapLeft:
		return ArmEast
	case TileCapRight:
		return ArmWest
	case TileCapBottom:
		return ArmNorth
	case TileCapTop:
		return ArmSouth
	case TileCross:
		return ArmNorth | ArmEast | ArmSouth | ArmWest
	case TileConnectorTop:
		return ArmEast | ArmWest | ArmNorth
	case TileConnectorRight:
		return ArmNorth | ArmSouth | ArmEast
	case TileConnectorBottom:
		return ArmEast | ArmWest | ArmSouth
	case TileConnectorLeft:
		return ArmNorth | ArmSouth | ArmWest
	default:
		return 0
	}
}

// Has reports whether a includes every bit of b.
func (a Arm) Has(b Arm) bool {
	return a&b == b
}
