package game

import (
	"image/color"
	"math"

	"chosenoffset.com/chomper/internal/entity"
	"chosenoffset.com/chomper/internal/render"
	"chosenoffset.com/chomper/internal/ui/hud"
)

var (
	backgroundColor  = color.RGBA{0, 0, 0, 255}
	wallColor        = color.RGBA{33, 33, 222, 255}
	collectibleColor = color.RGBA{255, 255, 255, 255}
	powerItemColor   = color.RGBA{255, 255, 255, 255}
	avatarColor      = color.RGBA{255, 255, 0, 255}
	scaredColor      = color.RGBA{0, 0, 255, 255}
	scaredRimColor   = color.RGBA{255, 255, 255, 255}
)

// adversaryColors maps maze file colour names to RGB.
var adversaryColors = map[string]color.RGBA{
	"red":    {255, 0, 0, 255},
	"pink":   {255, 184, 255, 255},
	"blue":   {0, 255, 255, 255},
	"cyan":   {0, 255, 255, 255},
	"orange": {255, 184, 82, 255},
	"green":  {0, 255, 0, 255},
	"purple": {160, 32, 240, 255},
}

// AdversaryColor resolves a colour name, falling back to white.
func AdversaryColor(name string) color.RGBA {
	if c, ok := adversaryColors[name]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// Draw renders the game to the screen.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	// Walls never change, so they are drawn once into their own layer.
	if m.mazeLayer == nil {
		m.mazeLayer = m.Renderer.NewImage(m.mazeWidth, m.mazeHeight)
		for _, sp := range m.Session.Sprites() {
			if sp.Kind == entity.SpriteObstacle {
				drawSprite(m.Renderer, m.mazeLayer, sp, 0)
			}
		}
	}

	op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	op.GeoM.Translate(0, hud.Height)
	screen.DrawImage(m.mazeLayer, op)

	for _, sp := range m.Session.Sprites() {
		if sp.Kind != entity.SpriteObstacle {
			drawSprite(m.Renderer, screen, sp, hud.Height)
		}
	}

	m.HUD.Draw(m.Renderer, screen)
}

// drawSprite draws one sprite shifted down by offsetY.
func drawSprite(r render.Renderer, dst render.Image, sp entity.Sprite, offsetY float64) {
	x := float32(sp.Pos.X)
	y := float32(sp.Pos.Y + offsetY)
	radius := float32(sp.Radius)

	switch sp.Kind {
	case entity.SpriteObstacle:
		drawObstacle(r, dst, sp, offsetY)
	case entity.SpriteCollectible:
		r.FillCircle(dst, x, y, radius, collectibleColor)
	case entity.SpritePowerItem:
		r.FillCircle(dst, x, y, radius, powerItemColor)
	case entity.SpriteAvatar:
		mouth := math.Max(0, sp.Mouth)
		start := sp.Rotation + mouth
		end := sp.Rotation + 2*math.Pi - mouth
		r.FillSector(dst, x, y, radius, float32(start), float32(end), avatarColor)
	case entity.SpriteAdversary:
		if sp.Scared {
			r.FillCircle(dst, x, y, radius, scaredColor)
			r.StrokeCircle(dst, x, y, radius, 2, scaredRimColor)
			return
		}
		r.FillCircle(dst, x, y, radius, AdversaryColor(sp.Color))
	}
}

// drawObstacle draws a pipe segment from the cell centre to each edge the tile
// reaches. Blocks are drawn as an inset square.
func drawObstacle(r render.Renderer, dst render.Image, sp entity.Sprite, offsetY float64) {
	x := float32(sp.Pos.X)
	y := float32(sp.Pos.Y + offsetY)
	w := float32(sp.W)
	h := float32(sp.H)
	cx, cy := x+w/2, y+h/2
	thickness := w / 4

	arms := sp.Tile.Arms()
	if arms == 0 {
		r.StrokeRect(dst, x+w/8, y+h/8, w*3/4, h*3/4, thickness/2, wallColor)
		return
	}

	r.FillCircle(dst, cx, cy, thickness/2, wallColor)
	if arms.Has(entity.ArmNorth) {
		r.StrokeLine(dst, cx, cy, cx, y, thickness, wallColor)
	}
	if arms.Has(entity.ArmEast) {
		r.StrokeLine(dst, cx, cy, x+w, cy, thickness, wallColor)
	}
	if arms.Has(entity.ArmSouth) {
		r.StrokeLine(dst, cx, cy, cx, y+h, thickness, wallColor)
	}
	if arms.Has(entity.ArmWest) {
		r.StrokeLine(dst, cx, cy, x, cy, thickness, wallColor)
	}
}
