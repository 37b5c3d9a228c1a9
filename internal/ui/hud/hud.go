// Package hud provides the heads-up display strip above the maze: the running
// score and the end-of-game banner.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/chomper/internal/render"
)

// Height is the height of the HUD strip in screen pixels.
const Height = 40

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowScore  bool
	ShowHint   bool    // Show the restart/quit hint under the banner
	TextScale  float64 // Scale passed to the renderer
	BannerSize float64 // Banner text scale
	Opacity    float64 // Banner backdrop opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowScore:  true,
		ShowHint:   true,
		TextScale:  1,
		BannerSize: 2,
		Opacity:    0.7,
	}
}

// RestartHint is shown under the banner once the game has ended.
const RestartHint = "Enter: play again   Esc: quit"

var (
	stripColor  = color.RGBA{10, 10, 30, 255}
	scoreColor  = color.RGBA{255, 255, 255, 255}
	bannerColor = color.RGBA{255, 255, 0, 255}
	hintColor   = color.RGBA{180, 180, 180, 255}
)

// HUD manages the heads-up display
type HUD struct {
	config       *HUDConfig
	screenWidth  int
	screenHeight int

	score  int
	banner string
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetScore updates the displayed score.
func (h *HUD) SetScore(score int) {
	h.score = score
}

// SetBanner shows an end-of-game message. An empty string hides it.
func (h *HUD) SetBanner(text string) {
	h.banner = text
}

// Reset clears the score and banner for a new session.
func (h *HUD) Reset() {
	h.score = 0
	h.banner = ""
}

// ScoreText returns the score line.
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("Score: %d", h.score)
}

// Banner returns the current banner, or "" while the game is running.
func (h *HUD) Banner() string {
	return h.banner
}

// Hint returns the line shown under the banner, or "".
func (h *HUD) Hint() string {
	if h.banner == "" || !h.config.ShowHint {
		return ""
	}
	return RestartHint
}

// Draw renders the HUD strip and, when set, the banner centred over the maze.
func (h *HUD) Draw(r render.Renderer, screen render.Image) {
	r.FillRect(screen, 0, 0, float32(h.screenWidth), Height, stripColor)

	if h.config.ShowScore {
		_, th := r.MeasureText(h.ScoreText(), h.config.TextScale)
		h.drawText(r, screen, h.ScoreText(), 10, (Height-th)/2, scoreColor, h.config.TextScale)
	}

	if h.banner == "" {
		return
	}

	bw, bh := r.MeasureText(h.banner, h.config.BannerSize)
	x := (h.screenWidth - bw) / 2
	y := (h.screenHeight - bh) / 2

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x-20), float32(y-10), float32(bw+40), float32(bh+20), color.RGBA{0, 0, 0, alpha})
	h.drawText(r, screen, h.banner, x, y, bannerColor, h.config.BannerSize)

	if hint := h.Hint(); hint != "" {
		hw, _ := r.MeasureText(hint, h.config.TextScale)
		h.drawText(r, screen, hint, (h.screenWidth-hw)/2, y+bh+20, hintColor, h.config.TextScale)
	}
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(r render.Renderer, screen render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.DrawText(screen, text, x+1, y+1, color.Black, scale)
	r.DrawText(screen, text, x, y, clr, scale)
}
