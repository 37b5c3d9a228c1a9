// Package terminal plays a session in a text terminal using tcell. Each maze
// cell is two columns wide so the maze keeps roughly square proportions.
package terminal

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"chosenoffset.com/chomper/internal/core/geom"
	"chosenoffset.com/chomper/internal/entity"
	"chosenoffset.com/chomper/internal/game"
	"chosenoffset.com/chomper/internal/input"
	"chosenoffset.com/chomper/internal/ui/hud"
)

const (
	// cellColumns is the number of terminal columns per maze cell.
	cellColumns = 2
	// mazeTop is the first terminal row of the maze; row 0 holds the HUD.
	mazeTop = 1
)

// canvas is the part of tcell.Screen the drawing code needs.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	wallStyle        = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	collectibleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	powerItemStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	avatarStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	scaredStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	hudStyle         = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	hintStyle        = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var adversaryColors = map[string]tcell.Color{
	"red":    tcell.ColorRed,
	"pink":   tcell.ColorPink,
	"blue":   tcell.ColorAqua,
	"cyan":   tcell.ColorAqua,
	"orange": tcell.ColorOrange,
	"green":  tcell.ColorGreen,
	"purple": tcell.ColorPurple,
}

// Frontend runs a session against a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	Session *game.Session
	HUD     *hud.HUD
	tps     int
	log     zerolog.Logger
}

// New creates a frontend. The screen must already be initialised.
// Terminals only report key presses, so the session should use sticky keys.
func New(screen tcell.Screen, session *game.Session, tps int, logger zerolog.Logger) *Frontend {
	w, h := Size(session)
	f := &Frontend{
		screen:  screen,
		Session: session,
		HUD:     hud.New(nil, w, h),
		tps:     tps,
		log:     logger,
	}
	game.BindHUD(session, f.HUD)
	return f
}

// Size returns the terminal columns and rows needed to show session.
func Size(session *game.Session) (width, height int) {
	return session.Maze.Width() * cellColumns, session.Maze.Height() + mazeTop + 2
}

// Run steps and draws the session on a ticker until the player quits or ctx
// is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(f.tps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go f.forwardEvents(done, eventChan)

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok || !f.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			f.Session.Step()
			f.Draw()
		}
	}
}

// forwardEvents feeds screen events into out until the screen is finalised or
// done is closed.
func (f *Frontend) forwardEvents(done <-chan struct{}, out chan<- tcell.Event) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			// Screen finalised.
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies a terminal event. It returns false when the player quits.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q') {
		f.log.Info().Msg("quit requested")
		return false
	}

	if !f.Session.Running() {
		if key == tcell.KeyEnter || (key == tcell.KeyRune && (r == 'r' || r == 'R')) {
			f.Restart()
		}
		return true
	}

	if k := directionKey(key, r); k != input.KeyNone {
		f.Session.Input.Press(k)
	}
	return true
}

// Restart replaces the session with a fresh one on the same maze.
func (f *Frontend) Restart() {
	f.Session = f.Session.Restart()
	f.HUD.Reset()
}

// directionKey maps a terminal key to a direction key.
func directionKey(key tcell.Key, r rune) input.Key {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.KeyW
		case 'a', 'A':
			return input.KeyA
		case 's', 'S':
			return input.KeyS
		case 'd', 'D':
			return input.KeyD
		}
	}
	return input.KeyNone
}

// Draw renders the current frame and shows it.
func (f *Frontend) Draw() {
	f.screen.Clear()
	drawFrame(f.screen, f.Session, f.HUD)
	f.screen.Show()
}

func drawFrame(c canvas, s *game.Session, h *hud.HUD) {
	drawText(c, 0, 0, h.ScoreText(), hudStyle)

	cellSize := s.Maze.CellSize
	for _, sp := range s.Sprites() {
		col, row := cellOf(sp.Pos, cellSize)
		x, y := col*cellColumns, row+mazeTop

		switch sp.Kind {
		case entity.SpriteObstacle:
			c.SetContent(x, y, wallGlyph(sp.Tile), nil, wallStyle)
			fill := ' '
			if sp.Tile.Arms().Has(entity.ArmEast) {
				fill = '─'
			}
			c.SetContent(x+1, y, fill, nil, wallStyle)
		case entity.SpriteCollectible:
			c.SetContent(x, y, '·', nil, collectibleStyle)
		case entity.SpritePowerItem:
			c.SetContent(x, y, '●', nil, powerItemStyle)
		case entity.SpriteAvatar:
			c.SetContent(x, y, avatarGlyph(sp), nil, avatarStyle)
		case entity.SpriteAdversary:
			style := scaredStyle
			glyph := 'w'
			if !sp.Scared {
				glyph = 'M'
				style = tcell.StyleDefault.Foreground(adversaryColor(sp.Color)).Bold(true)
			}
			c.SetContent(x, y, glyph, nil, style)
		}
	}

	if banner := h.Banner(); banner != "" {
		width := s.Maze.Width() * cellColumns
		y := mazeTop + s.Maze.Height()/2
		drawText(c, centred(width, banner), y, banner, bannerStyle)
		if hint := h.Hint(); hint != "" {
			drawText(c, centred(width, hint), mazeTop+s.Maze.Height(), hint, hintStyle)
		}
	}
}

// cellOf returns the maze cell containing a point. Obstacles are anchored at
// their corner, which is inside their own cell.
func cellOf(pos geom.Vec, cellSize float64) (int, int) {
	return int(math.Floor(pos.X / cellSize)), int(math.Floor(pos.Y / cellSize))
}

// centred returns the column that centres text in width, never left of 0.
func centred(width int, text string) int {
	return max(0, (width-len([]rune(text)))/2)
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func adversaryColor(name string) tcell.Color {
	if c, ok := adversaryColors[name]; ok {
		return c
	}
	return tcell.ColorWhite
}

// avatarGlyph points the avatar in its facing direction, or shows it closed
// when the mouth is nearly shut.
func avatarGlyph(sp entity.Sprite) rune {
	if sp.Mouth < 0.25 {
		return 'O'
	}
	switch {
	case math.Abs(sp.Rotation-math.Pi) < 0.1:
		return '<'
	case math.Abs(sp.Rotation-math.Pi/2) < 0.1:
		return 'v'
	case math.Abs(sp.Rotation-1.5*math.Pi) < 0.1:
		return '^'
	default:
		return '>'
	}
}

// wallGlyph returns the box-drawing rune joining the tile's arms.
func wallGlyph(kind entity.TileKind) rune {
	switch kind.Arms() {
	case entity.ArmEast | entity.ArmWest:
		return '─'
	case entity.ArmNorth | entity.ArmSouth:
		return '│'
	case entity.ArmEast | entity.ArmSouth:
		return '┌'
	case entity.ArmWest | entity.ArmSouth:
		return '┐'
	case entity.ArmWest | entity.ArmNorth:
		return '┘'
	case entity.ArmEast | entity.ArmNorth:
		return '└'
	case entity.ArmEast:
		return '╶'
	case entity.ArmWest:
		return '╴'
	case entity.ArmNorth:
		return '╵'
	case entity.ArmSouth:
		return '╷'
	case entity.ArmNorth | entity.ArmEast | entity.ArmSouth | entity.ArmWest:
		return '┼'
	case entity.ArmEast | entity.ArmWest | entity.ArmNorth:
		return '┴'
	case entity.ArmEast | entity.ArmWest | entity.ArmSouth:
		return '┬'
	case entity.ArmNorth | entity.ArmSouth | entity.ArmEast:
		return '├'
	case entity.ArmNorth | entity.ArmSouth | entity.ArmWest:
		return '┤'
	default:
		return '■'
	}
}
