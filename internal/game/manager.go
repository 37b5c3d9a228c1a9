package game

import (
	"github.com/rs/zerolog"

	"chosenoffset.com/chomper/internal/input"
	"chosenoffset.com/chomper/internal/render"
	"chosenoffset.com/chomper/internal/ui/hud"
)

// keyBindings maps physical keys to the direction keys the resolver understands.
var keyBindings = []struct {
	key render.Key
	dir input.Key
}{
	{render.KeyW, input.KeyW},
	{render.KeyA, input.KeyA},
	{render.KeyS, input.KeyS},
	{render.KeyD, input.KeyD},
	{render.KeyUp, input.KeyUp},
	{render.KeyDown, input.KeyDown},
	{render.KeyLeft, input.KeyLeft},
	{render.KeyRight, input.KeyRight},
}

// Manager drives a session from a render engine. It implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	Renderer     render.Renderer
	InputMgr     render.InputManager
	HUD          *hud.HUD

	mazeWidth  int
	mazeHeight int
	mazeLayer  render.Image
	log        zerolog.Logger
}

// NewManager creates a manager for session. The screen is the maze plus the
// HUD strip above it.
func NewManager(r render.Renderer, inputMgr render.InputManager, session *Session, logger zerolog.Logger) *Manager {
	w, h := session.Maze.PixelSize()

	m := &Manager{
		ScreenWidth:  int(w),
		ScreenHeight: int(h) + hud.Height,
		Session:      session,
		Renderer:     r,
		InputMgr:     inputMgr,
		mazeWidth:    int(w),
		mazeHeight:   int(h),
		log:          logger,
	}
	m.HUD = hud.New(nil, m.ScreenWidth, m.ScreenHeight)
	BindHUD(session, m.HUD)

	return m
}

// BindHUD routes a session's score and outcome notifications to h.
func BindHUD(s *Session, h *hud.HUD) {
	h.SetScore(s.Score)
	s.OnScore = h.SetScore
	s.OnOutcome = func(o Outcome) {
		h.SetBanner(o.Message())
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		m.log.Info().Msg("quit requested")
		return render.ErrQuit
	}

	if !m.Session.Running() {
		if m.InputMgr.IsKeyJustPressed(render.KeyEnter) || m.InputMgr.IsKeyJustPressed(render.KeyR) {
			m.Restart()
		}
		return nil
	}

	for _, b := range keyBindings {
		if m.InputMgr.IsKeyJustPressed(b.key) {
			m.Session.Input.Press(b.dir)
		}
		if m.InputMgr.IsKeyJustReleased(b.key) {
			m.Session.Input.Release(b.dir)
		}
	}

	m.Session.Step()
	return nil
}

// Restart replaces the session with a fresh one on the same maze.
func (m *Manager) Restart() {
	m.Session = m.Session.Restart()
	m.HUD.Reset()
}

// Layout returns the fixed logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
