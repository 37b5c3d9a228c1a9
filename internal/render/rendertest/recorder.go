// Package rendertest provides an in-memory Renderer that records draw calls, for
// testing drawing code without a window.
package rendertest

import (
	"image/color"

	"chosenoffset.com/chomper/internal/render"
)

// Call is one recorded draw operation.
type Call struct {
	Op     string // "circle", "stroke-circle", "rect", "stroke-rect", "line", "sector", "text", "image"
	Target *Image
	X, Y   float32
	W, H   float32
	Text   string
	Color  color.Color
}

// Renderer records every draw call made through it.
type Renderer struct {
	Calls []Call

	// CharWidth and CharHeight size text at scale 1.
	CharWidth, CharHeight int
}

// NewRenderer creates a recorder with an 8x16 text cell.
func NewRenderer() *Renderer {
	return &Renderer{CharWidth: 8, CharHeight: 16}
}

func (r *Renderer) record(dst render.Image, c Call) {
	c.Target, _ = dst.(*Image)
	r.Calls = append(r.Calls, c)
	if c.Target != nil {
		c.Target.Draws++
	}
}

// Ops returns the recorded calls with the given op.
func (r *Renderer) Ops(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Ops("text") {
		out = append(out, c.Text)
	}
	return out
}

// Reset forgets the recorded calls.
func (r *Renderer) Reset() {
	r.Calls = nil
}

// NewImage implements render.Renderer.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

// FillCircle implements render.Renderer.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.record(dst, Call{Op: "circle", X: x, Y: y, W: radius, H: radius, Color: clr})
}

// StrokeCircle implements render.Renderer.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.record(dst, Call{Op: "stroke-circle", X: x, Y: y, W: radius, H: radius, Color: clr})
}

// FillRect implements render.Renderer.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.record(dst, Call{Op: "rect", X: x, Y: y, W: width, H: height, Color: clr})
}

// StrokeRect implements render.Renderer.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.record(dst, Call{Op: "stroke-rect", X: x, Y: y, W: width, H: height, Color: clr})
}

// StrokeLine implements render.Renderer. W and H hold the end point.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.record(dst, Call{Op: "line", X: x0, Y: y0, W: x1, H: y1, Color: clr})
}

// FillSector implements render.Renderer. W holds the radius and H the sweep.
func (r *Renderer) FillSector(dst render.Image, x, y, radius float32, startAngle, endAngle float32, clr color.Color) {
	r.record(dst, Call{Op: "sector", X: x, Y: y, W: radius, H: endAngle - startAngle, Color: clr})
}

// DrawText implements render.Renderer.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.record(dst, Call{Op: "text", X: float32(x), Y: float32(y), Text: text, Color: clr})
}

// MeasureText implements render.Renderer.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(len(text)*r.CharWidth) * scale), int(float64(r.CharHeight) * scale)
}

// Image is an in-memory render target.
type Image struct {
	W, H int

	// Draws counts draw calls targeting this image; Blits counts images drawn onto it.
	Draws int
	Blits []Blit
}

// Blit records one DrawImage call.
type Blit struct {
	Src  *Image
	GeoM *GeoM
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

// Fill implements render.Image.
func (i *Image) Fill(clr color.Color) {}

// DrawImage implements render.Image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	b := Blit{}
	b.Src, _ = src.(*Image)
	if opts != nil {
		b.GeoM, _ = opts.GeoM.(*GeoM)
	}
	i.Blits = append(i.Blits, b)
}

// GeoM is a translation.
type GeoM struct {
	TX, TY float64
}

// NewGeoM returns an identity matrix.
func NewGeoM() *GeoM {
	return &GeoM{}
}

// Translate implements render.GeoM.
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Install points render.NewGeoM at this package's GeoM.
func Install() {
	render.NewGeoM = func() render.GeoM { return NewGeoM() }
}

// InputManager is a scripted keyboard.
type InputManager struct {
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
}

// NewInputManager creates a keyboard with nothing pressed.
func NewInputManager() *InputManager {
	return &InputManager{
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

// Press marks key as pressed this frame.
func (m *InputManager) Press(key render.Key) {
	m.JustPressed[key] = true
}

// Release marks key as released this frame.
func (m *InputManager) Release(key render.Key) {
	m.JustReleased[key] = true
}

// EndFrame clears the per-frame edges.
func (m *InputManager) EndFrame() {
	clear(m.JustPressed)
	clear(m.JustReleased)
}

// IsKeyJustPressed implements render.InputManager.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.JustPressed[key]
}

// IsKeyJustReleased implements render.InputManager.
func (m *InputManager) IsKeyJustReleased(key render.Key) bool {
	return m.JustReleased[key]
}
