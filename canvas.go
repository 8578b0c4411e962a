package swatch

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface a render pass draws onto. One render
// pass owns its Canvas exclusively; filters receive it by reference and
// mutate it in place.
//
// The default implementation wraps a gg.Context. Inject a different one
// with WithCanvasFunc, e.g. a recording canvas in tests.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// FillRect fills r with an opaque color.
	FillRect(r Rect, c Color)

	// FillRectAlpha composites c over r at the given alpha in [0, 1].
	FillRectAlpha(r Rect, c Color, alpha float64)

	// DrawText draws s with its baseline at (x, y).
	DrawText(s string, x, y float64, c Color, face text.Face)

	// DrawTextAnchored draws s so that the anchor point (ax, ay) in
	// [0, 1] lands on (x, y). (0.5, 0.5) centers the text on (x, y).
	DrawTextAnchored(s string, x, y, ax, ay float64, c Color, face text.Face)

	// Image returns the rendered surface.
	Image() image.Image
}

// CanvasFunc allocates the drawing surface for one render pass.
type CanvasFunc func(width, height int) Canvas

// NewCanvas allocates the default gg-backed canvas.
func NewCanvas(width, height int) Canvas {
	return &ggCanvas{dc: gg.NewContext(width, height)}
}

// ggCanvas adapts a gg.Context to the Canvas interface.
type ggCanvas struct {
	dc *gg.Context
}

var _ Canvas = (*ggCanvas)(nil)

func (c *ggCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *ggCanvas) FillRect(r Rect, col Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.dc.Fill()
}

func (c *ggCanvas) FillRectAlpha(r Rect, col Color, alpha float64) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, alpha)
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	c.dc.Fill()
}

func (c *ggCanvas) DrawText(s string, x, y float64, col Color, face text.Face) {
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

func (c *ggCanvas) DrawTextAnchored(s string, x, y, ax, ay float64, col Color, face text.Face) {
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

func (c *ggCanvas) Image() image.Image {
	return c.dc.Image()
}
