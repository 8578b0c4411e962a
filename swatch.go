package swatch

import (
	"fmt"
	"image"

	"github.com/gogpu/gg/text"
)

// Padding constants, in pixels.
const (
	labelPad = 5 // inset for label and name text inside a cell
	titlePad = 6 // vertical padding above and below the title text
)

// Cell is one grid slot: the owning color, its bounding rectangle, and
// its optional name and hex label. Cells are generated fresh per render
// pass and do not outlive it.
type Cell struct {
	Color Color
	Rect  Rect
	Name  string
	Label string
}

// Swatch binds a canvas size to a list of colors and exposes Render.
// A Swatch is immutable after New; the same Swatch rendered twice with
// the same filters produces pixel-identical output.
type Swatch struct {
	width, height int
	colors        []Color
	names         []string
	rows          int
	fonts         FontResolver
	canvas        CanvasFunc
}

// New validates and builds a Swatch. Colors are parsed eagerly, so an
// unparseable token fails here with ErrInvalidColor, never mid-render.
//
// New fails with ErrInvalidSpec on an empty color list or non-positive
// dimensions, and with ErrMissingName when names are supplied but their
// count does not match the color count.
func New(width, height int, colors []string, opts ...Option) (*Swatch, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidSpec, width, height)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%w: color list is empty", ErrInvalidSpec)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rows < 1 {
		return nil, fmt.Errorf("%w: row count %d", ErrInvalidParameter, o.rows)
	}
	if len(o.names) > 0 && len(o.names) != len(colors) {
		return nil, fmt.Errorf("%w: %d names for %d colors",
			ErrMissingName, len(o.names), len(colors))
	}
	parsed := make([]Color, len(colors))
	for i, token := range colors {
		c, err := ParseColor(token)
		if err != nil {
			return nil, err
		}
		parsed[i] = c
	}
	return &Swatch{
		width:  width,
		height: height,
		colors: parsed,
		names:  o.names,
		rows:   o.rows,
		fonts:  o.fonts,
		canvas: o.canvas,
	}, nil
}

// renderFilter is a Filter paired with its resolved font face. Faces
// are resolved up front so a font failure aborts the render before any
// pixel is written.
type renderFilter struct {
	Filter
	face text.Face
}

// Render allocates a fresh canvas, draws the swatch grid, applies the
// filters, and returns the finished image.
//
// Border and Title filters are resolved first, in caller order within
// each group and borders before titles, so the grid is computed against
// the final drawable rectangle. Shadow, Label and Name are then applied
// to every cell in caller order.
func (s *Swatch) Render(filters ...Filter) (image.Image, error) {
	prepared, err := s.prepare(filters)
	if err != nil {
		return nil, err
	}

	canvas := s.canvas(s.width, s.height)
	drawable := Rect{X: 0, Y: 0, W: s.width, H: s.height}
	for _, f := range prepared {
		if f.kind == filterBorder {
			drawFrame(canvas, drawable, f.size, f.color)
			drawable = drawable.Inset(f.size)
		}
	}
	for _, f := range prepared {
		if f.kind == filterTitle {
			drawable = drawTitle(canvas, drawable, f)
		}
	}
	if drawable.W <= 0 || drawable.H <= 0 {
		return nil, fmt.Errorf("%w: no drawable area left after insets", ErrInvalidSpec)
	}

	cells := s.cells(drawable)
	Logger().Debug("grid computed",
		"cells", len(cells), "rows", s.rows,
		"x", drawable.X, "y", drawable.Y, "w", drawable.W, "h", drawable.H)

	for _, cell := range cells {
		canvas.FillRect(cell.Rect, cell.Color)
		for _, f := range prepared {
			if !f.geometryAffecting() {
				decorate(canvas, cell, f)
			}
		}
	}
	return canvas.Image(), nil
}

// prepare resolves the font face for every filter that draws text.
func (s *Swatch) prepare(filters []Filter) ([]renderFilter, error) {
	prepared := make([]renderFilter, len(filters))
	for i, f := range filters {
		pf := renderFilter{Filter: f}
		var err error
		switch f.kind {
		case filterTitle:
			pf.face, err = s.fonts.Resolve(RoleTitle, f.fontSizeOr(DefaultTitleFontSize))
		case filterName:
			pf.face, err = s.fonts.Resolve(RoleName, f.fontSizeOr(DefaultNameFontSize))
		case filterLabel:
			pf.face, err = s.fonts.Resolve(RoleLabel, f.fontSizeOr(DefaultLabelFontSize))
		}
		if err != nil {
			return nil, err
		}
		prepared[i] = pf
	}
	return prepared, nil
}

// fontSizeOr returns the filter's font size, or def when unset.
func (f Filter) fontSizeOr(def float64) float64 {
	if f.fontSize > 0 {
		return f.fontSize
	}
	return def
}

// cells lays out one cell per color inside the drawable rectangle.
func (s *Swatch) cells(drawable Rect) []Cell {
	rects := Grid(drawable.W, drawable.H, len(s.colors), s.rows)
	cells := make([]Cell, len(rects))
	for i, r := range rects {
		r.X += drawable.X
		r.Y += drawable.Y
		cells[i] = Cell{
			Color: s.colors[i],
			Rect:  r,
			Label: s.colors[i].Hex(),
		}
		if len(s.names) > 0 {
			cells[i].Name = s.names[i]
		}
	}
	return cells
}

// drawFrame fills a frame of the given thickness along the perimeter
// of r.
func drawFrame(c Canvas, r Rect, size int, col Color) {
	c.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: size}, col)
	c.FillRect(Rect{X: r.X, Y: r.Y + r.H - size, W: r.W, H: size}, col)
	c.FillRect(Rect{X: r.X, Y: r.Y + size, W: size, H: r.H - 2*size}, col)
	c.FillRect(Rect{X: r.X + r.W - size, Y: r.Y + size, W: size, H: r.H - 2*size}, col)
}

// drawTitle draws the title centered in a band at the top of r and
// returns r shrunk by the band height.
func drawTitle(c Canvas, r Rect, f renderFilter) Rect {
	band := int(f.fontSizeOr(DefaultTitleFontSize)) + 2*titlePad
	c.DrawTextAnchored(f.text,
		float64(r.X)+float64(r.W)/2,
		float64(r.Y)+float64(band)/2,
		0.5, 0.5, f.color, f.face)
	r.Y += band
	r.H -= band
	return r
}

// decorate applies one decoration filter to one cell.
func decorate(c Canvas, cell Cell, f renderFilter) {
	switch f.kind {
	case filterShadow:
		drawShadow(c, cell.Rect, f.size, f.opacity)
	case filterLabel:
		c.DrawText(cell.Label,
			float64(cell.Rect.X+labelPad),
			float64(cell.Rect.Y+cell.Rect.H-labelPad),
			cell.Color.contrast(), f.face)
	case filterName:
		if cell.Name == "" {
			return
		}
		col := cell.Color.contrast()
		if f.position == NameCenter {
			c.DrawTextAnchored(cell.Name,
				float64(cell.Rect.X)+float64(cell.Rect.W)/2,
				float64(cell.Rect.Y)+float64(cell.Rect.H)/2,
				0.5, 0.5, col, f.face)
			return
		}
		c.DrawTextAnchored(cell.Name,
			float64(cell.Rect.X+2*labelPad),
			float64(cell.Rect.Y+labelPad),
			0, 0, col, f.face)
	}
}

// drawShadow composites a dark rectangle offset down-right by size
// pixels inside the cell, with a short alpha ramp on its top and left
// edges so the shadow reads as soft rather than a hard band. An opacity
// of 0 draws nothing.
func drawShadow(c Canvas, cell Rect, size int, opacity float64) {
	if opacity == 0 {
		return
	}
	x := cell.X + size
	y := cell.Y + size
	w := cell.W - size
	h := cell.H - size
	if w <= 0 || h <= 0 {
		return
	}
	feather := size
	if feather > 4 {
		feather = 4
	}
	if feather >= w || feather >= h {
		feather = 0
	}
	for i := 0; i < feather; i++ {
		a := opacity * float64(i+1) / float64(feather+1)
		c.FillRectAlpha(Rect{X: x + i, Y: y + i, W: w - i, H: 1}, Black, a)
		c.FillRectAlpha(Rect{X: x + i, Y: y + i + 1, W: 1, H: h - i - 1}, Black, a)
	}
	c.FillRectAlpha(Rect{
		X: x + feather,
		Y: y + feather,
		W: w - feather,
		H: h - feather,
	}, Black, opacity)
}
