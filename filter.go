package swatch

import "fmt"

// filterKind discriminates the closed set of filter variants.
type filterKind int

const (
	filterShadow filterKind = iota
	filterLabel
	filterName
	filterBorder
	filterTitle
)

func (k filterKind) String() string {
	switch k {
	case filterShadow:
		return "shadow"
	case filterLabel:
		return "label"
	case filterName:
		return "name"
	case filterBorder:
		return "border"
	case filterTitle:
		return "title"
	}
	return "unknown"
}

// NamePosition selects the anchor point for the Name filter.
type NamePosition int

const (
	// NameTopLeft anchors the name near the top-left corner of the cell.
	NameTopLeft NamePosition = iota

	// NameCenter centers the name in the cell.
	NameCenter
)

// Default font sizes per text role, used when a filter is built with
// font size 0.
const (
	DefaultTitleFontSize = 24
	DefaultNameFontSize  = 18
	DefaultLabelFontSize = 16
)

// Filter is one step of the rendering pipeline: a stateless
// configuration value applied over the drawing surface during Render.
//
// Border and Title are geometry-affecting: they shrink the area
// available to the swatch grid and are always resolved before the grid
// is computed. Shadow, Label and Name are decorations drawn per cell in
// the order the caller supplies them.
type Filter struct {
	kind     filterKind
	size     int
	opacity  float64
	color    Color
	text     string
	position NamePosition
	fontSize float64
}

// geometryAffecting reports whether the filter changes the drawable
// area available to the grid.
func (f Filter) geometryAffecting() bool {
	return f.kind == filterBorder || f.kind == filterTitle
}

// Shadow returns a filter that draws a soft-edged dark rectangle offset
// down-right by size pixels beneath each cell fill. Opacity must be in
// [0, 1]; an opacity of 0 is valid and draws nothing.
func Shadow(size int, opacity float64) (Filter, error) {
	if size <= 0 {
		return Filter{}, fmt.Errorf("%w: shadow size %d", ErrInvalidParameter, size)
	}
	if opacity < 0 || opacity > 1 {
		return Filter{}, fmt.Errorf("%w: shadow opacity %v", ErrInvalidParameter, opacity)
	}
	return Filter{kind: filterShadow, size: size, opacity: opacity}, nil
}

// Label returns a filter that draws each cell's hex value inside the
// cell. The text color is chosen by the luminance of the cell fill:
// light text on dark fills, dark text on light fills. A fontSize of 0
// selects DefaultLabelFontSize.
func Label(fontSize float64) (Filter, error) {
	if fontSize < 0 {
		return Filter{}, fmt.Errorf("%w: label font size %v", ErrInvalidParameter, fontSize)
	}
	return Filter{kind: filterLabel, fontSize: fontSize}, nil
}

// Name returns a filter that draws each cell's assigned name at the
// given anchor. A fontSize of 0 selects DefaultNameFontSize. The names
// themselves are supplied to New via WithNames.
func Name(position NamePosition, fontSize float64) (Filter, error) {
	if position != NameTopLeft && position != NameCenter {
		return Filter{}, fmt.Errorf("%w: name position %d", ErrInvalidParameter, position)
	}
	if fontSize < 0 {
		return Filter{}, fmt.Errorf("%w: name font size %v", ErrInvalidParameter, fontSize)
	}
	return Filter{kind: filterName, position: position, fontSize: fontSize}, nil
}

// Border returns a geometry-affecting filter that draws a frame of size
// pixels around the canvas perimeter and shrinks the drawable area by
// size on all sides for everything rendered after it.
func Border(size int, c Color) (Filter, error) {
	if size <= 0 {
		return Filter{}, fmt.Errorf("%w: border size %d", ErrInvalidParameter, size)
	}
	return Filter{kind: filterBorder, size: size, color: c}, nil
}

// Title returns a geometry-affecting filter that reserves a band at the
// top of the (possibly bordered) canvas, draws text centered in it, and
// leaves the remaining vertical space to the grid. A fontSize of 0
// selects DefaultTitleFontSize.
func Title(text string, c Color, fontSize float64) (Filter, error) {
	if text == "" {
		return Filter{}, fmt.Errorf("%w: empty title", ErrInvalidParameter)
	}
	if fontSize < 0 {
		return Filter{}, fmt.Errorf("%w: title font size %v", ErrInvalidParameter, fontSize)
	}
	return Filter{kind: filterTitle, text: text, color: c, fontSize: fontSize}, nil
}
