package swatch

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA color. It is immutable once parsed; two Colors
// are equal when all four channels are equal. The alpha channel defaults
// to 255 and only matters for shadow compositing.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements the color.Color interface. The returned channels are
// alpha-premultiplied in the range [0, 65535].
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// Hex returns the color in "#rrggbb" form. This is the text the Label
// filter draws inside a cell.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceptual brightness of the color in [0, 1]
// using the standard RGB luma weights.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// contrast returns black for light fills and white for dark fills, with
// the threshold at the midpoint of the luminance range.
func (c Color) contrast() Color {
	if c.Luminance() > 0.5 {
		return Black
	}
	return White
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// ParseColor parses a color token into a fully resolved Color. Three
// forms are recognized, tried in order:
//
//  1. hex: 3 or 6 digits with an optional leading '#' ("fff", "#1e90ff")
//  2. decimal RGB tuple: "r,g,b" or "r g b", optionally with alpha
//  3. a named color from the SVG 1.1 palette ("orange", "rebeccapurple")
//
// Matching is case-insensitive. Tokens matching none of the forms fail
// with ErrInvalidColor.
func ParseColor(token string) (Color, error) {
	token = strings.TrimSpace(token)
	for _, parse := range []func(string) (Color, bool){
		parseHexColor,
		parseTupleColor,
		parseNamedColor,
	} {
		if c, ok := parse(token); ok {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// parseHexColor accepts "rgb" and "rrggbb", with or without a leading '#'.
func parseHexColor(token string) (Color, bool) {
	token = strings.TrimPrefix(token, "#")
	switch len(token) {
	case 3:
		var b strings.Builder
		for _, r := range token {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		token = b.String()
	case 6:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, true
}

// parseTupleColor accepts "r,g,b" or "r g b" with decimal channels in
// [0, 255] and an optional fourth alpha channel.
func parseTupleColor(token string) (Color, bool) {
	fields := strings.FieldsFunc(token, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) != 3 && len(fields) != 4 {
		return Color{}, false
	}
	var ch [4]uint8
	ch[3] = 255
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// parseNamedColor consults the SVG 1.1 color name table.
func parseNamedColor(token string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(token)]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}
