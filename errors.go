package swatch

import "errors"

// Sentinel errors for the swatch package. All validation happens at
// construction time (New, filter constructors, ParseColor, ParseSize);
// a failing validation aborts the render before any pixel is written.
var (
	// ErrInvalidColor is returned when a color token matches no known
	// form (hex, decimal RGB tuple, or named color).
	ErrInvalidColor = errors.New("swatch: invalid color")

	// ErrInvalidSpec is returned when a swatch is built from an empty
	// color list or non-positive canvas dimensions.
	ErrInvalidSpec = errors.New("swatch: invalid spec")

	// ErrInvalidParameter is returned when a filter parameter is out of
	// range: an opacity outside [0, 1], a non-positive pixel size, or a
	// negative font size.
	ErrInvalidParameter = errors.New("swatch: invalid parameter")

	// ErrMissingName is returned when names are supplied but their
	// count does not match the color count. Names are all-or-nothing.
	ErrMissingName = errors.New("swatch: name count mismatch")

	// ErrInvalidSizeFormat is returned when a size token does not have
	// the WxH form with positive integer dimensions.
	ErrInvalidSizeFormat = errors.New("swatch: invalid size format")
)
