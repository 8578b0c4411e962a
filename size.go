package swatch

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize parses a "WxH" size token, e.g. "512x256". The separator is
// case-insensitive. Malformed tokens and non-positive dimensions fail
// with ErrInvalidSizeFormat.
func ParseSize(token string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(token)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, token)
	}
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, token)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, token)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, token)
	}
	return width, height, nil
}
