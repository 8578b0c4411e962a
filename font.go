package swatch

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontRole identifies which text decoration a face is requested for.
type FontRole int

const (
	// RoleTitle is the face used by the Title filter.
	RoleTitle FontRole = iota

	// RoleName is the face used by the Name filter.
	RoleName

	// RoleLabel is the face used by the Label filter.
	RoleLabel
)

func (r FontRole) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleName:
		return "name"
	case RoleLabel:
		return "label"
	}
	return "unknown"
}

// FontResolver maps a logical text role and size to a drawable face.
// The core only requests sizes; font data ownership and any caching
// belong to the resolver.
//
// A FontResolver must be safe for concurrent use when Swatch values
// sharing it render concurrently.
type FontResolver interface {
	Resolve(role FontRole, size float64) (text.Face, error)
}

// GoFontResolver serves faces from the embedded Go fonts: Go Bold for
// titles, Go Regular for names and labels. Font data is parsed once per
// font and cached for the lifetime of the resolver; no file I/O occurs.
//
// The zero value is ready to use.
type GoFontResolver struct {
	boldOnce sync.Once
	bold     *text.FontSource
	boldErr  error

	regularOnce sync.Once
	regular     *text.FontSource
	regularErr  error
}

// Resolve implements FontResolver.
func (r *GoFontResolver) Resolve(role FontRole, size float64) (text.Face, error) {
	if role == RoleTitle {
		r.boldOnce.Do(func() {
			r.bold, r.boldErr = text.NewFontSource(gobold.TTF)
		})
		if r.boldErr != nil {
			return nil, r.boldErr
		}
		return r.bold.Face(size), nil
	}
	r.regularOnce.Do(func() {
		r.regular, r.regularErr = text.NewFontSource(goregular.TTF)
	})
	if r.regularErr != nil {
		return nil, r.regularErr
	}
	return r.regular.Face(size), nil
}

// defaultFonts is the process-wide resolver used when New is not given
// one. The cache lives behind the resolver, not in the render core.
var defaultFonts = &GoFontResolver{}
