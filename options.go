package swatch

// Option configures a Swatch during creation.
//
// Example:
//
//	// Two rows, one name per color:
//	s, err := swatch.New(512, 256, colors,
//	    swatch.WithRows(2),
//	    swatch.WithNames("ink", "paper", "accent", "muted"))
type Option func(*options)

// options holds optional configuration collected by New.
type options struct {
	rows   int
	names  []string
	fonts  FontResolver
	canvas CanvasFunc
}

// defaultOptions returns the default swatch options.
func defaultOptions() options {
	return options{
		rows:   1,
		fonts:  defaultFonts,
		canvas: NewCanvas,
	}
}

// WithRows splits the swatches into n rows. The default is 1. Items are
// distributed by ceiling division; the last row may hold fewer items.
func WithRows(n int) Option {
	return func(o *options) {
		o.rows = n
	}
}

// WithNames assigns a name to each color, in color order. Names are
// all-or-nothing: when supplied, their count must match the color count
// or New fails with ErrMissingName. The Name filter draws them.
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = names
	}
}

// WithFontResolver sets the resolver consulted for title, name and
// label faces. The default serves the embedded Go fonts.
func WithFontResolver(r FontResolver) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
		}
	}
}

// WithCanvasFunc sets the allocator for the drawing surface. Use this
// for dependency injection of a custom or recording canvas.
func WithCanvasFunc(fn CanvasFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.canvas = fn
		}
	}
}
