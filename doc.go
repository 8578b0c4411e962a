// Package swatch renders color swatch sheets: raster images showing a
// grid of colors, optionally decorated with drop shadows, hex-value
// labels, per-swatch names, a border frame, and a title bar.
//
// # Quick Start
//
//	import swatch "github.com/stillwwater/swatchmaker"
//
//	s, err := swatch.New(512, 256, []string{"f2f6f8", "1e90ff", "222"})
//	if err != nil {
//	    return err
//	}
//
//	label, _ := swatch.Label(0) // 0 selects the default font size
//	img, err := s.Render(label)
//	if err != nil {
//	    return err
//	}
//
// # Pipeline
//
// A Swatch binds a canvas size to a list of colors. Render computes a
// uniform row/column grid once, fills one cell per color, then applies
// each Filter in sequence over the shared drawing surface.
//
// Filters come in two groups. Border and Title change the drawable area
// and are always resolved before the grid is computed, so swatch cells
// land strictly inside the frame and below the title band regardless of
// the order the caller lists them in. Shadow, Label and Name decorate
// cells whose geometry is already fixed; their relative order is the
// caller's.
//
// # Collaborators
//
// Drawing is delegated to the Canvas interface, implemented by default
// on top of github.com/gogpu/gg. Text faces come from a FontResolver;
// the default resolver serves the embedded Go fonts and never touches
// the filesystem. Both can be swapped via options on New.
//
// # Concurrency
//
// A render pass owns its canvas exclusively. Concurrent Render calls on
// separate Swatch values are safe without locking.
package swatch
