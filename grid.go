package swatch

// Rect is an integer rectangle in pixel coordinates, origin at the
// top-left of the canvas.
type Rect struct {
	X, Y, W, H int
}

// Inset returns the rectangle shrunk by n pixels on all sides.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Grid computes the bounding rectangle for every cell of a swatch sheet.
// Cells are emitted in row-major, left-to-right order matching the input
// color order.
//
// Items are distributed across rows by ceiling division: every row holds
// ceil(count/rows) items except the last, which holds the remainder.
// Rows that would end up empty are dropped, so the effective row count
// is min(rows, count). Row height and column width use integer division;
// the last row and the last column of each row absorb the leftover
// pixels so the cells tile the canvas exactly, with no gaps and no
// overlap.
func Grid(width, height, count, rows int) []Rect {
	if count <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	if rows < 1 {
		rows = 1
	}
	if rows > count {
		rows = count
	}
	perRow := (count + rows - 1) / rows
	rows = (count + perRow - 1) / perRow

	rowHeight := height / rows
	rects := make([]Rect, 0, count)
	for row := 0; row < rows; row++ {
		items := perRow
		if row == rows-1 {
			items = count - perRow*(rows-1)
		}
		y := row * rowHeight
		h := rowHeight
		if row == rows-1 {
			h = height - y
		}
		colWidth := width / items
		for col := 0; col < items; col++ {
			x := col * colWidth
			w := colWidth
			if col == items-1 {
				w = width - x
			}
			rects = append(rects, Rect{X: x, Y: y, W: w, H: h})
		}
	}
	return rects
}
