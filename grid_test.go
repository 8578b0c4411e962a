package swatch

import "testing"

func TestGrid_SingleColor(t *testing.T) {
	rects := Grid(512, 256, 1, 1)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	want := Rect{0, 0, 512, 256}
	if rects[0] != want {
		t.Errorf("got %v, want %v", rects[0], want)
	}
}

func TestGrid_FourColorsOneRow(t *testing.T) {
	rects := Grid(512, 256, 4, 1)
	if len(rects) != 4 {
		t.Fatalf("got %d rects, want 4", len(rects))
	}
	widths := 0
	for _, r := range rects {
		if r.H != 256 || r.Y != 0 {
			t.Errorf("cell %v should span full canvas height", r)
		}
		widths += r.W
	}
	if widths != 512 {
		t.Errorf("widths sum to %d, want 512", widths)
	}
}

func TestGrid_CeilingDistribution(t *testing.T) {
	tests := []struct {
		name        string
		count, rows int
		perRow      []int
	}{
		{"even split", 4, 2, []int{2, 2}},
		{"odd count", 5, 2, []int{3, 2}},
		{"short last row", 7, 3, []int{3, 3, 1}},
		{"rows collapse", 4, 3, []int{2, 2}},
		{"more rows than colors", 2, 5, []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := Grid(600, 300, tt.count, tt.rows)
			if len(rects) != tt.count {
				t.Fatalf("got %d rects, want %d", len(rects), tt.count)
			}
			// Group cells by Y to count items per row.
			perRow := []int{}
			lastY := -1
			for _, r := range rects {
				if r.Y != lastY {
					perRow = append(perRow, 0)
					lastY = r.Y
				}
				perRow[len(perRow)-1]++
			}
			if len(perRow) != len(tt.perRow) {
				t.Fatalf("got %d rows %v, want %v", len(perRow), perRow, tt.perRow)
			}
			for i := range perRow {
				if perRow[i] != tt.perRow[i] {
					t.Errorf("row %d has %d items, want %d", i, perRow[i], tt.perRow[i])
				}
			}
		})
	}
}

// TestGrid_Tiling checks the core invariant: for every color count and
// row count, cells are non-overlapping, lie within the canvas, and
// cover it completely.
func TestGrid_Tiling(t *testing.T) {
	const width, height = 317, 211 // awkward sizes to exercise leftovers
	for count := 1; count <= 12; count++ {
		for rows := 1; rows <= count; rows++ {
			rects := Grid(width, height, count, rows)
			if len(rects) != count {
				t.Fatalf("Grid(%d, %d): got %d rects", count, rows, len(rects))
			}
			area := 0
			for i, r := range rects {
				if r.W <= 0 || r.H <= 0 {
					t.Fatalf("Grid(%d, %d): empty cell %v", count, rows, r)
				}
				if r.X < 0 || r.Y < 0 || r.X+r.W > width || r.Y+r.H > height {
					t.Fatalf("Grid(%d, %d): cell %v outside canvas", count, rows, r)
				}
				area += r.W * r.H
				for j := 0; j < i; j++ {
					if overlaps(r, rects[j]) {
						t.Fatalf("Grid(%d, %d): cells %v and %v overlap",
							count, rows, r, rects[j])
					}
				}
			}
			if area != width*height {
				t.Errorf("Grid(%d, %d): cells cover %d px, want %d",
					count, rows, area, width*height)
			}
		}
	}
}

func TestGrid_Empty(t *testing.T) {
	if rects := Grid(100, 100, 0, 1); rects != nil {
		t.Errorf("Grid with zero count = %v, want nil", rects)
	}
	if rects := Grid(0, 100, 4, 1); rects != nil {
		t.Errorf("Grid with zero width = %v, want nil", rects)
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
