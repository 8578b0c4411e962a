package swatch

import (
	"strings"
	"testing"
)

func TestParseColorsFile(t *testing.T) {
	const input = `
# reef palette
f2f6f8
91, 128, 114

orange: ef5350       # coral, really
magenta = 252 158 182
`
	colors, names, err := ParseColorsFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseColorsFile: %v", err)
	}
	wantColors := []string{"f2f6f8", "91, 128, 114", "ef5350", "252 158 182"}
	if len(colors) != len(wantColors) {
		t.Fatalf("got %d colors %v, want %v", len(colors), colors, wantColors)
	}
	for i := range colors {
		if colors[i] != wantColors[i] {
			t.Errorf("color %d = %q, want %q", i, colors[i], wantColors[i])
		}
	}
	wantNames := []string{"orange", "magenta"}
	if len(names) != len(wantNames) {
		t.Fatalf("got names %v, want %v", names, wantNames)
	}
	for i := range names {
		if names[i] != wantNames[i] {
			t.Errorf("name %d = %q, want %q", i, names[i], wantNames[i])
		}
	}
	// Every token must be parseable by ParseColor.
	for _, token := range colors {
		if _, err := ParseColor(token); err != nil {
			t.Errorf("ParseColor(%q): %v", token, err)
		}
	}
}

func TestParseColorsFile_Empty(t *testing.T) {
	colors, names, err := ParseColorsFile(strings.NewReader("# only a comment\n\n"))
	if err != nil {
		t.Fatalf("ParseColorsFile: %v", err)
	}
	if len(colors) != 0 || len(names) != 0 {
		t.Errorf("got colors %v names %v, want none", colors, names)
	}
}
