package swatch

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		token string
		w, h  int
	}{
		{"512x256", 512, 256},
		{"512X256", 512, 256},
		{" 64x64 ", 64, 64},
		{"1x1", 1, 1},
	}
	for _, tt := range tests {
		w, h, err := ParseSize(tt.token)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", tt.token, err)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.token, w, h, tt.w, tt.h)
		}
	}
}

func TestParseSize_Invalid(t *testing.T) {
	tokens := []string{
		"",
		"512",
		"512x",
		"x256",
		"512y256",
		"0x256",
		"512x-1",
		"512x256x3",
		"wxh",
	}
	for _, token := range tokens {
		if _, _, err := ParseSize(token); !errors.Is(err, ErrInvalidSizeFormat) {
			t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSizeFormat", token, err)
		}
	}
}
