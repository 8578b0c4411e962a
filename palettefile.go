package swatch

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ParseColorsFile reads a palette definition, one color per line, and
// returns the color tokens and any names found, in file order.
//
// Each line holds one color with an optional name prefix:
//
//	f2f6f8
//	91, 128, 114
//	orange: ef5350
//	magenta = 252 158 182
//
// The color body is anything ParseColor accepts except the '#'-prefixed
// hex form, since '#' starts an inline comment. Blank lines are skipped.
//
// Names are not validated here; New enforces the all-or-nothing rule
// against the color count.
func ParseColorsFile(r io.Reader) (colors, names []string, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, "=", ":")
		if name, rest, ok := strings.Cut(line, ":"); ok {
			names = append(names, strings.TrimSpace(name))
			line = strings.TrimSpace(rest)
		}
		colors = append(colors, line)
	}
	return colors, names, sc.Err()
}

// ReadColorsFile reads a palette definition from a file.
// See ParseColorsFile for the format.
func ReadColorsFile(path string) (colors, names []string, err error) {
	f, err := os.Open(path) // #nosec G304 -- palette path is provided by the user
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ParseColorsFile(f)
}
