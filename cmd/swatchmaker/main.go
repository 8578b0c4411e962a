// Command swatchmaker renders a grid of color swatches to a PNG file.
//
// Usage:
//
//	swatchmaker [flags] WxH [color ...]
//
// Colors are hex ("f2f6f8", "#222"), decimal tuples ("91,128,114"), or
// SVG color names ("orange"). Alternatively -input reads them from a
// palette file, one color per line with an optional "name:" prefix.
//
// Example:
//
//	swatchmaker -label -rows 2 -title "Reef" -title-color 222 \
//	    -o reef.png 640x320 f2f6f8 91,128,114 ef5350 1e90ff
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	swatch "github.com/stillwwater/swatchmaker"
)

func main() {
	var (
		input         = flag.String("input", "", "read colors from a palette file")
		output        = flag.String("o", "swatch.png", "output file")
		rows          = flag.Int("rows", 1, "split swatches into N rows")
		shadowSize    = flag.Int("shadow", 0, "shadow offset in pixels (0 disables)")
		shadowOpacity = flag.Float64("shadow-opacity", 0.4, "shadow opacity in [0, 1]")
		label         = flag.Bool("label", false, "label swatches with their hex value")
		names         = flag.String("names", "", "comma-separated swatch names")
		npos          = flag.Int("npos", 0, "name position (0: top-left, 1: center)")
		title         = flag.String("title", "", "title text")
		titleColor    = flag.String("title-color", "000", "title color")
		borderSize    = flag.Int("border", 0, "border size in pixels (0 disables)")
		borderColor   = flag.String("border-color", "fff", "border color")
		fontTitle     = flag.Float64("font-title", 0, "title font size (0: default)")
		fontName      = flag.Float64("font-name", 0, "name font size (0: default)")
		fontLabel     = flag.Float64("font-label", 0, "label font size (0: default)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	width, height, err := swatch.ParseSize(flag.Arg(0))
	if err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}

	colors := flag.Args()[1:]
	var nameList []string
	if *names != "" {
		nameList = strings.Split(*names, ",")
	}
	if *input != "" {
		if len(colors) > 0 {
			log.Fatal("swatchmaker: use either -input or a color list, not both")
		}
		var fileNames []string
		colors, fileNames, err = swatch.ReadColorsFile(*input)
		if err != nil {
			log.Fatalf("swatchmaker: %v", err)
		}
		if len(nameList) == 0 {
			nameList = fileNames
		}
	}

	opts := []swatch.Option{swatch.WithRows(*rows)}
	if len(nameList) > 0 {
		opts = append(opts, swatch.WithNames(nameList...))
	}
	s, err := swatch.New(width, height, colors, opts...)
	if err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}

	filters, err := buildFilters(filterConfig{
		shadowSize:    *shadowSize,
		shadowOpacity: *shadowOpacity,
		label:         *label,
		named:         len(nameList) > 0,
		npos:          *npos,
		title:         *title,
		titleColor:    *titleColor,
		borderSize:    *borderSize,
		borderColor:   *borderColor,
		fontTitle:     *fontTitle,
		fontName:      *fontName,
		fontLabel:     *fontLabel,
	})
	if err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}

	img, err := s.Render(filters...)
	if err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("swatchmaker: %v", err)
	}
	log.Printf("wrote %s (%dx%d, %d colors)", *output, width, height, len(colors))
}

// filterConfig carries the flag values that translate into filters.
type filterConfig struct {
	shadowSize    int
	shadowOpacity float64
	label         bool
	named         bool
	npos          int
	title         string
	titleColor    string
	borderSize    int
	borderColor   string
	fontTitle     float64
	fontName      float64
	fontLabel     float64
}

// buildFilters translates flags into the filter list. Geometry filters
// are listed first for readability; Render orders them either way.
func buildFilters(cfg filterConfig) ([]swatch.Filter, error) {
	var filters []swatch.Filter
	if cfg.borderSize > 0 {
		col, err := swatch.ParseColor(cfg.borderColor)
		if err != nil {
			return nil, err
		}
		f, err := swatch.Border(cfg.borderSize, col)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if cfg.title != "" {
		col, err := swatch.ParseColor(cfg.titleColor)
		if err != nil {
			return nil, err
		}
		f, err := swatch.Title(cfg.title, col, cfg.fontTitle)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if cfg.shadowSize > 0 {
		f, err := swatch.Shadow(cfg.shadowSize, cfg.shadowOpacity)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if cfg.label {
		f, err := swatch.Label(cfg.fontLabel)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if cfg.named {
		f, err := swatch.Name(swatch.NamePosition(cfg.npos), cfg.fontName)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: swatchmaker [flags] WxH [color ...]\n\n")
	fmt.Fprintf(os.Stderr, "Renders a grid of color swatches to a PNG file.\n\n")
	flag.PrintDefaults()
}
