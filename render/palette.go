package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"
)

// ErrUnknownPalette is returned by ParsePalette for names it does not know.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette turns an escape count into a pixel colour.
type Palette func(iter, maxIter int) color.RGBA

var palettes = map[string]Palette{
	"blue": Blue,
	"red":  Red,
	"hsv":  HSV,
	"gray": Gray,
}

// ParsePalette looks a palette up by name.
func ParsePalette(name string) (Palette, error) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}
	return p, nil
}

// PaletteNames lists the known palettes, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Blue scales the count into the blue channel, two levels per iteration.
func Blue(iter, _ int) color.RGBA {
	return color.RGBA{B: channel(iter * 2), A: 255}
}

// Red puts the count straight into the red channel.
func Red(iter, _ int) color.RGBA {
	return color.RGBA{R: channel(iter), A: 255}
}

// Gray spreads the count over the full grey ramp.
func Gray(iter, maxIter int) color.RGBA {
	if maxIter <= 0 {
		return color.RGBA{A: 255}
	}
	v := channel(iter * 255 / maxIter)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// HSV cycles the hue with the count and paints the set itself black.
func HSV(iter, maxIter int) color.RGBA {
	if iter >= maxIter {
		return color.RGBA{A: 255}
	}
	return hsv(float64(iter)*0.02, 1, 1)
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// hsv converts hue h, in turns, to RGB.
func hsv(h, s, v float64) color.RGBA {
	h -= math.Floor(h)
	c := func(n float64) uint8 {
		k := math.Mod(n+h*6, 6)
		return uint8(255 * (v - v*s*max(0, min(k, 4-k, 1))))
	}
	return color.RGBA{R: c(5), G: c(3), B: c(1), A: 255}
}
