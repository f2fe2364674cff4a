// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package palette implements the colors
// used to display taxonomic levels
// and samples.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
	"github.com/js-arias/taxtree/taxonomy"
)

// Brewer is a qualitative color list
// used for taxonomic levels.
var Brewer = []color.RGBA{
	{0x00, 0x44, 0x7E, 0xFF},
	{0xF3, 0x48, 0x00, 0xFF},
	{0x64, 0xA1, 0x0E, 0xFF},
	{0x93, 0x00, 0x26, 0xFF},
	{0x46, 0x4E, 0x04, 0xFF},
	{0x04, 0x9A, 0x0B, 0xFF},
	{0x4E, 0x0C, 0x66, 0xFF},
	{0xD0, 0x00, 0x00, 0xFF},
	{0xFF, 0x6C, 0x00, 0xFF},
	{0xFF, 0x00, 0xFF, 0xFF},
	{0xC7, 0x47, 0x5B, 0xFF},
	{0x00, 0xF5, 0xFF, 0xFF},
	{0xBD, 0xA5, 0x00, 0xFF},
	{0xA5, 0xCF, 0xED, 0xFF},
	{0xF0, 0x30, 0x1C, 0xFF},
	{0x2B, 0x8B, 0xC3, 0xFF},
	{0xFD, 0xA1, 0x00, 0xFF},
	{0x54, 0xAD, 0xF5, 0xFF},
	{0xCD, 0xD7, 0xE2, 0xFF},
	{0x92, 0x95, 0xC1, 0xFF},
}

// Grey is the color used for nodes
// without a taxonomic level.
var Grey = color.RGBA{0x80, 0x80, 0x80, 0xFF}

// Level returns the color of a taxonomic level.
func Level(lv taxonomy.Level) color.Color {
	if !lv.IsRank() {
		return Grey
	}
	return Cycle(int(lv - taxonomy.Kingdom))
}

// Cycle returns the i-th color
// of the Brewer list,
// starting again at the beginning
// if i is larger than the list.
func Cycle(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return Brewer[i%len(Brewer)]
}

// Hex returns a color
// in hexadecimal notation
// (for example "#00447E").
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Sample returns the color of the i-th sample
// of n samples
// using a gradient.
func Sample(g Gradienter, i, n int) color.Color {
	if n < 2 {
		return g.Gradient(0.5)
	}
	return g.Gradient(float64(i) / float64(n-1))
}

// Scheme returns a gradient by its name.
// Valid names are "iridescent",
// "incandescent",
// "rainbow",
// and "brewer".
// Any other name returns the rainbow scheme.
func Scheme(name string) Gradienter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iridescent":
		return Iridescent{}
	case "incandescent":
		return Incandescent{}
	case "brewer":
		return Qualitative{}
	}
	return RainbowPurpleToRed{}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// Qualitative uses the Brewer list
// as a gradient,
// it is intended for small sets of samples.
type Qualitative struct{}

func (q Qualitative) Gradient(v float64) color.Color {
	i := int(clamp(v) * float64(len(Brewer)-1))
	return Brewer[i]
}
