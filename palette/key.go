// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package palette

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Key stores user defined colors
// for taxon labels.
type Key struct {
	colors map[string]color.Color
}

// NewKey returns an empty color key.
func NewKey() *Key {
	return &Key{colors: make(map[string]color.Color)}
}

// Set sets the color of a taxon.
func (k *Key) Set(taxon string, c color.Color) {
	k.colors[taxon] = c
}

// Color returns the color of a taxon.
// If the key is nil
// or the taxon is not in the key
// it returns false.
func (k *Key) Color(taxon string) (color.Color, bool) {
	if k == nil {
		return nil, false
	}
	c, ok := k.colors[taxon]
	return c, ok
}

// Len returns the number of taxa in the key.
func (k *Key) Len() int {
	if k == nil {
		return 0
	}
	return len(k.colors)
}

// ReadKey reads a color key
// from a tab-delimited file
// with the following required columns:
//
//	-taxon	the taxon label
//	-color	an RGB value separated by commas
//		(for example "125,132,148"),
//		or an hexadecimal value
//		(for example "#7d8494").
//
// Any other column is ignored.
// Here is an example of a key file:
//
//	taxon	color	comment
//	g__Lactobacillus	0, 68, 126
//	g__Bacillus	#f34800	spore formers
func ReadKey(r io.Reader) (*Key, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, h := range []string{"taxon", "color"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	k := NewKey()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := strings.TrimSpace(row[fields[f]])
		if tax == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty taxon", ln, f)
		}

		f = "color"
		c, err := ParseColor(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		k.Set(tax, c)
	}
	return k, nil
}

// ParseColor parses a color
// defined as comma separated RGB values
// or as an hexadecimal string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
	}

	val := strings.Split(s, ",")
	if len(val) != 3 {
		return color.RGBA{}, fmt.Errorf("found %d values, want 3", len(val))
	}
	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(strings.TrimSpace(val[i]), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%s value: %v", name, err)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xFF}, nil
}
