// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/taxtree/palette"
)

var header = []string{
	"name",
	"level",
	"parent",
	"profile",
	"size",
	"dist",
	"branch",
	"color",
	"label",
}

// TSV writes the nodes of the tree
// as a tab-delimited file.
//
// The file contains the following fields:
//
//   - name, the name of the node
//   - level, the taxonomic level of the node
//   - parent, the name of the parent node
//   - profile, the profile of the node
//   - size, the size of the node
//   - dist, the raw distance of the node
//   - branch, the branch length of the node
//   - color, the color of the taxonomic level
//   - label, the profile as a percentage
//
// Nodes are written in level order,
// and the root is not written.
func (t *Tree) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	maxDist := t.maxDist()
	for n := range t.All() {
		if n == t.root {
			continue
		}
		branch := maxDist[n.level] - n.size
		row := []string{
			n.name,
			n.level.String(),
			n.parent.name,
			strconv.FormatFloat(n.profile, 'f', 6, 64),
			strconv.FormatFloat(n.size, 'f', 3, 64),
			strconv.FormatFloat(n.dist, 'f', 3, 64),
			strconv.FormatFloat(branch, 'f', 3, 64),
			palette.Hex(palette.Level(n.level)),
			FormatPercent(n.profile),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// FormatPercent returns a profile value
// as a percentage.
// Values equal or larger than 0.01%
// are written with two decimals,
// smaller values are written
// in exponential notation.
func FormatPercent(p float64) string {
	v := p * 100
	if v == 0 {
		return "0%"
	}
	if v >= 0.01 {
		return strconv.FormatFloat(v, 'f', 2, 64) + "%"
	}
	return strconv.FormatFloat(v, 'e', 2, 64) + "%"
}
