// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Assignments is a collection of lineages
// assigned to sample-units
// (for example OTUs or ASVs).
type Assignments struct {
	units   []string
	lineage map[string]string
	conf    map[string]string
}

// NewAssignments creates a new empty collection
// of assignments.
func NewAssignments() *Assignments {
	return &Assignments{
		lineage: make(map[string]string),
		conf:    make(map[string]string),
	}
}

// Add adds the lineage of a unit
// and the confidence of the assignment.
// If the unit is already in the collection,
// its lineage will be replaced,
// keeping its original position.
func (a *Assignments) Add(unit, lineage, confidence string) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return
	}
	if _, ok := a.lineage[unit]; !ok {
		a.units = append(a.units, unit)
	}
	a.lineage[unit] = strings.TrimSpace(lineage)
	a.conf[unit] = strings.TrimSpace(confidence)
}

// AtLevel returns the label of each unit
// at a given level.
// Units without a label at that level
// are not in the returned map.
func (a *Assignments) AtLevel(lv Level) map[string]string {
	labels := make(map[string]string, len(a.units))
	for _, u := range a.units {
		l, ok := Label(a.lineage[u], lv)
		if !ok {
			continue
		}
		labels[u] = l
	}
	return labels
}

// Confidence returns the confidence value
// of the assignment of a unit.
func (a *Assignments) Confidence(unit string) string {
	return a.conf[unit]
}

// Labels returns the taxon labels
// in the lineage of a unit.
func (a *Assignments) Labels(unit string) []string {
	return Split(a.lineage[unit])
}

// Len returns the number of units
// in the collection.
func (a *Assignments) Len() int {
	return len(a.units)
}

// Lineage returns the lineage
// of a unit.
func (a *Assignments) Lineage(unit string) string {
	return a.lineage[unit]
}

// Lineages returns the taxon labels
// of the lineage of each unit,
// in the order in which the units were added.
func (a *Assignments) Lineages() [][]string {
	ls := make([][]string, 0, len(a.units))
	for _, u := range a.units {
		ls = append(ls, Split(a.lineage[u]))
	}
	return ls
}

// Normalize returns a new collection
// in which all lineages are normalized.
func (a *Assignments) Normalize() *Assignments {
	na := NewAssignments()
	for _, u := range a.units {
		na.Add(u, Normalize(a.lineage[u]), a.conf[u])
	}
	return na
}

// Units returns the units
// in the order in which they were added.
func (a *Assignments) Units() []string {
	units := make([]string, len(a.units))
	copy(units, a.units)
	return units
}

// ReadTSV reads a taxonomic assignment file.
//
// The file is a tab-delimited file without header,
// with the following columns:
//
//   - the identifier of the unit
//   - the lineage, as semicolon separated taxon labels
//   - the confidence of the assignment (optional)
//
// Lines starting with '#' are ignored.
// Here is an example file:
//
//	# tax assignments
//	OTU1	k__Bacteria;p__Firmicutes;c__Bacilli	0.98
//	OTU2	k__Bacteria;p__Bacteroidetes	1.00
func ReadTSV(r io.Reader) (*Assignments, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1
	tab.LazyQuotes = true

	a := NewAssignments()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("on row %d: expecting unit and lineage fields", ln)
		}

		u := strings.TrimSpace(row[0])
		if u == "" {
			continue
		}
		if _, ok := a.lineage[u]; ok {
			return nil, fmt.Errorf("on row %d: unit %q already defined", ln, u)
		}

		var conf string
		if len(row) > 2 {
			conf = row[2]
		}
		a.Add(u, row[1], conf)
	}
	return a, nil
}

// TSV writes the assignments
// as a tab-delimited file.
func (a *Assignments) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# tax assignments\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tab := csv.NewWriter(bw)
	tab.Comma = '\t'
	tab.UseCRLF = true

	for _, u := range a.units {
		row := []string{
			u,
			a.lineage[u],
			a.conf[u],
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
