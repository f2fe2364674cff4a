// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package profile

import (
	"cmp"
	"slices"

	"github.com/js-arias/taxtree/taxonomy"
)

// Aggregate returns a new table
// in which the rows of a unit table
// are summed by their taxon label.
// Labels is a map of unit identifiers
// to taxon labels;
// units without a label are ignored.
// Rows of the returned table are sorted
// in the order in which each label is first found
// in the unit table.
func Aggregate(units *Table, labels map[string]string) *Table {
	t := New(units.samples)
	t.key = "taxon"
	for i, u := range units.labels {
		l, ok := labels[u]
		if !ok {
			continue
		}
		t.Add(l, units.data[i])
	}
	return t
}

// TopN returns a table with the units
// assigned to the n most abundant taxa,
// as defined by labels
// (a map of units to taxon labels
// at a reference level).
//
// The abundance of a taxon is the sum
// of the abundances of its units
// in all samples.
// Ties are resolved by the order of the taxon
// in the aggregated table.
// Units without a label are always removed.
//
// If n is zero or negative,
// or n is equal or larger than the number of taxa,
// all taxa are kept.
func TopN(units *Table, labels map[string]string, n int) *Table {
	agg := Aggregate(units, labels)
	if n <= 0 || n >= agg.Len() {
		return units.Filter(func(u string) bool {
			_, ok := labels[u]
			return ok
		})
	}

	ranked := agg.Labels()
	totals := make(map[string]float64, len(ranked))
	for _, l := range ranked {
		totals[l] = agg.Total(l)
	}
	slices.SortStableFunc(ranked, func(a, b string) int {
		return cmp.Compare(totals[b], totals[a])
	})

	keep := make(map[string]bool, n)
	for _, l := range ranked[:n] {
		keep[l] = true
	}
	return units.Filter(func(u string) bool {
		l, ok := labels[u]
		return ok && keep[l]
	})
}

// Levels stores the relative abundance tables
// of each taxonomic level.
type Levels struct {
	units  *Table
	tables map[taxonomy.Level]*Table
	total  *Table
}

// NewLevels builds the relative abundance tables
// for each taxonomic level,
// from a table of unit abundances
// and the taxonomic assignments of the units.
//
// Before the aggregation,
// units are filtered to keep only the units
// of the n most abundant taxa
// at the reference level
// (see TopN).
// If the reference is not a taxonomic rank,
// no filtering is done.
func NewLevels(units *Table, a *taxonomy.Assignments, ref taxonomy.Level, n int) *Levels {
	if ref.IsRank() {
		units = TopN(units, a.AtLevel(ref), n)
	}

	lv := &Levels{
		units:  units,
		tables: make(map[taxonomy.Level]*Table, taxonomy.Depth),
	}
	ts := make([]*Table, 0, taxonomy.Depth)
	for _, l := range taxonomy.Levels() {
		t := Aggregate(units, a.AtLevel(l)).Uniform()
		lv.tables[l] = t
		ts = append(ts, t)
	}
	lv.total = Concat(ts...)
	return lv
}

// Table returns the relative abundance table
// of a taxonomic level.
func (lv *Levels) Table(l taxonomy.Level) *Table {
	t, ok := lv.tables[l]
	if !ok {
		return New(lv.units.samples)
	}
	return t
}

// Total returns the concatenation
// of the tables of all levels,
// from kingdom to species.
func (lv *Levels) Total() *Table {
	return lv.total
}

// Units returns the unit table
// used to build the level tables,
// after filtering.
func (lv *Levels) Units() *Table {
	return lv.units
}
