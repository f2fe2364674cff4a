// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package profile implements abundance tables
// of taxa (or sample-units)
// in a set of samples,
// and their aggregation at different taxonomic levels.
package profile

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/js-arias/taxtree/group"
)

// A Table is an abundance table.
// Rows are taxon labels
// (or unit identifiers),
// and columns are samples.
type Table struct {
	// name of the row identifiers
	key string

	labels  []string
	samples []string
	index   map[string]int
	data    [][]float64
}

// New creates a new empty table
// with the given samples.
func New(samples []string) *Table {
	s := make([]string, len(samples))
	copy(s, samples)
	return &Table{
		key:     "label",
		samples: s,
		index:   make(map[string]int),
	}
}

// Add adds the values of a row.
// If the row is already defined,
// the values will be added to the current values.
// Values beyond the number of samples are ignored.
func (t *Table) Add(label string, values []float64) {
	row := t.row(label)
	n := min(len(values), len(row))
	floats.Add(row[:n], values[:n])
}

// Set sets the values of a row,
// replacing any previous value.
func (t *Table) Set(label string, values []float64) {
	row := t.row(label)
	for i := range row {
		row[i] = 0
	}
	copy(row, values)
}

func (t *Table) row(label string) []float64 {
	if i, ok := t.index[label]; ok {
		return t.data[i]
	}
	t.index[label] = len(t.labels)
	t.labels = append(t.labels, label)
	row := make([]float64, len(t.samples))
	t.data = append(t.data, row)
	return row
}

// ColumnSums returns the sum of each sample.
func (t *Table) ColumnSums() []float64 {
	sums := make([]float64, len(t.samples))
	for _, row := range t.data {
		floats.Add(sums, row)
	}
	return sums
}

// Has returns true if a row is defined in the table.
func (t *Table) Has(label string) bool {
	_, ok := t.index[label]
	return ok
}

// Labels returns the row labels of the table
// in the order in which they were added.
func (t *Table) Labels() []string {
	l := make([]string, len(t.labels))
	copy(l, t.labels)
	return l
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.labels)
}

// Mean returns the mean value of a row
// across all samples.
func (t *Table) Mean(label string) float64 {
	i, ok := t.index[label]
	if !ok || len(t.samples) == 0 {
		return 0
	}
	return stat.Mean(t.data[i], nil)
}

// Means returns the mean value of each row.
func (t *Table) Means() map[string]float64 {
	m := make(map[string]float64, len(t.labels))
	for _, l := range t.labels {
		m[l] = t.Mean(l)
	}
	return m
}

// Row returns a copy of the values of a row.
func (t *Table) Row(label string) []float64 {
	i, ok := t.index[label]
	if !ok {
		return nil
	}
	row := make([]float64, len(t.samples))
	copy(row, t.data[i])
	return row
}

// Samples returns the samples of the table.
func (t *Table) Samples() []string {
	s := make([]string, len(t.samples))
	copy(s, t.samples)
	return s
}

// SetKey sets the name of the row identifiers
// used as the first header field
// when the table is written.
func (t *Table) SetKey(key string) {
	t.key = key
}

// Total returns the sum of a row
// across all samples.
func (t *Table) Total(label string) float64 {
	i, ok := t.index[label]
	if !ok {
		return 0
	}
	return floats.Sum(t.data[i])
}

// Value returns the value of a row
// in a given sample.
func (t *Table) Value(label, sample string) float64 {
	i, ok := t.index[label]
	if !ok {
		return 0
	}
	for j, s := range t.samples {
		if s == sample {
			return t.data[i][j]
		}
	}
	return 0
}

// Uniform transforms the table
// so each sample column sums to 1,
// (i.e., each value is the relative abundance
// of the row in the sample).
// Columns that sum to 0 are left unchanged.
// It returns the modified table.
func (t *Table) Uniform() *Table {
	sums := t.ColumnSums()
	for _, row := range t.data {
		for j, s := range sums {
			if s == 0 {
				continue
			}
			row[j] /= s
		}
	}
	return t
}

// Filter returns a new table
// with the rows for which keep returns true.
func (t *Table) Filter(keep func(label string) bool) *Table {
	nt := New(t.samples)
	nt.key = t.key
	for i, l := range t.labels {
		if !keep(l) {
			continue
		}
		nt.Set(l, t.data[i])
	}
	return nt
}

// Transpose returns a new table
// in which samples are rows
// and labels are columns.
func (t *Table) Transpose() *Table {
	nt := New(t.labels)
	nt.key = "sample"
	for j, s := range t.samples {
		row := make([]float64, len(t.labels))
		for i := range t.labels {
			row[i] = t.data[i][j]
		}
		nt.Set(s, row)
	}
	return nt
}

// MergeSamples returns a new table
// in which the samples of the same group
// are merged,
// using the mean value of the samples in the group.
// Samples without a group are kept with its own name.
// Groups are sorted by the first sample
// of each group in the table.
func (t *Table) MergeSamples(g *group.Groups) *Table {
	var names []string
	members := make(map[string][]int)
	for j, s := range t.samples {
		gr, ok := g.Group(s)
		if !ok {
			gr = s
		}
		if _, ok := members[gr]; !ok {
			names = append(names, gr)
		}
		members[gr] = append(members[gr], j)
	}

	nt := New(names)
	nt.key = t.key
	vals := make([]float64, 0, len(t.samples))
	for i, l := range t.labels {
		row := make([]float64, len(names))
		for k, gr := range names {
			vals = vals[:0]
			for _, j := range members[gr] {
				vals = append(vals, t.data[i][j])
			}
			row[k] = stat.Mean(vals, nil)
		}
		nt.Set(l, row)
	}
	return nt
}

// Concat returns a new table
// with the rows of all tables.
// Samples are taken in the order
// they are found in the tables.
// If a sample is not present in a table
// its values will be 0.
// If a label is repeated,
// values are added.
func Concat(tables ...*Table) *Table {
	var samples []string
	pos := make(map[string]int)
	for _, t := range tables {
		for _, s := range t.samples {
			if _, ok := pos[s]; ok {
				continue
			}
			pos[s] = len(samples)
			samples = append(samples, s)
		}
	}

	nt := New(samples)
	for _, t := range tables {
		for i, l := range t.labels {
			row := make([]float64, len(samples))
			for j, s := range t.samples {
				row[pos[s]] = t.data[i][j]
			}
			nt.Add(l, row)
		}
	}
	if len(tables) > 0 {
		nt.key = tables[0].key
	}
	return nt
}
