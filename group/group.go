// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package group provides an assignment
// of samples to sample groups
// (for example treatments or sites).
package group

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Groups is a collection of samples
// assigned to groups.
type Groups struct {
	samples []string
	names   []string
	group   map[string]string
}

// New creates a new empty collection.
func New() *Groups {
	return &Groups{
		group: make(map[string]string),
	}
}

// Add assigns a sample to a group.
// If the group is empty,
// the sample name will be used as the group.
func (g *Groups) Add(sample, group string) {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return
	}
	group = strings.TrimSpace(group)
	if group == "" {
		group = sample
	}

	if _, ok := g.group[sample]; !ok {
		g.samples = append(g.samples, sample)
	}
	g.group[sample] = group

	for _, n := range g.names {
		if n == group {
			return
		}
	}
	g.names = append(g.names, group)
}

// Group returns the group of a sample.
func (g *Groups) Group(sample string) (string, bool) {
	gr, ok := g.group[sample]
	return gr, ok
}

// Members returns the samples of a group,
// in the order in which they were added.
func (g *Groups) Members(group string) []string {
	var m []string
	for _, s := range g.samples {
		if g.group[s] == group {
			m = append(m, s)
		}
	}
	return m
}

// Names returns the names of the groups
// in the order in which they were first defined.
func (g *Groups) Names() []string {
	names := make([]string, 0, len(g.names))
	for _, n := range g.names {
		if len(g.Members(n)) == 0 {
			continue
		}
		names = append(names, n)
	}
	return names
}

// Samples returns the samples with an assigned group.
func (g *Groups) Samples() []string {
	s := make([]string, len(g.samples))
	copy(s, g.samples)
	return s
}

// ReadTSV reads a group file.
//
// The group file is a tab-delimited file
// without header.
// The first column is the sample name
// and the second column the group of the sample.
// If there is no second column,
// the sample is its own group.
// Any other column is ignored.
//
// Here is an example file:
//
//	# sample groups
//	S1	control
//	S2	control
//	S3	treated
func ReadTSV(r io.Reader) (*Groups, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	g := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		var gr string
		if len(row) > 1 {
			gr = row[1]
		}
		g.Add(row[0], gr)
	}
	return g, nil
}

// TSV writes the groups as a tab-delimited file.
func (g *Groups) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# sample groups\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tab := csv.NewWriter(bw)
	tab.Comma = '\t'
	tab.UseCRLF = true

	for _, s := range g.samples {
		row := []string{
			s,
			g.group[s],
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
