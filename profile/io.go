// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package profile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadTSV reads an abundance table
// from a tab-delimited file.
//
// The first row is the header,
// its first field is the name of the row identifiers
// (it is ignored)
// and the other fields are the sample names.
// Each other row contains the identifier of a unit
// (or a taxon label)
// followed by its abundance in each sample.
// Leading lines starting with '#' and without tabs
// are taken as comments,
// so a table in which the header starts with '#'
// (as in "#OTU ID")
// is valid.
//
// Here is an example file:
//
//	# Constructed from biom file
//	#OTU ID	S1	S2	S3
//	OTU1	10	0	3
//	OTU2	4	12	0
//	OTU3	0	1	1
func ReadTSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	var skip int
	var first string
	for {
		ln, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while reading header: %v", err)
		}
		if strings.TrimSpace(ln) == "" || (strings.HasPrefix(ln, "#") && !strings.Contains(ln, "\t")) {
			skip++
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("while reading header: %v", io.EOF)
			}
			continue
		}
		first = ln
		break
	}

	tab := csv.NewReader(io.MultiReader(strings.NewReader(first), br))
	tab.Comma = '\t'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	if len(head) < 2 {
		return nil, fmt.Errorf("while reading header: expecting at least one sample")
	}
	samples := make([]string, 0, len(head)-1)
	seen := make(map[string]bool, len(head)-1)
	for _, h := range head[1:] {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("while reading header: empty sample name")
		}
		if seen[h] {
			return nil, fmt.Errorf("while reading header: sample %q repeated", h)
		}
		seen[h] = true
		samples = append(samples, h)
	}

	t := New(samples)
	t.key = strings.TrimSpace(strings.TrimPrefix(head[0], "#"))
	if t.key == "" {
		t.key = "label"
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		ln += skip
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		if t.Has(id) {
			return nil, fmt.Errorf("on row %d: %q already defined", ln, id)
		}

		vals := make([]float64, len(samples))
		for i, s := range samples {
			f := row[i+1]
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: sample %q: %q: %v", ln, s, f, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("on row %d: sample %q: invalid abundance %q", ln, s, f)
			}
			vals[i] = v
		}
		t.Set(id, vals)
	}
	return t, nil
}

// TSV writes a table as a tab-delimited file.
func (t *Table) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := make([]string, 0, len(t.samples)+1)
	header = append(header, t.key)
	header = append(header, t.samples...)
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, l := range t.labels {
		row := make([]string, 0, len(t.samples)+1)
		row = append(row, l)
		for _, v := range t.data[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
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
