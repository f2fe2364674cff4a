// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxtree/taxonomy"
)

func TestLevel(t *testing.T) {
	tests := map[string]taxonomy.Level{
		"kingdom": taxonomy.Kingdom,
		"Phylum":  taxonomy.Phylum,
		"c":       taxonomy.Class,
		"ORDER":   taxonomy.Order,
		"f":       taxonomy.Family,
		" genus ": taxonomy.Genus,
		"s":       taxonomy.Species,
		"root":    taxonomy.Root,
		"strain":  taxonomy.Unknown,
		"":        taxonomy.Unknown,
	}
	for name, want := range tests {
		if g := taxonomy.ParseLevel(name); g != want {
			t.Errorf("parse level %q: got %v, want %v", name, g, want)
		}
	}

	if g := taxonomy.Genus.Prefix(); g != "g__" {
		t.Errorf("genus prefix: got %q, want %q", g, "g__")
	}
	if g := taxonomy.Root.Prefix(); g != "" {
		t.Errorf("root prefix: got %q, want empty", g)
	}
	if g := taxonomy.LevelOf("s__Bacteroides fragilis"); g != taxonomy.Species {
		t.Errorf("level of species label: got %v", g)
	}
	if g := taxonomy.LevelOf("x__Unknown"); g != taxonomy.Unknown {
		t.Errorf("level of invalid label: got %v", g)
	}
	if len(taxonomy.Levels()) != taxonomy.Depth {
		t.Errorf("levels: got %d, want %d", len(taxonomy.Levels()), taxonomy.Depth)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"complete": {
			in:   "k__Bacteria;p__Firmicutes;c__Bacilli;o__Lactobacillales;f__Lactobacillaceae;g__Lactobacillus;s__Lactobacillus iners",
			want: "k__Bacteria;p__Firmicutes;c__Bacilli;o__Lactobacillales;f__Lactobacillaceae;g__Lactobacillus;s__Lactobacillus iners",
		},
		"missing class": {
			in:   "k__Bacteria;p__Firmicutes;o__Lactobacillales",
			want: "k__Bacteria;p__Firmicutes;c__Lactobacil_unidentified;o__Lactobacillales",
		},
		"missing phylum": {
			in:   "k__Bacteria;c__Bacilli",
			want: "k__Bacteria;p__Bacilli_unidentified;c__Bacilli",
		},
		"two missing": {
			in:   "k__Bacteria;o__Lactobacillales",
			want: "k__Bacteria;p__Lactobacil_unidentified;c__Lactobacil_unidentified;o__Lactobacillales",
		},
		"short": {
			in:   "k__Bacteria;p__Firmicutes",
			want: "k__Bacteria;p__Firmicutes",
		},
		"missing genus": {
			in:   "k__B;p__P;c__C;o__O;f__F;s__Sp",
			want: "k__B;p__P;c__C;o__O;f__F;g__Sp_unidentified;s__Sp",
		},
		"spaces": {
			in:   "k__Bacteria; p__Firmicutes",
			want: "k__Bacteria;p__Firmicutes",
		},
		"empty": {
			in:   "",
			want: "",
		},
	}

	for name, test := range tests {
		got := taxonomy.Normalize(test.in)
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
		if again := taxonomy.Normalize(got); again != got {
			t.Errorf("%s: normalization is not idempotent: got %q, want %q", name, again, got)
		}
	}
}

func TestSplit(t *testing.T) {
	got := taxonomy.Split("k__Bacteria; p__Firmicutes;;")
	want := []string{"k__Bacteria", "p__Firmicutes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("split: got %v, want %v", got, want)
	}
	if g := taxonomy.Split("  "); g != nil {
		t.Errorf("split empty: got %v, want nil", g)
	}

	l, ok := taxonomy.Label("k__Bacteria;p__Firmicutes;g__", taxonomy.Genus)
	if ok {
		t.Errorf("label: got %q, want no label", l)
	}
	l, ok = taxonomy.Label("k__Bacteria;p__Firmicutes", taxonomy.Phylum)
	if !ok || l != "p__Firmicutes" {
		t.Errorf("label: got %q, want %q", l, "p__Firmicutes")
	}
}

func TestAssignmentsTSV(t *testing.T) {
	a := newAssignments()
	testAssignments(t, "new", a)

	var w bytes.Buffer
	if err := a.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	na, err := taxonomy.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testAssignments(t, "tsv", na)
}

func TestReadTSVErrors(t *testing.T) {
	dup := "OTU1\tk__Bacteria\t1\nOTU1\tk__Archaea\t1\n"
	if _, err := taxonomy.ReadTSV(strings.NewReader(dup)); err == nil {
		t.Errorf("duplicated unit: expecting error")
	}

	short := "OTU1\n"
	if _, err := taxonomy.ReadTSV(strings.NewReader(short)); err == nil {
		t.Errorf("missing lineage: expecting error")
	}
}

func TestAssignmentsNormalize(t *testing.T) {
	a := newAssignments()
	na := a.Normalize()

	want := "k__Bacteria;p__Firmicutes;c__Lactobacil_unidentified;o__Lactobacillales"
	if g := na.Lineage("OTU3"); g != want {
		t.Errorf("normalized OTU3: got %q, want %q", g, want)
	}
	if g := a.Lineage("OTU3"); g == want {
		t.Errorf("original assignments modified")
	}
	if !reflect.DeepEqual(na.Units(), a.Units()) {
		t.Errorf("units: got %v, want %v", na.Units(), a.Units())
	}
}

func TestAtLevel(t *testing.T) {
	a := newAssignments()

	genus := a.AtLevel(taxonomy.Genus)
	want := map[string]string{
		"OTU1": "g__Bacteroides",
		"OTU2": "g__Bacteroides",
	}
	if !reflect.DeepEqual(genus, want) {
		t.Errorf("genus: got %v, want %v", genus, want)
	}
}

func newAssignments() *taxonomy.Assignments {
	a := taxonomy.NewAssignments()
	a.Add("OTU1", "k__Bacteria;p__Bacteroidetes;c__Bacteroidia;o__Bacteroidales;f__Bacteroidaceae;g__Bacteroides;s__Bacteroides fragilis", "0.99")
	a.Add("OTU2", "k__Bacteria;p__Bacteroidetes;c__Bacteroidia;o__Bacteroidales;f__Bacteroidaceae;g__Bacteroides", "0.97")
	a.Add("OTU3", "k__Bacteria;p__Firmicutes;o__Lactobacillales", "0.80")
	return a
}

func testAssignments(t testing.TB, name string, a *taxonomy.Assignments) {
	t.Helper()

	units := []string{"OTU1", "OTU2", "OTU3"}
	if g := a.Units(); !reflect.DeepEqual(g, units) {
		t.Errorf("%s: units: got %v, want %v", name, g, units)
	}
	if a.Len() != len(units) {
		t.Errorf("%s: len: got %d, want %d", name, a.Len(), len(units))
	}

	labels := []string{"k__Bacteria", "p__Firmicutes", "o__Lactobacillales"}
	if g := a.Labels("OTU3"); !reflect.DeepEqual(g, labels) {
		t.Errorf("%s: labels: got %v, want %v", name, g, labels)
	}
	if g := a.Confidence("OTU2"); g != "0.97" {
		t.Errorf("%s: confidence: got %q, want %q", name, g, "0.97")
	}
}
