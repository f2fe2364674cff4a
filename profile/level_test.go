// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package profile_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/taxonomy"
)

func TestAggregate(t *testing.T) {
	u, err := profile.ReadTSV(strings.NewReader(unitData))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	labels := map[string]string{
		"OTU1": "g__A",
		"OTU2": "g__B",
		"OTU3": "g__A",
	}
	agg := profile.Aggregate(u, labels)

	if g := agg.Labels(); !reflect.DeepEqual(g, []string{"g__A", "g__B"}) {
		t.Errorf("aggregate labels: got %v", g)
	}
	if g := agg.Row("g__A"); !reflect.DeepEqual(g, []float64{10, 1, 4}) {
		t.Errorf("aggregate g__A: got %v", g)
	}
	if g := agg.Row("g__B"); !reflect.DeepEqual(g, []float64{4, 12, 0}) {
		t.Errorf("aggregate g__B: got %v", g)
	}
}

func TestTopN(t *testing.T) {
	u, err := profile.ReadTSV(strings.NewReader(unitData))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	// totals: g__A = 15, g__B = 16, g__C = 6
	labels := map[string]string{
		"OTU1": "g__A",
		"OTU2": "g__B",
		"OTU3": "g__A",
		"OTU4": "g__C",
	}

	tests := map[string]struct {
		n     int
		units []string
	}{
		"top 1":    {1, []string{"OTU2"}},
		"top 2":    {2, []string{"OTU1", "OTU2", "OTU3"}},
		"all":      {3, []string{"OTU1", "OTU2", "OTU3", "OTU4"}},
		"more":     {10, []string{"OTU1", "OTU2", "OTU3", "OTU4"}},
		"zero":     {0, []string{"OTU1", "OTU2", "OTU3", "OTU4"}},
		"negative": {-2, []string{"OTU1", "OTU2", "OTU3", "OTU4"}},
	}
	for name, test := range tests {
		got := profile.TopN(u, labels, test.n)
		if g := got.Labels(); !reflect.DeepEqual(g, test.units) {
			t.Errorf("%s: got %v, want %v", name, g, test.units)
		}

		taxa := make(map[string]bool)
		for _, l := range got.Labels() {
			taxa[labels[l]] = true
		}
		want := 3
		if test.n > 0 && test.n < want {
			want = test.n
		}
		if len(taxa) != want {
			t.Errorf("%s: got %d taxa, want %d", name, len(taxa), want)
		}
	}
}

func TestTopNTies(t *testing.T) {
	u := profile.New([]string{"S1"})
	u.Set("u1", []float64{5})
	u.Set("u2", []float64{5})
	u.Set("u3", []float64{5})

	labels := map[string]string{
		"u1": "g__X",
		"u2": "g__Y",
		"u3": "g__Z",
	}
	got := profile.TopN(u, labels, 2)
	if g := got.Labels(); !reflect.DeepEqual(g, []string{"u1", "u2"}) {
		t.Errorf("ties: got %v, want %v", g, []string{"u1", "u2"})
	}
}

func TestLevels(t *testing.T) {
	a := taxonomy.NewAssignments()
	a.Add("u1", "k__Bacteria;p__Firmicutes;c__Bacilli;o__Lactobacillales;f__Lactobacillaceae;g__A;s__A1", "1")
	a.Add("u2", "k__Bacteria;p__Firmicutes;c__Bacilli;o__Lactobacillales;f__Lactobacillaceae;g__A;s__A2", "1")

	u := profile.New([]string{"sample1"})
	u.Set("u1", []float64{6})
	u.Set("u2", []float64{4})

	lv := profile.NewLevels(u, a, taxonomy.Genus, 20)

	if g := lv.Table(taxonomy.Genus).Value("g__A", "sample1"); g != 1 {
		t.Errorf("genus g__A: got %.6f, want 1", g)
	}
	if g := lv.Table(taxonomy.Species).Value("s__A1", "sample1"); math.Abs(g-0.6) > 1e-9 {
		t.Errorf("species s__A1: got %.6f, want 0.6", g)
	}

	total := lv.Total()
	labels := []string{
		"k__Bacteria",
		"p__Firmicutes",
		"c__Bacilli",
		"o__Lactobacillales",
		"f__Lactobacillaceae",
		"g__A",
		"s__A1",
		"s__A2",
	}
	if g := total.Labels(); !reflect.DeepEqual(g, labels) {
		t.Errorf("total: got %v, want %v", g, labels)
	}
	if g := total.Mean("s__A2"); math.Abs(g-0.4) > 1e-9 {
		t.Errorf("total mean s__A2: got %.6f, want 0.4", g)
	}
}

func TestLevelsTopN(t *testing.T) {
	a := taxonomy.NewAssignments()
	a.Add("u1", "k__Bacteria;p__Firmicutes;c__Bacilli;o__O;f__F;g__A;s__A1", "1")
	a.Add("u2", "k__Bacteria;p__Firmicutes;c__Bacilli;o__O;f__F;g__B;s__B1", "1")
	a.Add("u3", "k__Bacteria;p__Bacteroidetes;c__Bacteroidia;o__P;f__G;g__C;s__C1", "1")

	u := profile.New([]string{"S1", "S2"})
	u.Set("u1", []float64{6, 2})
	u.Set("u2", []float64{4, 4})
	u.Set("u3", []float64{1, 0})

	lv := profile.NewLevels(u, a, taxonomy.Genus, 2)
	if g := lv.Units().Labels(); !reflect.DeepEqual(g, []string{"u1", "u2"}) {
		t.Errorf("units: got %v", g)
	}
	if lv.Total().Has("p__Bacteroidetes") {
		t.Errorf("filtered phylum found in total table")
	}
	if g := lv.Table(taxonomy.Phylum).Value("p__Firmicutes", "S1"); g != 1 {
		t.Errorf("phylum: got %.6f, want 1", g)
	}
	for _, s := range []string{"S1", "S2"} {
		var sum float64
		for _, l := range lv.Table(taxonomy.Genus).Labels() {
			sum += lv.Table(taxonomy.Genus).Value(l, s)
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("genus column %s: got sum %.6f, want 1", s, sum)
		}
	}
}

func TestTopNUnlabeled(t *testing.T) {
	u := profile.New([]string{"S1"})
	u.Set("u1", []float64{5})
	u.Set("u2", []float64{3})
	u.Set("u3", []float64{100})

	// u3 has no genus
	labels := map[string]string{
		"u1": "g__G1",
		"u2": "g__G2",
	}
	tests := map[string]struct {
		n     int
		units []string
	}{
		"top 1": {1, []string{"u1"}},
		"all":   {2, []string{"u1", "u2"}},
		"more":  {5, []string{"u1", "u2"}},
		"zero":  {0, []string{"u1", "u2"}},
	}
	for name, test := range tests {
		got := profile.TopN(u, labels, test.n)
		if g := got.Labels(); !reflect.DeepEqual(g, test.units) {
			t.Errorf("%s: got %v, want %v", name, g, test.units)
		}
	}
}

func TestLevelsUnlabeled(t *testing.T) {
	a := taxonomy.NewAssignments()
	a.Add("u1", "k__B;p__A;c__C;o__O;f__F;g__G1", "1")
	a.Add("u2", "k__B;p__A;c__C;o__O;f__F;g__G2", "1")
	a.Add("u3", "k__B;p__Z", "1")

	u := profile.New([]string{"S1"})
	u.Set("u1", []float64{5})
	u.Set("u2", []float64{3})
	u.Set("u3", []float64{100})

	for _, n := range []int{1, 2, 20} {
		lv := profile.NewLevels(u, a, taxonomy.Genus, n)
		if lv.Total().Has("p__Z") {
			t.Errorf("top %d: phylum without genus found in total table", n)
		}
		if g := lv.Table(taxonomy.Phylum).Value("p__A", "S1"); g != 1 {
			t.Errorf("top %d: phylum p__A: got %.6f, want 1", n, g)
		}
	}
}
