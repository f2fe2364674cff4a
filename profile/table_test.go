// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package profile_test

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/taxtree/group"
	"github.com/js-arias/taxtree/profile"
)

const unitData = `# Constructed from biom file
#OTU ID	S1	S2	S3
OTU1	10	0	3
OTU2	4	12	0
OTU3	0	1	1
OTU4	6	0	0
`

func TestReadTSV(t *testing.T) {
	u, err := profile.ReadTSV(strings.NewReader(unitData))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testUnits(t, "read", u)

	var w bytes.Buffer
	if err := u.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nu, err := profile.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testUnits(t, "tsv", nu)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"non numeric":     "id\tS1\nOTU1\tten\n",
		"negative":        "id\tS1\nOTU1\t-1\n",
		"not a number":    "id\tS1\nOTU1\tNaN\n",
		"repeated unit":   "id\tS1\nOTU1\t1\nOTU1\t2\n",
		"repeated sample": "id\tS1\tS1\nOTU1\t1\t2\n",
		"missing field":   "id\tS1\tS2\nOTU1\t1\n",
		"no samples":      "id\nOTU1\n",
		"empty":           "",
	}
	for name, in := range tests {
		if _, err := profile.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestUniform(t *testing.T) {
	tb := profile.New([]string{"S1", "S2", "S3"})
	tb.Set("a", []float64{1, 0, 5})
	tb.Set("b", []float64{3, 0, 0})
	tb.Set("c", []float64{0, 0, 15})
	tb.Uniform()

	want := map[string][]float64{
		"a": {0.25, 0, 0.25},
		"b": {0.75, 0, 0},
		"c": {0, 0, 0.75},
	}
	for l, w := range want {
		if g := tb.Row(l); !reflect.DeepEqual(g, w) {
			t.Errorf("uniform %q: got %v, want %v", l, g, w)
		}
	}

	sums := tb.ColumnSums()
	for j, s := range sums {
		if j == 1 {
			if s != 0 {
				t.Errorf("uniform: empty column: got sum %.6f, want 0", s)
			}
			continue
		}
		if math.Abs(s-1) > 1e-9 {
			t.Errorf("uniform: column %d: got sum %.6f, want 1", j, s)
		}
	}
}

func TestTableOperations(t *testing.T) {
	u, err := profile.ReadTSV(strings.NewReader(unitData))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	if g := u.Total("OTU2"); g != 16 {
		t.Errorf("total: got %.3f, want %.3f", g, 16.0)
	}
	if g := u.Mean("OTU1"); math.Abs(g-13.0/3) > 1e-9 {
		t.Errorf("mean: got %.6f, want %.6f", g, 13.0/3)
	}
	if g := u.Mean("OTU9"); g != 0 {
		t.Errorf("mean of undefined row: got %.6f, want 0", g)
	}

	tr := u.Transpose()
	if g := tr.Labels(); !reflect.DeepEqual(g, []string{"S1", "S2", "S3"}) {
		t.Errorf("transpose labels: got %v", g)
	}
	if g := tr.Samples(); !reflect.DeepEqual(g, []string{"OTU1", "OTU2", "OTU3", "OTU4"}) {
		t.Errorf("transpose samples: got %v", g)
	}
	if g := tr.Value("S2", "OTU2"); g != 12 {
		t.Errorf("transpose value: got %.3f, want %.3f", g, 12.0)
	}

	f := u.Filter(func(l string) bool { return l != "OTU3" })
	if g := f.Labels(); !reflect.DeepEqual(g, []string{"OTU1", "OTU2", "OTU4"}) {
		t.Errorf("filter: got %v", g)
	}

	a := profile.New([]string{"S1", "S2"})
	a.Set("x", []float64{1, 2})
	b := profile.New([]string{"S2", "S3"})
	b.Set("y", []float64{3, 4})
	c := profile.Concat(a, b)
	if g := c.Samples(); !reflect.DeepEqual(g, []string{"S1", "S2", "S3"}) {
		t.Errorf("concat samples: got %v", g)
	}
	if g := c.Row("y"); !reflect.DeepEqual(g, []float64{0, 3, 4}) {
		t.Errorf("concat row: got %v", g)
	}
}

func TestMergeSamples(t *testing.T) {
	u, err := profile.ReadTSV(strings.NewReader(unitData))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	g := group.New()
	g.Add("S1", "control")
	g.Add("S3", "control")

	m := u.MergeSamples(g)
	if s := m.Samples(); !reflect.DeepEqual(s, []string{"control", "S2"}) {
		t.Errorf("merge samples: got %v", s)
	}
	if v := m.Row("OTU1"); !reflect.DeepEqual(v, []float64{6.5, 0}) {
		t.Errorf("merge samples: row OTU1: got %v", v)
	}
}

func testUnits(t testing.TB, name string, u *profile.Table) {
	t.Helper()

	samples := []string{"S1", "S2", "S3"}
	if g := u.Samples(); !reflect.DeepEqual(g, samples) {
		t.Errorf("%s: samples: got %v, want %v", name, g, samples)
	}
	units := []string{"OTU1", "OTU2", "OTU3", "OTU4"}
	if g := u.Labels(); !reflect.DeepEqual(g, units) {
		t.Errorf("%s: units: got %v, want %v", name, g, units)
	}

	rows := map[string][]float64{
		"OTU1": {10, 0, 3},
		"OTU2": {4, 12, 0},
		"OTU3": {0, 1, 1},
		"OTU4": {6, 0, 0},
	}
	for l, w := range rows {
		if g := u.Row(l); !reflect.DeepEqual(g, w) {
			t.Errorf("%s: row %q: got %v, want %v", name, l, g, w)
		}
	}
}
