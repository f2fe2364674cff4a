// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/taxtree/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.Assignments, "tax_assignments.txt"},
		{project.Abundance, "otu_table.txt"},
		{project.Groups, "groups.txt"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := "tmp-project-for-test.tab"
	defer os.Remove(name)

	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)

	if prev := np.Add(project.Groups, ""); prev != "groups.txt" {
		t.Errorf("remove: got previous %q, want %q", prev, "groups.txt")
	}
	if np.Path(project.Groups) != "" {
		t.Errorf("remove: dataset %q still defined", project.Groups)
	}
}

func TestFile(t *testing.T) {
	p := project.New()
	p.SetName(filepath.Join("data", "project.tab"))
	p.Add(project.Abundance, "otu_table.txt")

	want := filepath.Join("data", "otu_table.txt")
	if g := p.File(project.Abundance); g != want {
		t.Errorf("relative file: got %q, want %q", g, want)
	}

	abs, err := filepath.Abs("otu_table.txt")
	if err != nil {
		t.Fatalf("unable to build absolute path: %v", err)
	}
	p.Add(project.Abundance, abs)
	if g := p.File(project.Abundance); g != abs {
		t.Errorf("absolute file: got %q, want %q", g, abs)
	}
}

func TestRel(t *testing.T) {
	p := project.New()
	p.SetName("project.tab")
	if g := p.Rel("otu_table.txt"); g != "otu_table.txt" {
		t.Errorf("rel: got %q, want %q", g, "otu_table.txt")
	}

	p.SetName(filepath.Join("data", "project.tab"))
	want := "otu_table.txt"
	if g := p.Rel(filepath.Join("data", "otu_table.txt")); g != want {
		t.Errorf("rel: got %q, want %q", g, want)
	}
	want = filepath.Join("..", "otu_table.txt")
	if g := p.Rel("otu_table.txt"); g != want {
		t.Errorf("rel: got %q, want %q", g, want)
	}

	// the stored path opens the same file
	p.Add(project.Abundance, p.Rel("otu_table.txt"))
	if g := p.File(project.Abundance); g != "otu_table.txt" {
		t.Errorf("file: got %q, want %q", g, "otu_table.txt")
	}
}

func TestParseDataset(t *testing.T) {
	if d, err := project.ParseDataset(" Abundance "); err != nil || d != project.Abundance {
		t.Errorf("parse dataset: got %q, %v", d, err)
	}
	if _, err := project.ParseDataset("trees"); err == nil {
		t.Errorf("parse dataset: expecting error for unknown dataset")
	}
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}
