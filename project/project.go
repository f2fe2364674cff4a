// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of taxtree project files.
//
// A taxtree project is a tab-delimited file (TSV)
// that keeps the paths of the data files
// (taxonomic assignments, unit abundances,
// and sample groups)
// used by taxtree commands.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the abundance of each unit
	// in each sample.
	Abundance Dataset = "abundance"

	// File for the taxonomic assignments
	// (the lineage) of each unit.
	Assignments Dataset = "assignments"

	// File for the groups of the samples.
	Groups Dataset = "groups"
)

// ParseDataset returns the dataset
// with the given keyword.
func ParseDataset(s string) (Dataset, error) {
	d := Dataset(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Abundance, Assignments, Groups:
		return d, nil
	}
	return "", fmt.Errorf("unknown dataset %q", s)
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file.
//
// The project file must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Relative paths are relative
// to the directory of the project file.
//
// Here is an example file:
//
//	# taxtree project files
//	dataset	path
//	assignments	tax_assignments.txt
//	abundance	otu_table.txt
//	groups	groups.txt
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

func read(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		fields[strings.ToLower(h)] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		set, err := ParseDataset(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "path"
		p.Add(set, row[fields[f]])
	}
	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	path = strings.TrimSpace(path)
	if path == "" {
		delete(p.paths, set)
		return prev
	}
	p.paths[set] = path
	return prev
}

// Name returns the file name of the project.
func (p *Project) Name() string {
	return p.name
}

// Path returns the path of the given dataset,
// as stored in the project.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// File returns the path of a dataset
// that can be used to open the file.
// If the path is relative,
// it is joined with the directory of the project.
func (p *Project) File(set Dataset) string {
	path := p.paths[set]
	if path == "" || filepath.IsAbs(path) || p.name == "" {
		return path
	}
	return filepath.Join(filepath.Dir(p.name), path)
}

// Rel returns the path of a file,
// given relative to the working directory,
// as it should be stored in the project,
// i.e., relative to the directory of the project.
// If the path can not be made relative
// it returns the absolute path.
func (p *Project) Rel(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	dir := filepath.Dir(p.name)
	if p.name == "" || dir == "." {
		return name
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return name
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(absDir, abs)
	if err != nil {
		return abs
	}
	return rel
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	sets := make([]Dataset, 0, len(p.paths))
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into its file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.write(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

func (p *Project) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxtree project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
