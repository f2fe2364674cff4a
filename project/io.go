// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/taxtree/group"
	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/taxonomy"
)

// Abundance reads the unit abundance table
// as defined in a project.
func (p *Project) Abundance() (*profile.Table, error) {
	name := p.File(Abundance)
	if name == "" {
		return nil, fmt.Errorf("abundance table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := profile.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// Assignments reads the taxonomic assignments
// as defined in a project.
func (p *Project) Assignments() (*taxonomy.Assignments, error) {
	name := p.File(Assignments)
	if name == "" {
		return nil, fmt.Errorf("taxonomic assignments not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := taxonomy.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return a, nil
}

// Groups reads the sample groups
// as defined in a project.
// If no group file is defined
// it returns nil.
func (p *Project) Groups() (*group.Groups, error) {
	name := p.File(Groups)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := group.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return g, nil
}
