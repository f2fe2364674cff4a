// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a taxtree project and prints the information of the
different project datasets into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	w := c.Stdout()
	if p.Path(project.Assignments) != "" {
		if err := printAssignments(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.Abundance) != "" {
		if err := printAbundance(w, p); err != nil {
			return err
		}
	}
	if p.Path(project.Groups) != "" {
		if err := printGroups(w, p); err != nil {
			return err
		}
	}
	return nil
}

func printAssignments(w io.Writer, p *project.Project) error {
	a, err := p.Assignments()
	if err != nil {
		return err
	}
	a = a.Normalize()

	fmt.Fprintf(w, "Taxonomic assignments:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Assignments))
	fmt.Fprintf(w, "\tunits: %d\n", a.Len())
	for _, lv := range taxonomy.Levels() {
		taxa := make(map[string]bool)
		for _, l := range a.AtLevel(lv) {
			taxa[l] = true
		}
		fmt.Fprintf(w, "\t%s: %d\n", lv, len(taxa))
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printAbundance(w io.Writer, p *project.Project) error {
	t, err := p.Abundance()
	if err != nil {
		return err
	}

	var reads float64
	for _, s := range t.ColumnSums() {
		reads += s
	}

	fmt.Fprintf(w, "Unit abundances:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Abundance))
	fmt.Fprintf(w, "\tunits: %d\n", t.Len())
	fmt.Fprintf(w, "\tsamples: %d\n", len(t.Samples()))
	fmt.Fprintf(w, "\treads: %.0f\n", reads)
	fmt.Fprintf(w, "\n")
	return nil
}

func printGroups(w io.Writer, p *project.Project) error {
	g, err := p.Groups()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Sample groups:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Groups))
	fmt.Fprintf(w, "\tsamples: %d\n", len(g.Samples()))
	fmt.Fprintf(w, "\tgroups: %d\n", len(g.Names()))
	fmt.Fprintf(w, "\n")
	return nil
}
