// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package normalize implements a command to write
// the normalized taxonomic assignments
// of a taxtree project.
package normalize

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/logger"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "normalize [-o|--output <file>] [--update] <project-file>",
	Short: "normalize the lineages of a project",
	Long: `
Command normalize reads the taxonomic assignments of a taxtree project, and
writes them with the lineages normalized, so each field of a lineage is
aligned with its taxonomic level. Missing levels are filled with a synthetic
label (see 'taxtree help assignment-files').

The argument of the command is the name of the project file.

By default the normalized assignments are written to the standard output. Use
the flag --output, or -o, to define an output file.

If the flag --update is defined, the normalized assignments will be used as
the assignments of the project. If no output file is given, the file will be
called 'tax_assignments_normalized.tab'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var updateFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&updateFlag, "update", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	a, err := p.Assignments()
	if err != nil {
		return err
	}
	na := a.Normalize()

	var changed int
	for _, u := range a.Units() {
		if a.Lineage(u) != na.Lineage(u) {
			changed++
		}
	}
	logger.Info("lineages normalized",
		zap.Int("units", na.Len()),
		zap.Int("changed", changed),
	)

	if updateFlag && output == "" {
		output = "tax_assignments_normalized.tab"
	}
	if output == "" {
		return writeAssignments(c.Stdout(), "stdout", na)
	}

	if err := writeFile(output, na); err != nil {
		return err
	}
	if updateFlag {
		p.Add(project.Assignments, p.Rel(output))
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, a *taxonomy.Assignments) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	return writeAssignments(f, name, a)
}

func writeAssignments(w io.Writer, name string, a *taxonomy.Assignments) error {
	if err := a.TSV(w); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
