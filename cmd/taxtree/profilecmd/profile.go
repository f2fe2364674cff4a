// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package profilecmd implements a command to write
// the relative abundance tables
// of a taxtree project.
package profilecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/config"
	"github.com/js-arias/taxtree/logger"
	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `profile [--level <level>] [--top <number>]
	[--rank <level>] [--total] [-o|--output <file>] <project-file>`,
	Short: "write relative abundance tables",
	Long: `
Command profile reads the taxonomic assignments and unit abundances of a
taxtree project, and writes the relative abundance of each taxon in each
sample.

The argument of the command is the name of the project file.

Before building the tables, only the units assigned to the most abundant taxa
at a reference level are kept. The reference level is set with the flag
--level (default 'genus'), and the number of taxa with the flag --top
(default 20). If --top is 0, all taxa are kept. The defaults can be changed
with environment variables (see 'taxtree help environment').

By default the relative abundance of all taxa, from kingdom to species, is
written. Use the flag --rank to write only the taxa of a given level.

If the flag --total is defined, the table is written with samples as rows,
and if the project has sample groups, the samples of each group are merged
using the mean value of the samples in the group.

By default the table is written to the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag string
var topFlag int
var rankFlag string
var totalFlag bool
var output string

func setFlags(c *command.Command) {
	cfg := config.Current()
	c.Flags().StringVar(&levelFlag, "level", cfg.Level.String(), "")
	c.Flags().IntVar(&topFlag, "top", cfg.Top, "")
	c.Flags().StringVar(&rankFlag, "rank", "", "")
	c.Flags().BoolVar(&totalFlag, "total", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	ref := taxonomy.ParseLevel(levelFlag)
	if !ref.IsRank() {
		return c.UsageError(fmt.Sprintf("invalid level %q", levelFlag))
	}
	rank := taxonomy.Unknown
	if rankFlag != "" {
		rank = taxonomy.ParseLevel(rankFlag)
		if !rank.IsRank() {
			return c.UsageError(fmt.Sprintf("invalid rank %q", rankFlag))
		}
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	lv, _, err := Levels(p, ref, topFlag)
	if err != nil {
		return err
	}

	t := lv.Total()
	if rank != taxonomy.Unknown {
		t = lv.Table(rank)
	}
	if totalFlag {
		t, err = SampleMajor(p, t)
		if err != nil {
			return err
		}
	}

	if output == "" {
		return writeTable(c.Stdout(), "stdout", t)
	}
	return writeFile(output, t)
}

// Levels reads the data of a project
// and returns the relative abundance tables
// of each taxonomic level,
// using the n most abundant taxa
// at the reference level.
// It also returns the normalized assignments.
func Levels(p *project.Project, ref taxonomy.Level, n int) (*profile.Levels, *taxonomy.Assignments, error) {
	a, err := p.Assignments()
	if err != nil {
		return nil, nil, err
	}
	a = a.Normalize()

	units, err := p.Abundance()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("data read",
		zap.Int("assigned", a.Len()),
		zap.Int("units", units.Len()),
		zap.Int("samples", len(units.Samples())),
	)

	lv := profile.NewLevels(units, a, ref, n)
	logger.Info("units selected",
		zap.String("level", ref.String()),
		zap.Int("top", n),
		zap.Int("units", lv.Units().Len()),
	)
	return lv, a, nil
}

// SampleMajor returns a table
// with samples as rows,
// merging the samples by the groups
// defined in the project.
func SampleMajor(p *project.Project, t *profile.Table) (*profile.Table, error) {
	g, err := p.Groups()
	if err != nil {
		return nil, err
	}
	if g != nil {
		t = t.MergeSamples(g)
		logger.Debug("samples merged", zap.Int("groups", len(t.Samples())))
	}
	return t.Transpose(), nil
}

func writeFile(name string, t *profile.Table) (err error) {
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

	return writeTable(f, name, t)
}

func writeTable(w io.Writer, name string, t *profile.Table) error {
	if err := t.TSV(w); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	return nil
}
