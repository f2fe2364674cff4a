// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package build implements a command to build
// the taxonomy tree of a taxtree project.
package build

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/cmd/taxtree/profilecmd"
	"github.com/js-arias/taxtree/config"
	"github.com/js-arias/taxtree/logger"
	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
	"github.com/js-arias/taxtree/tree"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Command = &command.Command{
	Usage: `build [--level <level>] [--top <number>] [--min-size <value>]
	[-o|--output <prefix>] [--verbose] <project-file>`,
	Short: "build a taxonomy tree",
	Long: `
Command build reads the taxonomic assignments and unit abundances of a
taxtree project, and builds a taxonomy tree in which each node is a taxon,
annotated with its relative abundance.

The argument of the command is the name of the project file.

Only the units assigned to the most abundant taxa at a reference level are
used. The reference level is set with the flag --level (default 'genus'), and
the number of taxa with the flag --top (default 20). If --top is 0, all taxa
are used.

The profile of each node is the mean relative abundance of the taxon over all
samples. After the tree is built, the profile of each node is adjusted so the
profiles of a set of sister nodes add up to the profile of their parent. The
size of each node is proportional to the square root of its profile, but never
smaller than a minimum size, set with the flag --min-size (default 5).

The command writes three files:

	tax_tree.nwk  the tree in Newick format
	nodes.tab     a table with the attributes of each node
	profile.tab   the relative abundance of each taxon in each sample,
	              with samples as rows, and the samples of the same group
	              merged if the project has sample groups

Use the flag --output, or -o, to set a prefix for the name of the output
files.

The flag --verbose prints the details of the process.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag string
var topFlag int
var minSize float64
var output string
var verboseFlag bool

func setFlags(c *command.Command) {
	cfg := config.Current()
	c.Flags().StringVar(&levelFlag, "level", cfg.Level.String(), "")
	c.Flags().IntVar(&topFlag, "top", cfg.Top, "")
	c.Flags().Float64Var(&minSize, "min-size", tree.MinSize, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&verboseFlag, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	ref := taxonomy.ParseLevel(levelFlag)
	if !ref.IsRank() {
		return c.UsageError(fmt.Sprintf("invalid level %q", levelFlag))
	}
	if minSize < 0 {
		return c.UsageError("flag --min-size must be a non-negative value")
	}
	if verboseFlag {
		if err := logger.Init(zapcore.DebugLevel); err != nil {
			return err
		}
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	lv, a, err := profilecmd.Levels(p, ref, topFlag)
	if err != nil {
		return err
	}

	total := lv.Total()
	t := buildTree(lv.Units(), a, total)
	for n := range t.All() {
		n.SetMinSize(minSize)
	}
	t.AdjustProfile()
	logger.Info("tree built",
		zap.Int("nodes", t.Len()),
		zap.Int("terminals", countLeaves(t)),
	)

	sm, err := profilecmd.SampleMajor(p, total)
	if err != nil {
		return err
	}

	newick := func(w io.Writer) error {
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
	if err := writeFile(output+"tax_tree.nwk", newick); err != nil {
		return err
	}
	if err := writeFile(output+"nodes.tab", t.TSV); err != nil {
		return err
	}
	if err := writeFile(output+"profile.tab", sm.TSV); err != nil {
		return err
	}
	return nil
}

// buildTree builds the tree
// using the lineages of the selected units,
// in the order of the assignments.
func buildTree(units *profile.Table, a *taxonomy.Assignments, total *profile.Table) *tree.Tree {
	prof := total.Means()
	lineages := make([][]string, 0, units.Len())
	names := make([]string, 0, units.Len())
	for _, u := range a.Units() {
		if !units.Has(u) {
			continue
		}
		ln := a.Labels(u)
		if len(ln) == 0 {
			logger.Debug("unit without lineage", zap.String("unit", u))
			continue
		}
		lineages = append(lineages, ln)
		names = append(names, u)
	}

	t := tree.Build(lineages, prof)
	for i, ln := range lineages {
		for _, l := range ln {
			if t.Contains(l) {
				continue
			}
			logger.Debug("lineage truncated",
				zap.String("unit", names[i]),
				zap.String("label", l),
			)
			break
		}
	}
	return t
}

func countLeaves(t *tree.Tree) int {
	var n int
	for nd := range t.All() {
		if nd.IsLeaf() && !nd.IsRoot() {
			n++
		}
	}
	return n
}

func writeFile(name string, write func(io.Writer) error) (err error) {
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

	if err := write(f); err != nil {
		return fmt.Errorf("while writing %q: %v", name, err)
	}
	logger.Info("file written", zap.String("file", name))
	return nil
}
