// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a dataset
// to a taxtree project.
package add

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/group"
	"github.com/js-arias/taxtree/logger"
	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: "add --type <dataset> <project-file> <data-file>",
	Short: "add a dataset to a taxtree project",
	Long: `
Command add reads a data file, checks that it is valid, and adds it to a
taxtree project. If the project file does not exist, it will be created.

The first argument of the command is the name of the project file. The second
argument is the data file.

The flag --type is required and defines the kind of dataset. Valid values are:

	abundance    the number of reads of each unit in each sample
	assignments  the lineage of each unit
	groups       the group of each sample

If the project already has a file for the dataset, it will be replaced with
the new one.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting data file")
	}
	if typeFlag == "" {
		return c.UsageError("flag --type must be defined")
	}
	set, err := project.ParseDataset(typeFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	p, err := project.Read(args[0])
	if errors.Is(err, fs.ErrNotExist) {
		p = project.New()
		p.SetName(args[0])
	} else if err != nil {
		return err
	}

	name := args[1]
	if err := validate(set, name); err != nil {
		return err
	}

	path := p.Rel(name)
	if prev := p.Add(set, path); prev != "" && prev != path {
		logger.Info("dataset replaced",
			zap.String("dataset", string(set)),
			zap.String("previous", prev),
		)
	}
	if err := p.Write(); err != nil {
		return err
	}
	logger.Info("dataset added",
		zap.String("project", p.Name()),
		zap.String("dataset", string(set)),
		zap.String("file", name),
	)
	return nil
}

func validate(set project.Dataset, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	var n int
	switch set {
	case project.Abundance:
		var t *profile.Table
		t, err = profile.ReadTSV(f)
		if t != nil {
			n = t.Len()
		}
	case project.Assignments:
		var a *taxonomy.Assignments
		a, err = taxonomy.ReadTSV(f)
		if a != nil {
			n = a.Len()
		}
	case project.Groups:
		var g *group.Groups
		g, err = group.ReadTSV(f)
		if g != nil {
			n = len(g.Samples())
		}
	}
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if n == 0 {
		return fmt.Errorf("on file %q: empty %s dataset", name, set)
	}
	return nil
}
