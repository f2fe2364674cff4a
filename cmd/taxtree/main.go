// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Taxtree is a tool to build taxonomic trees
// from the taxonomic assignments
// and abundances of sequence units.
package main

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/cmd/taxtree/add"
	"github.com/js-arias/taxtree/cmd/taxtree/build"
	"github.com/js-arias/taxtree/cmd/taxtree/normalize"
	"github.com/js-arias/taxtree/cmd/taxtree/plot"
	"github.com/js-arias/taxtree/cmd/taxtree/prj"
	"github.com/js-arias/taxtree/cmd/taxtree/profilecmd"
	"github.com/js-arias/taxtree/config"
	"github.com/js-arias/taxtree/logger"
)

var app = &command.Command{
	Usage: "taxtree <command> [<argument>...]",
	Short: "a tool to build taxonomic trees of sequence units",
}

func init() {
	app.Add(add.Command)
	app.Add(build.Command)
	app.Add(normalize.Command)
	app.Add(plot.Command)
	app.Add(prj.Command)
	app.Add(profilecmd.Command)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "taxtree: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "taxtree: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app.Main()
}
