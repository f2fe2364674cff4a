// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// the relative abundance of the taxa
// of each sample.
package plot

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/taxtree/cmd/taxtree/profilecmd"
	"github.com/js-arias/taxtree/config"
	"github.com/js-arias/taxtree/logger"
	"github.com/js-arias/taxtree/palette"
	"github.com/js-arias/taxtree/profile"
	"github.com/js-arias/taxtree/project"
	"github.com/js-arias/taxtree/taxonomy"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [--level <level>] [--top <number>] [--rank <level>]
	[--scheme <name>] [--key <file>] [--merge]
	[-o|--output <file>] <project-file>`,
	Short: "draw a bar chart of the taxa of each sample",
	Long: `
Command plot reads the taxonomic assignments and unit abundances of a
taxtree project, and draws a stacked bar chart with the relative abundance of
the taxa of a given rank in each sample.

The argument of the command is the name of the project file.

Only the units assigned to the most abundant taxa at a reference level are
used. The reference level is set with the flag --level (default 'genus'), and
the number of taxa with the flag --top (default 20). If --top is 0, all taxa
are used.

By default the taxa of the reference level are drawn. Use the flag --rank to
draw the taxa of a different level.

If the flag --merge is defined, and the project has sample groups, the
samples of each group are merged, using the mean value of the samples in the
group.

The colors of the taxa are taken from a color scheme, set with the flag
--scheme. Valid values are:

	rainbow       a rainbow from purple to red (default)
	iridescent    a sequential color-blind safe scheme
	incandescent  a sequential color-blind safe scheme
	brewer        a qualitative scheme

The flag --key defines a tab-delimited file with the colors of particular
taxa. The file must have the columns 'taxon' and 'color'. Colors are defined
as comma separated RGB values (for example '0,68,126'), or as hexadecimal
values (for example '#00447e'). Taxa not in the key are colored using the
color scheme.

By default the chart is saved as 'profile.png'. Use the flag --output, or -o,
to set a different file. The format of the file is defined by its extension
(for example, '.svg', '.pdf', or '.png').
	`,
	SetFlags: setFlags,
	Run:      run,
}

var levelFlag string
var topFlag int
var rankFlag string
var schemeFlag string
var keyFile string
var mergeFlag bool
var output string

func setFlags(c *command.Command) {
	cfg := config.Current()
	c.Flags().StringVar(&levelFlag, "level", cfg.Level.String(), "")
	c.Flags().IntVar(&topFlag, "top", cfg.Top, "")
	c.Flags().StringVar(&rankFlag, "rank", "", "")
	c.Flags().StringVar(&schemeFlag, "scheme", "rainbow", "")
	c.Flags().StringVar(&keyFile, "key", "", "")
	c.Flags().BoolVar(&mergeFlag, "merge", false, "")
	c.Flags().StringVar(&output, "output", "profile.png", "")
	c.Flags().StringVar(&output, "o", "profile.png", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	ref := taxonomy.ParseLevel(levelFlag)
	if !ref.IsRank() {
		return c.UsageError(fmt.Sprintf("invalid level %q", levelFlag))
	}
	rank := ref
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
	lv, _, err := profilecmd.Levels(p, ref, topFlag)
	if err != nil {
		return err
	}

	t := lv.Table(rank)
	if mergeFlag {
		g, err := p.Groups()
		if err != nil {
			return err
		}
		if g != nil {
			t = t.MergeSamples(g)
		}
	}
	if t.Len() == 0 {
		return fmt.Errorf("no taxa at level %s", rank)
	}

	var key *palette.Key
	if keyFile != "" {
		key, err = readKey(keyFile)
		if err != nil {
			return err
		}
	}

	if err := makePlot(t, rank, palette.Scheme(schemeFlag), key); err != nil {
		return err
	}
	logger.Info("chart written",
		zap.String("file", output),
		zap.String("rank", rank.String()),
		zap.Int("taxa", t.Len()),
	)
	return nil
}

func readKey(name string) (*palette.Key, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := palette.ReadKey(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return k, nil
}

func makePlot(t *profile.Table, rank taxonomy.Level, g palette.Gradienter, key *palette.Key) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Relative abundance (%s)", rank)
	p.Y.Label.Text = "relative abundance"
	p.Y.Min = 0
	p.Y.Max = 1
	p.Legend.Top = true
	p.Legend.Left = false

	samples := t.Samples()
	w := vg.Points(20)

	labels := t.Labels()
	var prev *plotter.BarChart
	for i, l := range labels {
		bars, err := plotter.NewBarChart(plotter.Values(t.Row(l)), w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = palette.Sample(g, i, len(labels))
		if c, ok := key.Color(l); ok {
			bars.Color = c
		}

		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(l, bars)
		prev = bars
	}
	p.NominalX(samples...)

	width := vg.Length(len(samples))*vg.Points(30) + 4*vg.Inch
	if err := p.Save(width, 5*vg.Inch, output); err != nil {
		return err
	}
	return nil
}
