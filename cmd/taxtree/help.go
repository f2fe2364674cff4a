// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(abundanceFilesGuide)
	app.Add(assignmentFilesGuide)
	app.Add(environmentGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Taxtree requires several files to build a taxonomic tree. To reduce the burden
of keeping track of many files, a single project file is used to hold the
reference of all files required in the analysis. This guide explains the
structure of the file, but most of the time, the best way to edit or view this
file is by using taxtree commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# taxtree project files
	dataset	path
	abundance	otu_table.txt
	assignments	tax_assignments.txt
	groups	groups.txt

Relative paths are resolved from the directory of the project file.

The valid file types are:

- Unit abundances. Defined by the dataset keyword "abundance". This file
  contains the number of reads of each unit in each sample. The recommended
  way to add an abundance file is by using the command 'taxtree add'.
- Taxonomic assignments. Defined by the dataset keyword "assignments". This
  file contains the lineage of each unit. The recommended way to add an
  assignments file is by using the command 'taxtree add'.
- Sample groups. Defined by the dataset keyword "groups". This optional file
  contains the group of each sample, and it is used to merge the samples of
  the same group in the sample profiles.
	`,
}

var assignmentFilesGuide = &command.Command{
	Usage: "assignment-files",
	Short: "about taxonomic assignment files",
	Long: `
A taxonomic assignment file is a tab-delimited file without a header, with the
following fields:

	- unit        the identifier of a sequence unit (e.g., an OTU)
	- lineage     the lineage of the unit
	- confidence  an optional confidence value

Here is an example file:

	OTU1	k__Bacteria; p__Firmicutes; c__Bacilli; o__Lactobacillales; f__Lactobacillaceae; g__Lactobacillus; s__	1.000
	OTU2	k__Bacteria; p__Proteobacteria; c__Gammaproteobacteria	0.987

A lineage is a list of labels separated by semicolons, from kingdom to
species. Each label starts with the one letter code of its level, followed by
two underscores and the name of the taxon:

	k  kingdom
	p  phylum
	c  class
	o  order
	f  family
	g  genus
	s  species

When a lineage is normalized (for example, with 'taxtree normalize'), each
field is aligned with its level. If a level is missing, a synthetic label is
inserted, made from the letter of the level, the next field (up to 12
characters), and the suffix '_unidentified'. For example, the lineage

	k__Bacteria; c__Bacilli

is normalized as

	k__Bacteria;p__Bacilli_unidentified;c__Bacilli

Lineages are not extended beyond its last field, and labels without a name
(for example, 's__') are ignored when building tables and trees.

Lines starting with '#' are ignored.
	`,
}

var abundanceFilesGuide = &command.Command{
	Usage: "abundance-files",
	Short: "about unit abundance files",
	Long: `
A unit abundance file is a tab-delimited file in which each row is a sequence
unit, and each column is a sample. The first row is the header, with the
name of the unit column, followed by the sample identifiers. The values are
the number of reads (or any other non-negative abundance value) of each unit
in each sample.

Here is an example file:

	#OTU ID	S1	S2	S3
	OTU1	10	0	5
	OTU2	3	8	0

The header line can start with '#', as in the files produced by QIIME. Other
lines starting with '#' before the header are ignored.
	`,
}

var environmentGuide = &command.Command{
	Usage: "environment",
	Short: "about the environment variables",
	Long: `
The default values of some taxtree parameters can be set with environment
variables, either in the shell or in a file called '.env' in the working
directory. If a variable is defined in both places, the value in the shell is
used.

The variables are:

	TAXTREE_LEVEL  the reference level used to select the most abundant
	               taxa (default 'genus')
	TAXTREE_TOP    the number of taxa kept at the reference level
	               (default 20)
	TAXTREE_LOG    the level of the log messages (default 'info')

Here is an example file:

	TAXTREE_LEVEL=family
	TAXTREE_TOP=10

Flags of the commands always override the default values.
	`,
}
