// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a taxonomy tree
// in which each node is annotated
// with its relative abundance.
package tree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/js-arias/taxtree/taxonomy"
)

// RootName is the name of the root node.
const RootName = "root"

// A Tree is a taxonomy tree.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

// New creates a new tree
// with only a root node.
func New() *Tree {
	root := NewNode(RootName, taxonomy.Root)
	t := &Tree{
		root:  root,
		nodes: map[string]*Node{RootName: root},
	}
	root.tree = t
	return t
}

// Build builds a tree from a set of lineages,
// and the profile of each taxon.
//
// Each lineage is a list of taxon labels,
// from the highest taxonomic level
// to the lowest.
// Labels in different lineages
// are the same node.
// If a label is not in the profile,
// or its level is unknown,
// the rest of the lineage is ignored.
// A label that is already an ancestor
// in the lineage
// also stops the lineage.
func Build(lineages [][]string, profile map[string]float64) *Tree {
	t := New()
	for _, ln := range lineages {
		parent := t.root
		for _, name := range ln {
			p, ok := profile[name]
			if !ok {
				break
			}
			n, ok := t.nodes[name]
			if !ok {
				lv := taxonomy.LevelOf(name)
				if !lv.IsRank() {
					break
				}
				n = NewNode(name, lv)
				t.nodes[name] = n
				n.tree = t
			}
			if n.isAncestorOf(parent) {
				break
			}
			parent.AddChild(n)
			n.SetProfile(p)
			parent = n
		}
	}
	return t
}

// AdjustProfile transforms the profile of each node
// into a proportion of the profile of its parent.
//
// For each set of sister nodes,
// the new profile of a node is the fraction
// of its profile
// over the sum of the profiles of the sisters,
// multiplied by the profile of the parent.
// If the parent profile is zero
// (as in the root)
// the fraction is used as the profile.
// Nodes without sisters are unchanged.
func (t *Tree) AdjustProfile() {
	orig := make([]float64, 0)
	for n := range t.root.LevelOrder(nil) {
		if len(n.children) < 2 {
			continue
		}

		orig = orig[:0]
		var sum float64
		for _, c := range n.children {
			orig = append(orig, c.profile)
			sum += c.profile
		}

		for i, c := range n.children {
			var percent float64
			if sum > 0 {
				percent = orig[i] / sum
			}
			if n.profile != 0 {
				c.SetProfile(percent * n.profile)
				continue
			}
			c.SetProfile(percent)
		}
	}
}

// All returns an iterator over all the nodes of the tree
// in level order.
func (t *Tree) All() iter.Seq[*Node] {
	return t.root.LevelOrder(nil)
}

// Contains returns true if a node with the given name
// is registered in the tree.
func (t *Tree) Contains(name string) bool {
	_, ok := t.nodes[name]
	return ok
}

// Insert registers a node in the tree.
// It returns an error if there is a node
// with the same name
// or the node is registered in a different tree.
//
// Insert does not link the node,
// use AddChild to add the node
// to a node of the tree.
func (t *Tree) Insert(n *Node) error {
	if _, ok := t.nodes[n.name]; ok {
		return fmt.Errorf("node %q already in tree", n.name)
	}
	if n.tree != nil && n.tree != t {
		return fmt.Errorf("node %q registered in another tree", n.name)
	}
	t.nodes[n.name] = n
	n.tree = t
	return nil
}

// Len returns the number of nodes in the tree,
// including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Level returns the nodes at a given taxonomic level
// in level order.
func (t *Tree) Level(lv taxonomy.Level) []*Node {
	var ls []*Node
	for n := range t.All() {
		if n.level == lv {
			ls = append(ls, n)
		}
	}
	return ls
}

// Names returns the names of the nodes
// in the tree.
func (t *Tree) Names() []string {
	names := make([]string, 0, len(t.nodes))
	for n := range t.nodes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Node returns a node by its name.
func (t *Tree) Node(name string) (*Node, bool) {
	n, ok := t.nodes[name]
	return n, ok
}

// Root returns the root of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// String returns the tree in parenthetical notation.
func (t *Tree) String() string {
	return t.root.String() + ";"
}
