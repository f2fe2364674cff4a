// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"math"
	"slices"
	"strings"

	"github.com/js-arias/taxtree/taxonomy"
)

// MinSize is the default minimum size
// of a node.
const MinSize = 5

// A Node is a taxon in a taxonomy tree.
type Node struct {
	name  string
	level taxonomy.Level

	parent   *Node
	children []*Node

	profile float64
	size    float64
	minSize float64
	dist    float64

	// tree is the tree in which the node is registered.
	// The tree owns the node,
	// not the reverse.
	tree *Tree
}

// NewNode creates a new node
// with a name and a taxonomic level.
func NewNode(name string, level taxonomy.Level) *Node {
	return &Node{
		name:    name,
		level:   level,
		size:    MinSize,
		minSize: MinSize,
		dist:    1,
	}
}

// AddChild adds a node as a child of n
// and returns the child.
// Adding a child twice does not change the tree.
// If the child has a different parent,
// it is removed from the children
// of its previous parent.
func (n *Node) AddChild(child *Node) *Node {
	if child.parent != nil && child.parent != n {
		old := child.parent
		old.children = slices.DeleteFunc(old.children, func(c *Node) bool {
			return c == child
		})
	}
	if !slices.Contains(n.children, child) {
		n.children = append(n.children, child)
	}
	child.parent = n
	return child
}

// BranchLength returns the branch length of the node,
// i.e., the maximum dist of the nodes
// at the same level
// minus the size of the node.
// If the node is not in a tree,
// or it is the root,
// it returns its dist.
func (n *Node) BranchLength() float64 {
	if n.tree == nil || n.level == taxonomy.Root {
		return n.dist
	}
	same := n.tree.Level(n.level)
	if len(same) == 0 {
		return n.dist
	}

	max := math.Inf(-1)
	for _, o := range same {
		if o.dist > max {
			max = o.dist
		}
	}
	return max - n.size
}

// maxDist returns the maximum dist
// of the nodes of each level.
func (t *Tree) maxDist() map[taxonomy.Level]float64 {
	m := make(map[taxonomy.Level]float64, taxonomy.Depth)
	for n := range t.All() {
		if d, ok := m[n.level]; ok && d >= n.dist {
			continue
		}
		m[n.level] = n.dist
	}
	return m
}

// Children returns the children of a node.
func (n *Node) Children() []*Node {
	c := make([]*Node, len(n.children))
	copy(c, n.children)
	return c
}

// Dist returns the raw distance of the node,
// as calculated from its name
// and its size.
func (n *Node) Dist() float64 {
	return n.dist
}

// isAncestorOf returns true if n is o,
// or one of its ancestors.
func (n *Node) isAncestorOf(o *Node) bool {
	for a := o; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot returns true if the node does not have a parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Level returns the taxonomic level of the node.
func (n *Node) Level() taxonomy.Level {
	return n.level
}

// MinSize returns the minimum size of the node.
func (n *Node) MinSize() float64 {
	return n.minSize
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent of the node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Profile returns the profile
// (i.e., the relative abundance)
// of the node.
func (n *Node) Profile() float64 {
	return n.profile
}

// SetMinSize sets the minimum size of the node
// and updates its size.
func (n *Node) SetMinSize(min float64) {
	n.minSize = min
	n.update()
}

// SetProfile sets the profile of the node
// and updates its size and dist.
//
// The size of the node is the square root of the profile
// multiplied by 50,
// and it is never smaller than the minimum size.
// The dist of the node is 7 times the length of the name
// plus the size,
// plus 4.
func (n *Node) SetProfile(p float64) {
	n.profile = p
	n.update()
}

func (n *Node) update() {
	n.size = math.Max(math.Sqrt(n.profile)*50, n.minSize)
	n.dist = float64(len(n.name))*7 + n.size + 4
}

// Sisters returns the nodes
// with the same parent.
// If include is true,
// the node itself will be included.
func (n *Node) Sisters(include bool) []*Node {
	if n.parent == nil {
		return nil
	}
	var s []*Node
	for _, c := range n.parent.children {
		if c == n && !include {
			continue
		}
		s = append(s, c)
	}
	return s
}

// Size returns the size of the node.
func (n *Node) Size() float64 {
	return n.size
}

// String returns the subtree of the node
// in parenthetical notation,
// without the final semicolon.
func (n *Node) String() string {
	var b strings.Builder
	n.newick(&b)
	return b.String()
}

func (n *Node) newick(b *strings.Builder) {
	if len(n.children) > 0 {
		b.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				b.WriteByte(',')
			}
			c.newick(b)
		}
		b.WriteByte(')')
	}
	b.WriteString(quote(n.name))
}

// quote returns a name quoted,
// if it contains characters with special meaning
// in parenthetical notation.
func quote(name string) string {
	if !strings.ContainsAny(name, "()[]':;,") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// Tree returns the tree in which the node is registered.
func (n *Node) Tree() *Tree {
	return n.tree
}
