// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"iter"
	"slices"
)

// A Strategy is a way to traverse a tree.
type Strategy int

// Valid traversal strategies.
const (
	// LevelOrder visits the nodes breadth-first:
	// first the start node,
	// then its children,
	// then its grand children,
	// and so on.
	LevelOrder Strategy = iota

	// PreOrder visits each node
	// before its children.
	PreOrder

	// PostOrder visits each node
	// after its children.
	PostOrder
)

// Traverse returns an iterator over the nodes
// of the subtree of n,
// using the given strategy.
//
// If isLeaf is defined,
// nodes for which isLeaf returns true
// are visited,
// but their descendants are not.
func (n *Node) Traverse(s Strategy, isLeaf func(*Node) bool) iter.Seq[*Node] {
	switch s {
	case PreOrder:
		return n.PreOrder(isLeaf)
	case PostOrder:
		return n.PostOrder(isLeaf)
	}
	return n.LevelOrder(isLeaf)
}

// LevelOrder returns an iterator
// that visits the nodes of the subtree of n
// in level order.
func (n *Node) LevelOrder(isLeaf func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		queue := []*Node{n}
		for len(queue) > 0 {
			nd := queue[0]
			queue = queue[1:]
			if !yield(nd) {
				return
			}
			if isLeaf != nil && isLeaf(nd) {
				continue
			}
			queue = append(queue, nd.children...)
		}
	}
}

// PreOrder returns an iterator
// that visits the nodes of the subtree of n
// in pre-order.
func (n *Node) PreOrder(isLeaf func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		stack := []*Node{n}
		for len(stack) > 0 {
			nd := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(nd) {
				return
			}
			if isLeaf != nil && isLeaf(nd) {
				continue
			}
			for _, c := range slices.Backward(nd.children) {
				stack = append(stack, c)
			}
		}
	}
}

// PostOrder returns an iterator
// that visits the nodes of the subtree of n
// in post-order.
// By default,
// a node without children is a leaf.
func (n *Node) PostOrder(isLeaf func(*Node) bool) iter.Seq[*Node] {
	if isLeaf == nil {
		isLeaf = (*Node).IsLeaf
	}

	type visit struct {
		node *Node
		done bool
	}
	return func(yield func(*Node) bool) {
		stack := []visit{{node: n}}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if v.done || isLeaf(v.node) {
				if !yield(v.node) {
					return
				}
				continue
			}

			stack = append(stack, visit{node: v.node, done: true})
			for _, c := range slices.Backward(v.node.children) {
				stack = append(stack, visit{node: c})
			}
		}
	}
}
