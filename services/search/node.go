// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

// NodeID addresses a node inside its Tree.
type NodeID int

// NoParent is the parent ID of a root node.
const NoParent NodeID = -1

// -----------------------------------------------------------------------------
// Tree
// -----------------------------------------------------------------------------

// Tree is an arena holding every node created during one search run.
//
// Description:
//
//	Nodes are appended and never removed or modified, so a node's ID is its
//	index and parent links always point to a smaller ID. The structure is a
//	tree by construction: every node has exactly one creation event and at
//	most one parent.
//
//	The arena keeps all nodes alive until the Tree itself is dropped.
//
// Thread Safety: Not safe for concurrent writes. Safe for concurrent reads
// once the owning search has returned.
type Tree[S any] struct {
	nodes []*Node[S]
}

// NewTree creates an empty arena.
func NewTree[S any]() *Tree[S] {
	return &Tree[S]{}
}

// Root adds a parentless node for state with heuristic estimate h.
func (t *Tree[S]) Root(state S, h float64) *Node[S] {
	n := &Node[S]{
		tree:      t,
		id:        NodeID(len(t.nodes)),
		parent:    NoParent,
		state:     state,
		heuristic: h,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Child adds the node reached from parent by applying action.
//
// Path cost accumulates as parent.PathCost() + action.Cost. No validation
// is performed.
func (t *Tree[S]) Child(parent *Node[S], action Action[S], h float64) *Node[S] {
	a := action
	n := &Node[S]{
		tree:      t,
		id:        NodeID(len(t.nodes)),
		parent:    parent.id,
		state:     action.Effect,
		action:    &a,
		pathCost:  parent.pathCost + action.Cost,
		heuristic: h,
		depth:     parent.depth + 1,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Node returns the node with the given ID, or nil if out of range.
func (t *Tree[S]) Node(id NodeID) *Node[S] {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree[S]) Len() int {
	return len(t.nodes)
}

// -----------------------------------------------------------------------------
// Node
// -----------------------------------------------------------------------------

// Node is one point in the search tree.
//
// Thread Safety: Immutable after creation, safe for concurrent use.
type Node[S any] struct {
	tree      *Tree[S]
	id        NodeID
	parent    NodeID
	state     S
	action    *Action[S]
	pathCost  float64
	heuristic float64
	depth     int
}

// ID returns the node's index in its tree.
func (n *Node[S]) ID() NodeID { return n.id }

// ParentID returns the parent's ID, or NoParent for the root.
func (n *Node[S]) ParentID() NodeID { return n.parent }

// Parent returns the parent node, or nil for the root.
func (n *Node[S]) Parent() *Node[S] {
	if n.parent == NoParent {
		return nil
	}
	return n.tree.Node(n.parent)
}

// IsRoot reports whether the node has no parent.
func (n *Node[S]) IsRoot() bool { return n.parent == NoParent }

// State returns the state held by the node.
func (n *Node[S]) State() S { return n.state }

// Action returns the action that produced the node. ok is false for the root.
func (n *Node[S]) Action() (action Action[S], ok bool) {
	if n.action == nil {
		return action, false
	}
	return *n.action, true
}

// PathCost returns the accumulated cost from the root.
func (n *Node[S]) PathCost() float64 { return n.pathCost }

// Heuristic returns the estimate computed when the node was created.
func (n *Node[S]) Heuristic() float64 { return n.heuristic }

// F returns path cost plus heuristic, the ordering key of A* and beam search.
func (n *Node[S]) F() float64 { return n.pathCost + n.heuristic }

// Depth returns the number of actions between the root and the node.
func (n *Node[S]) Depth() int { return n.depth }

// Path returns the actions leading from the root to the node.
func (n *Node[S]) Path() []Action[S] {
	return ReconstructPath(n)
}
