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

import (
	"log/slog"
	"time"
)

// Strategy is a search algorithm bound to one Problem.
//
// Thread Safety: Not safe for concurrent use. A strategy may be reused
// sequentially; each Search call starts from a fresh tree.
type Strategy[S any] interface {
	// Algorithm returns the registry identifier of the strategy.
	Algorithm() Algorithm

	// Search runs to completion and returns the first goal node found, or
	// nil when the frontier is exhausted (NoSolution).
	Search() *Node[S]

	// Stats returns counters from the most recent Search call.
	Stats() Stats

	// Tree returns the arena built by the most recent Search call.
	Tree() *Tree[S]
}

// Stats holds per-run counters.
type Stats struct {
	// NodesGenerated counts every node added to the tree, root included.
	NodesGenerated int

	// NodesExpanded counts nodes whose actions were generated.
	NodesExpanded int

	// DuplicatesSkipped counts popped nodes whose state was already
	// explored. Always zero for strategies without an explored set.
	DuplicatesSkipped int

	// StatesExplored counts distinct states in the explored set at the end
	// of the run. Always zero for strategies without an explored set.
	StatesExplored int

	// MaxFrontier is the largest frontier (or beam generation) observed.
	MaxFrontier int

	// Generations counts beam generations. Zero for other strategies.
	Generations int

	// Duration is the wall time of the run.
	Duration time.Duration
}

// -----------------------------------------------------------------------------
// Shared Machinery
// -----------------------------------------------------------------------------

// base carries what every strategy needs: the problem, a logger, the tree
// of the current run and its counters.
type base[S any] struct {
	algorithm Algorithm
	problem   Problem[S]
	logger    *slog.Logger
	tree      *Tree[S]
	stats     Stats
	started   time.Time
}

func newBase[S any](algorithm Algorithm, problem Problem[S], logger *slog.Logger) base[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return base[S]{
		algorithm: algorithm,
		problem:   problem,
		logger:    logger.With(slog.String("component", "search"), slog.String("algorithm", string(algorithm))),
		tree:      NewTree[S](),
	}
}

// Algorithm returns the registry identifier.
func (b *base[S]) Algorithm() Algorithm { return b.algorithm }

// Stats returns counters from the most recent run.
func (b *base[S]) Stats() Stats { return b.stats }

// Tree returns the arena of the most recent run.
func (b *base[S]) Tree() *Tree[S] { return b.tree }

// begin resets per-run state and creates the root node.
func (b *base[S]) begin() *Node[S] {
	b.tree = NewTree[S]()
	b.stats = Stats{}
	b.started = time.Now()

	initial := b.problem.InitialState()
	root := b.tree.Root(initial, b.problem.Heuristic(initial))
	b.stats.NodesGenerated = 1
	b.logger.Debug("search started")
	return root
}

// finish records the duration and logs the outcome.
func (b *base[S]) finish(terminal *Node[S]) *Node[S] {
	b.stats.Duration = time.Since(b.started)
	if terminal == nil {
		b.logger.Debug("search exhausted without solution",
			slog.Int("nodes_expanded", b.stats.NodesExpanded),
			slog.Duration("duration", b.stats.Duration),
		)
		return nil
	}
	b.logger.Debug("search found goal",
		slog.Int("depth", terminal.Depth()),
		slog.Float64("path_cost", terminal.PathCost()),
		slog.Int("nodes_expanded", b.stats.NodesExpanded),
		slog.Duration("duration", b.stats.Duration),
	)
	return terminal
}

// expand creates one child per applicable action of node.
func (b *base[S]) expand(node *Node[S]) []*Node[S] {
	actions := b.problem.Actions(node.State())
	b.stats.NodesExpanded++
	children := make([]*Node[S], 0, len(actions))
	for _, action := range actions {
		children = append(children, b.tree.Child(node, action, b.problem.Heuristic(action.Effect)))
	}
	b.stats.NodesGenerated += len(children)
	return children
}

func (b *base[S]) observeFrontier(size int) {
	if size > b.stats.MaxFrontier {
		b.stats.MaxFrontier = size
	}
}
