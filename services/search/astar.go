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

import "log/slog"

// bestFirst is graph search over a priority frontier. UCS and A* differ only
// in the priority function.
type bestFirst[S any] struct {
	base[S]
	priority func(*Node[S]) float64
}

// Search pops the lowest-priority node until a goal is popped or the
// frontier empties.
//
// Description:
//
//	The goal test is applied on pop, before the explored-set check, so the
//	first goal popped is returned even if an equal state was expanded
//	earlier. A non-goal state popped a second time is skipped. Children are
//	pushed without checking the explored set; stale entries are discarded
//	when popped.
func (s *bestFirst[S]) Search() *Node[S] {
	frontier := newPriorityFrontier[S]()
	explored := newExploredSet(s.problem)

	root := s.begin()
	frontier.PushNode(root, s.priority(root))
	s.observeFrontier(frontier.Len())

	for frontier.Len() > 0 {
		node := frontier.PopNode()
		if s.problem.GoalTest(node.State()) {
			s.stats.StatesExplored = explored.Len()
			return s.finish(node)
		}
		if !explored.Add(node.State()) {
			s.stats.DuplicatesSkipped++
			continue
		}
		for _, child := range s.expand(node) {
			frontier.PushNode(child, s.priority(child))
		}
		s.observeFrontier(frontier.Len())
	}
	s.stats.StatesExplored = explored.Len()
	return s.finish(nil)
}

// AStarSearch is best-first graph search on f(n) = path cost + heuristic.
//
// Description:
//
//	Optimal when the heuristic never overestimates the remaining cost and
//	is consistent. States are deduplicated by value (see StateHasher and
//	StateEqualer). Among nodes with equal f the one queued first is popped
//	first.
type AStarSearch[S any] struct {
	bestFirst[S]
}

// NewAStarSearch binds an A* strategy to problem.
func NewAStarSearch[S any](problem Problem[S], logger *slog.Logger) (*AStarSearch[S], error) {
	if problem == nil {
		return nil, &AlgorithmError{Algorithm: string(AStar), Operation: "New", Err: ErrNilProblem}
	}
	return &AStarSearch[S]{bestFirst[S]{
		base:     newBase(AStar, problem, logger),
		priority: (*Node[S]).F,
	}}, nil
}

// UniformCostSearch is best-first graph search on path cost alone. The
// heuristic is still computed per node but does not affect ordering.
type UniformCostSearch[S any] struct {
	bestFirst[S]
}

// NewUniformCostSearch binds a UCS strategy to problem.
func NewUniformCostSearch[S any](problem Problem[S], logger *slog.Logger) (*UniformCostSearch[S], error) {
	if problem == nil {
		return nil, &AlgorithmError{Algorithm: string(UniformCost), Operation: "New", Err: ErrNilProblem}
	}
	return &UniformCostSearch[S]{bestFirst[S]{
		base:     newBase(UniformCost, problem, logger),
		priority: (*Node[S]).PathCost,
	}}, nil
}
