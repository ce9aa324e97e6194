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

// BreadthFirstSearch expands nodes in FIFO order.
//
// Description:
//
//	Uninformed tree search with no explored set. The goal test is applied
//	when a node is dequeued. With uniform action costs the first goal found
//	has the fewest actions. On a cyclic state graph without a reachable
//	goal the frontier never empties and Search does not return; callers
//	that cannot rule this out should use UniformCostSearch or AStarSearch,
//	which deduplicate states.
//
// Complexity: O(b^d) time and memory for branching factor b and goal depth d.
type BreadthFirstSearch[S any] struct {
	base[S]
}

// NewBreadthFirstSearch binds a BFS strategy to problem.
func NewBreadthFirstSearch[S any](problem Problem[S], logger *slog.Logger) (*BreadthFirstSearch[S], error) {
	if problem == nil {
		return nil, &AlgorithmError{Algorithm: string(BreadthFirst), Operation: "New", Err: ErrNilProblem}
	}
	return &BreadthFirstSearch[S]{base: newBase(BreadthFirst, problem, logger)}, nil
}

// Search runs BFS to completion.
func (s *BreadthFirstSearch[S]) Search() *Node[S] {
	queue := []*Node[S]{s.begin()}
	s.observeFrontier(1)

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		queue[head] = nil
		if s.problem.GoalTest(node.State()) {
			return s.finish(node)
		}
		if head >= compactThreshold && head > len(queue)/2 {
			queue, head = compact(queue, head)
		}
		queue = append(queue, s.expand(node)...)
		s.observeFrontier(len(queue) - head - 1)
	}
	return s.finish(nil)
}

// compactThreshold is the consumed prefix length below which the queue is
// left alone.
const compactThreshold = 64

// compact moves the live part of queue, everything after head, to a fresh
// backing array. It returns the new queue and the index of the last
// consumed slot, so the caller's loop increment lands on the first live
// node.
func compact[S any](queue []*Node[S], head int) ([]*Node[S], int) {
	live := make([]*Node[S], 1, len(queue)-head)
	live = append(live, queue[head+1:]...)
	return live, 0
}
