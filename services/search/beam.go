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
	"fmt"
	"log/slog"
	"slices"
)

// BeamSearch keeps only the best Width nodes of each generation.
//
// Description:
//
//	Each generation is stably sorted by f(n) and truncated to Width nodes.
//	Survivors are goal-tested in order; if none passes, every survivor is
//	expanded and the children form the next generation. Survivors are not
//	carried over. The search fails when a generation is empty.
//
//	Beam search is neither complete nor optimal. Width 1 is greedy descent
//	on f; a width at least the branching factor at every depth behaves like
//	best-first search without deduplication.
//
// Complexity: O(d * k * b log(k * b)) for depth d, width k, branching b.
type BeamSearch[S any] struct {
	base[S]
	width int
}

// NewBeamSearch binds a beam strategy of the given width to problem.
// Width must be >= 1.
func NewBeamSearch[S any](problem Problem[S], width int, logger *slog.Logger) (*BeamSearch[S], error) {
	if problem == nil {
		return nil, &AlgorithmError{Algorithm: string(Beam), Operation: "New", Err: ErrNilProblem}
	}
	if width < 1 {
		return nil, &AlgorithmError{
			Algorithm: string(Beam),
			Operation: "New",
			Err:       fmt.Errorf("%w: got %d", ErrInvalidBeamWidth, width),
		}
	}
	return &BeamSearch[S]{base: newBase(Beam, problem, logger), width: width}, nil
}

// Width returns the beam width.
func (s *BeamSearch[S]) Width() int { return s.width }

// Search runs generations until a survivor passes the goal test or a
// generation is empty.
func (s *BeamSearch[S]) Search() *Node[S] {
	beam := []*Node[S]{s.begin()}

	for len(beam) > 0 {
		s.stats.Generations++
		s.observeFrontier(len(beam))

		slices.SortStableFunc(beam, compareF[S])
		if len(beam) > s.width {
			beam = beam[:s.width]
		}

		for _, node := range beam {
			if s.problem.GoalTest(node.State()) {
				return s.finish(node)
			}
		}

		next := make([]*Node[S], 0, len(beam))
		for _, node := range beam {
			next = append(next, s.expand(node)...)
		}
		beam = next
	}
	return s.finish(nil)
}

func compareF[S any](a, b *Node[S]) int {
	fa, fb := a.F(), b.F()
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}
