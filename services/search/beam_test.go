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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trapProblem lures greedy descent into a dead end: A looks best from S
// but has no successors, while the goal is only reachable through B.
func trapProblem() *graphProblem {
	return &graphProblem{
		start: "S",
		goal:  "G",
		adj: map[string][]edge{
			"S": {{"A", 1}, {"B", 1}},
			"B": {{"G", 1}},
		},
		h: map[string]float64{"S": 2, "A": 0, "B": 5, "G": 0},
	}
}

func TestNewBeamSearch_RejectsWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		s, err := NewBeamSearch[string](trapProblem(), width, nil)
		assert.Nil(t, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBeamWidth)

		var algErr *AlgorithmError
		require.True(t, errors.As(err, &algErr))
		assert.Equal(t, string(Beam), algErr.Algorithm)
	}
}

func TestBeamSearch_WidthOneIsGreedy(t *testing.T) {
	beam, err := NewBeamSearch[string](trapProblem(), 1, nil)
	require.NoError(t, err)

	assert.Nil(t, beam.Search(), "width 1 follows the dead end and fails")
	assert.Equal(t, 2, beam.Stats().Generations, "[S] then [A]")
}

func TestBeamSearch_WideBeamRecovers(t *testing.T) {
	beam, err := NewBeamSearch[string](trapProblem(), 2, nil)
	require.NoError(t, err)

	goal := beam.Search()
	require.NotNil(t, goal)
	assert.Equal(t, "G", goal.State())
	assert.Equal(t, 2.0, goal.PathCost())
	assert.Equal(t, 2, beam.Width())
}

func TestBeamSearch_GreedyDescentOnRomania(t *testing.T) {
	beam, err := NewBeamSearch[string](romaniaProblem(), 1, nil)
	require.NoError(t, err)

	goal := beam.Search()
	require.NotNil(t, goal)
	assert.Equal(t, []string{"Arad->Sibiu", "Sibiu->Rimnicu", "Rimnicu->Pitesti", "Pitesti->Bucharest"},
		NewSolution(goal).ActionNames())
	assert.Equal(t, 5, beam.Stats().Generations)
	assert.Equal(t, 4, beam.Stats().NodesExpanded, "one survivor expanded per generation")
}

func TestBeamSearch_UnboundedWidthReturnsShallowestGoal(t *testing.T) {
	beam, err := NewBeamSearch[string](romaniaProblem(), 1000, nil)
	require.NoError(t, err)

	goal := beam.Search()
	require.NotNil(t, goal)

	// Generations are depth layers, so the first goal is the shallowest
	// one rather than the cheapest.
	assert.Equal(t, 3, goal.Depth())
	assert.Equal(t, 450.0, goal.PathCost())
}

func TestBeamSearch_SurvivorsGoalTestedInOrder(t *testing.T) {
	p := &goalSetProblem{
		graphProblem: graphProblem{
			start: "S",
			adj:   map[string][]edge{"S": {{"G1", 3}, {"G2", 1}, {"X", 0}}},
			h:     map[string]float64{},
		},
		goals: map[string]bool{"G1": true, "G2": true},
	}
	beam, err := NewBeamSearch[string](p, 3, nil)
	require.NoError(t, err)

	goal := beam.Search()
	require.NotNil(t, goal)
	assert.Equal(t, "G2", goal.State(), "lowest-f goal among survivors wins")
}

func TestBeamSearch_TruncationDropsGoal(t *testing.T) {
	p := &goalSetProblem{
		graphProblem: graphProblem{
			start: "S",
			adj:   map[string][]edge{"S": {{"X", 1}, {"G", 5}}},
			h:     map[string]float64{},
		},
		goals: map[string]bool{"G": true},
	}
	beam, err := NewBeamSearch[string](p, 1, nil)
	require.NoError(t, err)

	assert.Nil(t, beam.Search(), "G is pruned and X has no successors")
}
