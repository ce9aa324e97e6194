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
	"math"
	"sort"
)

// -----------------------------------------------------------------------------
// Vacuum world: two locations, agent at 0 or 1, each location dirty or clean.
// -----------------------------------------------------------------------------

type vacuumState struct {
	Agent int
	Dirty [2]bool
}

type vacuumProblem struct {
	start      vacuumState
	goalCalls  int
	heuristicH bool
}

func newVacuumProblem() *vacuumProblem {
	return &vacuumProblem{start: vacuumState{Agent: 0, Dirty: [2]bool{true, true}}}
}

func (p *vacuumProblem) InitialState() vacuumState { return p.start }

func (p *vacuumProblem) GoalTest(s vacuumState) bool {
	p.goalCalls++
	return !s.Dirty[0] && !s.Dirty[1]
}

func (p *vacuumProblem) Actions(s vacuumState) []Action[vacuumState] {
	var actions []Action[vacuumState]
	if s.Dirty[s.Agent] {
		next := s
		next.Dirty[s.Agent] = false
		actions = append(actions, NewAction("Suck", 1, s, next))
	}
	if s.Agent == 0 {
		actions = append(actions, NewAction("Right", 1, s, vacuumState{Agent: 1, Dirty: s.Dirty}))
	} else {
		actions = append(actions, NewAction("Left", 1, s, vacuumState{Agent: 0, Dirty: s.Dirty}))
	}
	return actions
}

// Heuristic counts dirty squares, which never overestimates.
func (p *vacuumProblem) Heuristic(s vacuumState) float64 {
	if !p.heuristicH {
		return 0
	}
	h := 0.0
	for _, d := range s.Dirty {
		if d {
			h++
		}
	}
	return h
}

// -----------------------------------------------------------------------------
// Weighted graph: explicit adjacency with costs and a per-vertex heuristic.
// -----------------------------------------------------------------------------

type edge struct {
	to   string
	cost float64
}

type graphProblem struct {
	start string
	goal  string
	adj   map[string][]edge
	h     map[string]float64
}

func (p *graphProblem) InitialState() string       { return p.start }
func (p *graphProblem) GoalTest(s string) bool     { return s == p.goal }
func (p *graphProblem) Heuristic(s string) float64 { return p.h[s] }

func (p *graphProblem) Actions(s string) []Action[string] {
	var actions []Action[string]
	for _, e := range p.adj[s] {
		actions = append(actions, NewAction(s+"->"+e.to, e.cost, s, e.to))
	}
	return actions
}

// romaniaProblem is the classic Arad to Bucharest map with straight-line
// distances as heuristic. Optimal cost is 418 via Sibiu, Rimnicu Vilcea, Pitesti.
func romaniaProblem() *graphProblem {
	p := &graphProblem{
		start: "Arad",
		goal:  "Bucharest",
		adj:   map[string][]edge{},
		h: map[string]float64{
			"Arad": 366, "Bucharest": 0, "Craiova": 160, "Drobeta": 242,
			"Fagaras": 176, "Lugoj": 244, "Mehadia": 241, "Oradea": 380,
			"Pitesti": 100, "Rimnicu": 193, "Sibiu": 253, "Timisoara": 329,
			"Zerind": 374,
		},
	}
	link := func(a, b string, c float64) {
		p.adj[a] = append(p.adj[a], edge{b, c})
		p.adj[b] = append(p.adj[b], edge{a, c})
	}
	link("Arad", "Zerind", 75)
	link("Arad", "Sibiu", 140)
	link("Arad", "Timisoara", 118)
	link("Zerind", "Oradea", 71)
	link("Oradea", "Sibiu", 151)
	link("Timisoara", "Lugoj", 111)
	link("Lugoj", "Mehadia", 70)
	link("Mehadia", "Drobeta", 75)
	link("Drobeta", "Craiova", 120)
	link("Sibiu", "Fagaras", 99)
	link("Sibiu", "Rimnicu", 80)
	link("Rimnicu", "Pitesti", 97)
	link("Rimnicu", "Craiova", 146)
	link("Craiova", "Pitesti", 138)
	link("Fagaras", "Bucharest", 211)
	link("Pitesti", "Bucharest", 101)
	return p
}

// -----------------------------------------------------------------------------
// Grid maze: 4-connected unit-cost moves, Manhattan heuristic.
// -----------------------------------------------------------------------------

type cell struct {
	Row, Col int
}

type mazeProblem struct {
	rows  []string
	start cell
	goal  cell
}

// newMaze parses rows where '#' is a wall, 'S' the start and 'G' the goal.
func newMaze(rows ...string) *mazeProblem {
	m := &mazeProblem{rows: rows}
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'S':
				m.start = cell{r, c}
			case 'G':
				m.goal = cell{r, c}
			}
		}
	}
	return m
}

func (m *mazeProblem) InitialState() cell   { return m.start }
func (m *mazeProblem) GoalTest(s cell) bool { return s == m.goal }

func (m *mazeProblem) Heuristic(s cell) float64 {
	return math.Abs(float64(s.Row-m.goal.Row)) + math.Abs(float64(s.Col-m.goal.Col))
}

func (m *mazeProblem) Actions(s cell) []Action[cell] {
	moves := []struct {
		name   string
		dr, dc int
	}{{"Up", -1, 0}, {"Down", 1, 0}, {"Left", 0, -1}, {"Right", 0, 1}}

	var actions []Action[cell]
	for _, mv := range moves {
		next := cell{s.Row + mv.dr, s.Col + mv.dc}
		if next.Row < 0 || next.Row >= len(m.rows) || next.Col < 0 || next.Col >= len(m.rows[next.Row]) {
			continue
		}
		if m.rows[next.Row][next.Col] == '#' {
			continue
		}
		actions = append(actions, NewAction(mv.name, 1, s, next))
	}
	return actions
}

// -----------------------------------------------------------------------------
// Counter: increment from 0 to a target, with a decrement to make it cyclic.
// -----------------------------------------------------------------------------

type counterState struct {
	Value int
}

type counterProblem struct {
	target int
}

func (p counterProblem) InitialState() counterState       { return counterState{} }
func (p counterProblem) GoalTest(s counterState) bool     { return s.Value == p.target }
func (p counterProblem) Heuristic(s counterState) float64 { return math.Abs(float64(p.target - s.Value)) }

func (p counterProblem) Actions(s counterState) []Action[counterState] {
	return []Action[counterState]{
		NewAction("Increment", 1, s, counterState{s.Value + 1}),
		NewAction("Decrement", 1, s, counterState{s.Value - 1}),
	}
}

// ptrCounterProblem is counterProblem with pointer states, so every action
// allocates a fresh state and deduplication must compare by value.
type ptrCounterProblem struct {
	target int
}

func (p ptrCounterProblem) InitialState() *counterState       { return &counterState{} }
func (p ptrCounterProblem) GoalTest(s *counterState) bool     { return s.Value == p.target }
func (p ptrCounterProblem) Heuristic(s *counterState) float64 { return 0 }

func (p ptrCounterProblem) Actions(s *counterState) []Action[*counterState] {
	return []Action[*counterState]{
		NewAction("Increment", 1, s, &counterState{s.Value + 1}),
		NewAction("Decrement", 1, s, &counterState{s.Value - 1}),
	}
}

// goalSetProblem is a graph problem with several goal vertices.
type goalSetProblem struct {
	graphProblem
	goals map[string]bool
}

func (p *goalSetProblem) GoalTest(s string) bool { return p.goals[s] }

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// bruteForceCost runs exhaustive relaxation over a graph problem and returns
// the cheapest start to goal cost.
func bruteForceCost(p *graphProblem) float64 {
	dist := map[string]float64{p.start: 0}
	for changed := true; changed; {
		changed = false
		keys := make([]string, 0, len(dist))
		for k := range dist {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, u := range keys {
			for _, e := range p.adj[u] {
				d := dist[u] + e.cost
				if old, ok := dist[e.to]; !ok || d < old {
					dist[e.to] = d
					changed = true
				}
			}
		}
	}
	return dist[p.goal]
}

// applyPlan replays actions from the initial state, failing if any action
// does not start where the previous one ended.
func applyPlan[S comparable](initial S, plan []Action[S]) (S, error) {
	cur := initial
	for i, a := range plan {
		if a.Precondition != cur {
			return cur, fmt.Errorf("step %d (%s): precondition mismatch", i, a.Name)
		}
		cur = a.Effect
	}
	return cur, nil
}
