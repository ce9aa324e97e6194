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

import "slices"

// ReconstructPath returns the actions from the root to terminal, in order.
//
// Description:
//
//	Walks parent links from terminal up to the root collecting each node's
//	action, then reverses them. A root terminal yields an empty plan; a nil
//	terminal yields nil.
func ReconstructPath[S any](terminal *Node[S]) []Action[S] {
	if terminal == nil {
		return nil
	}

	actions := make([]Action[S], 0, terminal.Depth())
	for n := terminal; n != nil && !n.IsRoot(); n = n.Parent() {
		action, _ := n.Action()
		actions = append(actions, action)
	}
	slices.Reverse(actions)
	return actions
}

// Solution is a reconstructed plan together with its goal state.
type Solution[S any] struct {
	// Actions is the plan from the initial state to Goal.
	Actions []Action[S]

	// Goal is the state of the terminal node.
	Goal S

	// Cost is the terminal node's path cost.
	Cost float64

	// Depth is the number of actions in the plan.
	Depth int
}

// NewSolution builds a Solution from a terminal node. Returns nil when
// terminal is nil, which is how strategies report NoSolution.
func NewSolution[S any](terminal *Node[S]) *Solution[S] {
	if terminal == nil {
		return nil
	}
	return &Solution[S]{
		Actions: ReconstructPath(terminal),
		Goal:    terminal.State(),
		Cost:    terminal.PathCost(),
		Depth:   terminal.Depth(),
	}
}

// ActionNames returns the names of the plan's actions in order.
func (s *Solution[S]) ActionNames() []string {
	names := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		names[i] = a.Name
	}
	return names
}
