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

// -----------------------------------------------------------------------------
// Problem Contract
// -----------------------------------------------------------------------------

// Problem is the domain interface every strategy consumes.
//
// Description:
//
//	S is the concrete state type of the domain. States must be treated as
//	immutable once constructed: strategies share them between nodes and
//	the explored set without copying.
//
// Thread Safety: Implementations must be safe for concurrent reads if the
// same Problem is handed to several strategies at once.
type Problem[S any] interface {
	// InitialState returns the start state. Every call must yield an
	// equivalent state.
	InitialState() S

	// GoalTest reports whether state satisfies the goal. Must be pure.
	GoalTest(state S) bool

	// Actions returns every action applicable in state, each carrying its
	// already computed effect state.
	Actions(state S) []Action[S]

	// Heuristic estimates the remaining cost from state to a goal.
	// Must be >= 0.
	Heuristic(state S) float64
}

// Action is a named, costed transformation from one state to another.
type Action[S any] struct {
	// Name identifies the action in a plan, e.g. "Suck" or "Right".
	Name string

	// Cost is the non-negative cost of applying the action.
	Cost float64

	// Precondition is the state the action was generated from.
	Precondition S

	// Effect is the state that results from applying the action.
	Effect S
}

// NewAction creates an action moving from state `from` to state `to`.
func NewAction[S any](name string, cost float64, from, to S) Action[S] {
	return Action[S]{
		Name:         name,
		Cost:         cost,
		Precondition: from,
		Effect:       to,
	}
}

// -----------------------------------------------------------------------------
// Optional Capabilities
// -----------------------------------------------------------------------------

// StateHasher is implemented by problems that can hash their own states.
//
// Equal states must produce equal hashes. Strategies with an explored set
// use it instead of reflection-based structural hashing.
type StateHasher[S any] interface {
	HashState(state S) uint64
}

// StateEqualer is implemented by problems that define state equality
// themselves. When absent, states are compared structurally.
type StateEqualer[S any] interface {
	EqualStates(a, b S) bool
}
