// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search provides generic state-space search over user-defined problems.
//
// Architecture:
//
//	A Problem describes a domain. A Strategy explores it by growing a Tree
//	of immutable Nodes, and the terminal Node it returns is turned into a
//	plan by walking parent links back to the root.
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                          Strategy[S]                             │
//	│   ┌─────────┐   ┌─────────────┐   ┌─────────┐   ┌─────────────┐  │
//	│   │   BFS   │   │ Uniform Cost│   │   A*    │   │    Beam     │  │
//	│   │  FIFO   │   │  min g(n)   │   │ min f(n)│   │  best-k/gen │  │
//	│   └────┬────┘   └──────┬──────┘   └────┬────┘   └──────┬──────┘  │
//	│        └───────────────┴───────┬───────┴───────────────┘         │
//	│                                ▼                                 │
//	│                 Tree[S] (arena of Node[S], by NodeID)            │
//	│                                │                                 │
//	│                                ▼                                 │
//	│                 ReconstructPath(terminal) -> []Action[S]         │
//	└──────────────────────────────────────────────────────────────────┘
//
// Problem Contract:
//
//	Problems MUST:
//	1. Return an equivalent initial state from every InitialState call
//	2. Keep GoalTest, Actions and Heuristic free of side effects
//	3. Return every applicable action with its effect state precomputed
//	4. Return a non-negative heuristic (admissible for A* optimality)
//
//	The engine never verifies admissibility. An overestimating heuristic
//	silently loses optimality, it does not fail.
//
// Execution Model:
//
//	Every Search call is synchronous and single-threaded. There is no
//	cancellation: callers that need a deadline must bound the problem
//	itself. Nodes are never mutated after creation, so a finished Tree
//	may be read from any goroutine.
//
// Example Usage:
//
//	strategy, err := search.New[VacuumState](search.AStar, problem)
//	if err != nil {
//	    return err
//	}
//	terminal := strategy.Search()
//	if terminal == nil {
//	    return nil // no solution
//	}
//	for _, action := range search.ReconstructPath(terminal) {
//	    fmt.Println(action.Name)
//	}
package search
