// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package csp models finite-domain constraint satisfaction problems and
// solves them by chronological backtracking.
//
// Example Usage:
//
//	c := csp.New[int]()
//	for _, v := range []string{"X", "Y", "Z"} {
//	    _ = c.AddVariable(v, []int{1, 2, 3})
//	}
//	_ = c.AddConstraint(csp.AllDifferent[int]("X", "Y", "Z"))
//
//	solver, _ := csp.NewBacktrackingSearch(c)
//	assignment, err := solver.Search()
//	if err != nil {
//	    return err // a constraint failed, e.g. ErrMalformedCSP
//	}
//	if len(assignment) == 0 {
//	    // unsatisfiable, or no variables declared
//	}
package csp
