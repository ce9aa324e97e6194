// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package csp

import (
	"log/slog"
	"time"
)

// Stats holds counters from one backtracking run.
type Stats struct {
	// Assignments counts tentative variable assignments.
	Assignments int

	// ConsistencyChecks counts individual constraint evaluations.
	ConsistencyChecks int

	// Backtracks counts tentative assignments undone without leading to
	// a solution.
	Backtracks int

	// MaxDepth is the largest consistent partial assignment reached.
	MaxDepth int

	// Duration is the wall time of the run.
	Duration time.Duration
}

type options struct {
	logger *slog.Logger
}

// Option configures a BacktrackingSearch.
type Option func(*options)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// BacktrackingSearch solves a CSP by depth-first assignment with undo.
//
// Description:
//
//	Variables are assigned in declaration order and each domain is tried in
//	its declared order. After each tentative assignment every constraint is
//	evaluated against the partial assignment. The search recurses on
//	success and removes the tentative value before trying the next one,
//	whether or not the subtree succeeded, so the working assignment is back
//	to its previous size whenever a call returns.
//
//	There is no variable-ordering heuristic and no propagation. Worst case
//	is the full Cartesian product of the domains.
//
// Thread Safety: Not safe for concurrent use. Distinct solvers may share a
// CSP.
type BacktrackingSearch[V any] struct {
	csp    *CSP[V]
	logger *slog.Logger
	stats  Stats
}

// NewBacktrackingSearch binds a solver to csp.
func NewBacktrackingSearch[V any](csp *CSP[V], opts ...Option) (*BacktrackingSearch[V], error) {
	if csp == nil {
		return nil, ErrNilCSP
	}
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &BacktrackingSearch[V]{
		csp:    csp,
		logger: o.logger.With(slog.String("component", "csp")),
	}, nil
}

// Search returns a complete consistent assignment.
//
// Outputs:
//
//	Assignment[V] - A value for every variable, or an empty assignment when
//	                no combination satisfies all constraints. A CSP with no
//	                variables also yields an empty assignment; the two cases
//	                are not distinguished.
//	error - Non-nil when CSP.Validate fails or a constraint returned an
//	        error.
func (b *BacktrackingSearch[V]) Search() (Assignment[V], error) {
	b.stats = Stats{}
	start := time.Now()
	b.logger.Debug("backtracking started",
		slog.Int("variables", b.csp.Len()),
		slog.Int("constraints", b.csp.Constraints()),
	)

	if err := b.csp.Validate(); err != nil {
		b.stats.Duration = time.Since(start)
		b.logger.Debug("backtracking rejected CSP", slog.String("error", err.Error()))
		return nil, err
	}

	working := make(Assignment[V], b.csp.Len())
	solution, err := b.backtrack(working)
	b.stats.Duration = time.Since(start)

	if err != nil {
		b.logger.Debug("backtracking aborted", slog.String("error", err.Error()))
		return nil, err
	}
	if solution == nil {
		b.logger.Debug("backtracking exhausted",
			slog.Int("assignments", b.stats.Assignments),
			slog.Int("backtracks", b.stats.Backtracks),
		)
		return Assignment[V]{}, nil
	}
	b.logger.Debug("backtracking solved",
		slog.Int("assignments", b.stats.Assignments),
		slog.Int("backtracks", b.stats.Backtracks),
		slog.Duration("duration", b.stats.Duration),
	)
	return solution, nil
}

// Stats returns counters from the most recent Search call.
func (b *BacktrackingSearch[V]) Stats() Stats { return b.stats }

// backtrack returns a snapshot of a at the first complete consistent
// assignment below it, or nil if there is none.
func (b *BacktrackingSearch[V]) backtrack(a Assignment[V]) (Assignment[V], error) {
	if len(a) == b.csp.Len() {
		return a.Clone(), nil
	}

	name := b.csp.order[len(a)]
	for _, value := range b.csp.domains[name] {
		a[name] = value
		b.stats.Assignments++

		ok, checks, err := b.csp.check(a)
		b.stats.ConsistencyChecks += checks
		if err != nil {
			delete(a, name)
			return nil, err
		}

		var solution Assignment[V]
		if ok {
			if len(a) > b.stats.MaxDepth {
				b.stats.MaxDepth = len(a)
			}
			solution, err = b.backtrack(a)
		}
		delete(a, name)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
		b.stats.Backtracks++
	}
	return nil, nil
}
