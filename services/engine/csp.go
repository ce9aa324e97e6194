// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AleutianAI/symphony/services/csp"
)

// CSPReport describes one backtracking run.
type CSPReport[V any] struct {
	// RunID correlates the run's log records and span.
	RunID string

	// Assignment is the solver result. Empty both when no assignment
	// exists and when the CSP has no variables.
	Assignment csp.Assignment[V]

	// Stats are the solver's counters.
	Stats csp.Stats

	// Duration is the wall time of the run.
	Duration time.Duration
}

// SolveCSP runs backtracking search on c.
//
// Outputs:
//   - *CSPReport[V]: The run report.
//   - error: ErrCSPTooLarge when c exceeds CSPConfig.MaxVariables, or the
//     error a constraint returned (wrapping csp.ErrMalformedCSP for reads of
//     unassigned variables).
func SolveCSP[V any](ctx context.Context, e *Engine, c *csp.CSP[V]) (*CSPReport[V], error) {
	runID := uuid.NewString()
	logger := e.searchLogger(runID)

	if c != nil && e.config.CSP.MaxVariables > 0 && c.Len() > e.config.CSP.MaxVariables {
		return nil, fmt.Errorf("%w: %d > %d", ErrCSPTooLarge, c.Len(), e.config.CSP.MaxVariables)
	}

	solver, err := csp.NewBacktrackingSearch(c, csp.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	ctx, span := e.startSpan(ctx, "csp.run",
		attribute.String("csp.run_id", runID),
		attribute.Int("csp.variables", c.Len()),
		attribute.Int("csp.constraints", c.Constraints()),
	)

	start := time.Now()
	assignment, err := solver.Search()
	elapsed := time.Since(start)
	stats := solver.Stats()

	result := resultAssigned
	switch {
	case err != nil:
		result = resultError
	case len(assignment) == 0:
		result = resultEmpty
	}
	e.cspMetrics.record(ctx, result, stats.Assignments, stats.Backtracks, elapsed.Seconds())

	if err != nil {
		endWithError(span, err)
		e.logger.Slog().ErrorContext(ctx, "csp solve failed",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("csp solve: %w", err)
	}

	span.SetAttributes(
		attribute.String("csp.result", result),
		attribute.Int("csp.assignments", stats.Assignments),
		attribute.Int("csp.backtracks", stats.Backtracks),
		attribute.Int("csp.max_depth", stats.MaxDepth),
	)
	span.End()

	e.logger.Slog().InfoContext(ctx, "csp solve finished",
		slog.String("run_id", runID),
		slog.String("result", result),
		slog.Int("assignments", stats.Assignments),
		slog.Int("backtracks", stats.Backtracks),
		slog.Duration("duration", elapsed),
	)

	return &CSPReport[V]{
		RunID:      runID,
		Assignment: assignment,
		Stats:      stats,
		Duration:   elapsed,
	}, nil
}
