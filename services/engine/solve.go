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
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/symphony/services/search"
)

// Report describes one search run.
type Report[S any] struct {
	// RunID correlates the run's log records and span.
	RunID string

	// Algorithm is the strategy that ran.
	Algorithm search.Algorithm

	// Found is false when the strategy exhausted its frontier.
	Found bool

	// Solution is the reconstructed plan, nil when Found is false.
	Solution *search.Solution[S]

	// Stats are the strategy's counters.
	Stats search.Stats

	// Duration is the wall time including reconstruction.
	Duration time.Duration
}

// Solve runs the configured algorithm against problem.
//
// Outputs:
//   - *Report[S]: The run report. Report.Found is false for NoSolution,
//     which is not an error.
//   - error: Strategy construction failures (unknown algorithm, missing
//     beam width, nil problem).
func Solve[S any](ctx context.Context, e *Engine, problem search.Problem[S]) (*Report[S], error) {
	return SolveWith(ctx, e, search.Algorithm(e.config.Search.Algorithm), problem)
}

// SolveWith runs alg against problem. The configured beam width applies
// when alg is search.Beam.
func SolveWith[S any](ctx context.Context, e *Engine, alg search.Algorithm, problem search.Problem[S]) (*Report[S], error) {
	runID := uuid.NewString()
	strategy, err := newStrategy(e, alg, problem, runID)
	if err != nil {
		return nil, err
	}
	return run(ctx, e, strategy, runID), nil
}

// Compare runs every algorithm in algs against problem concurrently and
// returns one report per algorithm, in the order given. With no algs it
// runs every registered algorithm; Beam is skipped in that case when no
// beam width is configured.
//
// Description:
//
//	All strategies are constructed before any runs, so a bad identifier
//	fails the whole call without running anything. Runs are bounded by
//	CompareConfig.MaxConcurrency.
func Compare[S any](ctx context.Context, e *Engine, problem search.Problem[S], algs ...search.Algorithm) ([]*Report[S], error) {
	if len(algs) == 0 {
		for _, alg := range search.Algorithms() {
			if alg == search.Beam && e.config.Search.BeamWidth < 1 {
				continue
			}
			algs = append(algs, alg)
		}
	}

	type job struct {
		strategy search.Strategy[S]
		runID    string
	}
	jobs := make([]job, len(algs))
	for i, alg := range algs {
		runID := uuid.NewString()
		strategy, err := newStrategy(e, alg, problem, runID)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		jobs[i] = job{strategy: strategy, runID: runID}
	}

	ctx, span := e.startSpan(ctx, "search.compare", attribute.Int("search.strategies", len(jobs)))
	defer span.End()

	reports := make([]*Report[S], len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Compare.MaxConcurrency)
	for i, j := range jobs {
		g.Go(func() error {
			reports[i] = run(gctx, e, j.strategy, j.runID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// newStrategy builds alg through the search registry with the engine's
// beam width and a run-scoped logger.
func newStrategy[S any](e *Engine, alg search.Algorithm, problem search.Problem[S], runID string) (search.Strategy[S], error) {
	opts := []search.Option{search.WithLogger(e.searchLogger(runID))}
	if alg == search.Beam {
		opts = append(opts, search.WithBeamWidth(e.config.Search.BeamWidth))
	}
	return search.New(alg, problem, opts...)
}

// run executes strategy inside a span and reports on it.
func run[S any](ctx context.Context, e *Engine, strategy search.Strategy[S], runID string) *Report[S] {
	alg := strategy.Algorithm()
	ctx, span := e.startSpan(ctx, "search.run",
		attribute.String("search.algorithm", string(alg)),
		attribute.String("search.run_id", runID),
	)

	start := time.Now()
	terminal := strategy.Search()
	solution := search.NewSolution(terminal)
	elapsed := time.Since(start)

	report := &Report[S]{
		RunID:     runID,
		Algorithm: alg,
		Found:     solution != nil,
		Solution:  solution,
		Stats:     strategy.Stats(),
		Duration:  elapsed,
	}

	if report.Found {
		endSearchSpan(span, report.Stats, true, solution.Cost, solution.Depth)
	} else {
		endSearchSpan(span, report.Stats, false, 0, 0)
	}
	e.recordSearch(alg, report.Found, report.Stats, elapsed)

	attrs := []any{
		slog.String("run_id", runID),
		slog.String("algorithm", string(alg)),
		slog.Bool("found", report.Found),
		slog.Int("nodes_expanded", report.Stats.NodesExpanded),
		slog.Duration("duration", elapsed),
	}
	if report.Found {
		attrs = append(attrs, slog.Int("depth", solution.Depth), slog.Float64("path_cost", solution.Cost))
	}
	e.logger.Slog().InfoContext(ctx, "search finished", attrs...)

	return report
}
