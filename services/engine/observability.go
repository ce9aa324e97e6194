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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/AleutianAI/symphony/services/search"
)

// startSpan starts a span named name, or returns a noop span when tracing
// is disabled.
func (e *Engine) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !e.config.Observability.TracingEnabled {
		return ctx, noop.Span{}
	}
	return e.tracer.Start(ctx, name,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// endSearchSpan records the outcome of a search run and ends span.
// cost and depth are ignored when found is false.
func endSearchSpan(span trace.Span, stats search.Stats, found bool, cost float64, depth int) {
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.nodes_generated", stats.NodesGenerated),
		attribute.Int("search.nodes_expanded", stats.NodesExpanded),
		attribute.Int("search.duplicates_skipped", stats.DuplicatesSkipped),
		attribute.Int("search.states_explored", stats.StatesExplored),
		attribute.Int("search.max_frontier", stats.MaxFrontier),
		attribute.Int("search.generations", stats.Generations),
	)
	if found {
		span.SetAttributes(
			attribute.Float64("search.path_cost", cost),
			attribute.Int("search.depth", depth),
		)
	}
	span.SetStatus(codes.Ok, "")
	span.End()
}

// endWithError marks span failed and ends it.
func endWithError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End()
}

// recordSearch updates Prometheus search metrics when enabled.
func (e *Engine) recordSearch(alg search.Algorithm, found bool, stats search.Stats, elapsed time.Duration) {
	if !e.config.Observability.MetricsEnabled {
		return
	}
	result := resultNoSolution
	if found {
		result = resultFound
	}
	searchRunsTotal.WithLabelValues(string(alg), result).Inc()
	searchNodesExpanded.WithLabelValues(string(alg)).Observe(float64(stats.NodesExpanded))
	searchDuration.WithLabelValues(string(alg)).Observe(elapsed.Seconds())
}
