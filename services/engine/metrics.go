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
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "symphony.engine"

// Run outcomes used as metric labels.
const (
	resultFound      = "found"
	resultNoSolution = "no_solution"
	resultAssigned   = "assigned"
	resultEmpty      = "empty"
	resultError      = "error"
)

// ==============================================================================
// Search Metrics (Prometheus)
// ==============================================================================

var (
	// searchRunsTotal counts search runs by algorithm and result.
	// Result labels: "found", "no_solution"
	searchRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symphony_search_runs_total",
		Help: "Total search runs by algorithm and result",
	}, []string{"algorithm", "result"})

	searchNodesExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "symphony_search_nodes_expanded",
		Help:    "Nodes expanded per search run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"algorithm"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "symphony_search_duration_seconds",
		Help:    "Search run duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"algorithm"})
)

// ==============================================================================
// CSP Metrics (OpenTelemetry)
// ==============================================================================

// cspMetrics holds OTel instruments for CSP runs.
type cspMetrics struct {
	runs        metric.Int64Counter
	assignments metric.Int64Histogram
	backtracks  metric.Int64Histogram
	duration    metric.Float64Histogram
}

func newCSPMetrics(meter metric.Meter) (*cspMetrics, error) {
	m := &cspMetrics{}
	var err error

	m.runs, err = meter.Int64Counter(
		"symphony_csp_runs_total",
		metric.WithDescription("Total CSP solver runs by result"),
	)
	if err != nil {
		return nil, err
	}

	m.assignments, err = meter.Int64Histogram(
		"symphony_csp_assignments",
		metric.WithDescription("Tentative assignments per CSP run"),
	)
	if err != nil {
		return nil, err
	}

	m.backtracks, err = meter.Int64Histogram(
		"symphony_csp_backtracks",
		metric.WithDescription("Backtracks per CSP run"),
	)
	if err != nil {
		return nil, err
	}

	m.duration, err = meter.Float64Histogram(
		"symphony_csp_duration_seconds",
		metric.WithDescription("Duration of CSP runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

var (
	globalCSP     *cspMetrics
	globalCSPErr  error
	globalCSPOnce sync.Once
)

// defaultCSPMetrics returns instruments from the global meter provider,
// creating them once.
func defaultCSPMetrics() (*cspMetrics, error) {
	globalCSPOnce.Do(func() {
		globalCSP, globalCSPErr = newCSPMetrics(otel.Meter(instrumentationName))
	})
	return globalCSP, globalCSPErr
}

func (m *cspMetrics) record(ctx context.Context, result string, assignments, backtracks int, seconds float64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("result", result))
	m.runs.Add(ctx, 1, attrs)
	m.assignments.Record(ctx, int64(assignments), attrs)
	m.backtracks.Record(ctx, int64(backtracks), attrs)
	m.duration.Record(ctx, seconds, attrs)
}
