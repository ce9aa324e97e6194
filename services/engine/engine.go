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
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/symphony/pkg/logging"
)

// ErrCSPTooLarge is returned by SolveCSP when a CSP declares more variables
// than CSPConfig.MaxVariables allows.
var ErrCSPTooLarge = errors.New("CSP exceeds max_variables")

// Engine selects strategies by configuration, runs them, and reports on
// every run through logs, spans and metrics.
//
// Description:
//
//	The engine adds no behavior to the searches themselves. Each run is
//	synchronous and single-threaded; the context passed to Solve and
//	SolveCSP parents spans and log records but never cancels a search.
//	Compare runs several strategies at once, one goroutine each, so the
//	Problem handed to it must be safe for concurrent reads.
//
// Thread Safety: Safe for concurrent use.
type Engine struct {
	config     Config
	logger     *logging.Logger
	tracer     trace.Tracer
	cspMetrics *cspMetrics
}

type engineOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithTracerProvider sets the provider spans are created from.
// Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *engineOptions) { o.tracerProvider = tp }
}

// WithMeterProvider sets the provider CSP instruments are created from.
// Default: the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *engineOptions) { o.meterProvider = mp }
}

// New creates an engine.
//
// Inputs:
//   - config: Engine configuration. Validated before use.
//   - logger: Logger for run reports. Nil builds one from
//     config.Observability.
//   - opts: Optional tracer and meter providers.
//
// Outputs:
//   - *Engine: Ready engine.
//   - error: Wraps ErrInvalidConfig, or an instrument creation failure.
func New(config Config, logger *logging.Logger, opts ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	if logger == nil {
		level, _ := logging.ParseLevel(config.Observability.LogLevel)
		logger = logging.New(logging.Config{
			Level:     level,
			JSON:      config.Observability.LogJSON,
			Component: config.Observability.ServiceName,
		})
	}

	e := &Engine{config: config, logger: logger}

	if o.tracerProvider != nil {
		e.tracer = o.tracerProvider.Tracer(instrumentationName)
	} else {
		e.tracer = otel.Tracer(instrumentationName)
	}

	if config.Observability.MetricsEnabled {
		var err error
		if o.meterProvider != nil {
			e.cspMetrics, err = newCSPMetrics(o.meterProvider.Meter(instrumentationName))
		} else {
			e.cspMetrics, err = defaultCSPMetrics()
		}
		if err != nil {
			return nil, fmt.Errorf("create CSP metrics: %w", err)
		}
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.config }

// Logger returns the engine logger.
func (e *Engine) Logger() *logging.Logger { return e.logger }

// searchLogger is the slog logger strategies and solvers write debug
// records to.
func (e *Engine) searchLogger(runID string) *slog.Logger {
	return e.logger.Slog().With(slog.String("run_id", runID))
}
