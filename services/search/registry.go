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

import (
	"fmt"
	"log/slog"
	"strings"
)

// Algorithm identifies a search strategy.
type Algorithm string

// Registered algorithms.
const (
	BreadthFirst Algorithm = "breadth_first_search"
	UniformCost  Algorithm = "uniform_cost_search"
	AStar        Algorithm = "a_star"
	Beam         Algorithm = "beam_search"
)

var algorithms = []Algorithm{BreadthFirst, UniformCost, AStar, Beam}

// Algorithms returns every registered identifier in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Valid reports whether a is a registered identifier.
func (a Algorithm) Valid() bool {
	for _, known := range algorithms {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the identifier.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm converts an identifier to an Algorithm. Surrounding space
// and letter case are ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", &AlgorithmError{Algorithm: s, Operation: "Parse", Err: ErrUnknownAlgorithm}
	}
	return a, nil
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

type options struct {
	beamWidth int
	logger    *slog.Logger
}

// Option configures strategy construction.
type Option func(*options)

// WithBeamWidth sets the beam width. Required for Beam; ignored otherwise.
func WithBeamWidth(k int) Option {
	return func(o *options) { o.beamWidth = k }
}

// WithLogger sets the logger strategies write debug output to.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New constructs the strategy registered under alg, bound to problem.
//
// Outputs:
//
//	Strategy[S] - Ready to Search.
//	error - ErrUnknownAlgorithm for an unregistered identifier,
//	        ErrInvalidBeamWidth when Beam is requested without a width >= 1,
//	        ErrNilProblem for a nil problem. Always an *AlgorithmError.
//
// Example:
//
//	s, err := search.New[Room](search.Beam, problem, search.WithBeamWidth(3))
//	if err != nil {
//	    return err
//	}
//	goal := s.Search()
func New[S any](alg Algorithm, problem Problem[S], opts ...Option) (Strategy[S], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	switch alg {
	case BreadthFirst:
		s, err := NewBreadthFirstSearch(problem, o.logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case UniformCost:
		s, err := NewUniformCostSearch(problem, o.logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case AStar:
		s, err := NewAStarSearch(problem, o.logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case Beam:
		s, err := NewBeamSearch(problem, o.beamWidth, o.logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, &AlgorithmError{
			Algorithm: string(alg),
			Operation: "New",
			Err:       fmt.Errorf("%w: %q (registered: %v)", ErrUnknownAlgorithm, string(alg), algorithms),
		}
	}
}
