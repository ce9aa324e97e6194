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

import "errors"

// Sentinel errors for strategy construction.
//
// Exhausting the frontier is not an error: Search returns a nil node.
var (
	// ErrUnknownAlgorithm is returned when an algorithm identifier is not
	// registered.
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")

	// ErrInvalidBeamWidth is returned when beam search is constructed with
	// a width below 1 or without a width at all.
	ErrInvalidBeamWidth = errors.New("beam width must be >= 1")

	// ErrNilProblem is returned when a strategy is constructed without a
	// problem.
	ErrNilProblem = errors.New("problem is nil")
)

// AlgorithmError records which algorithm and operation failed.
type AlgorithmError struct {
	Algorithm string
	Operation string
	Err       error
}

func (e *AlgorithmError) Error() string {
	return e.Algorithm + "." + e.Operation + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *AlgorithmError) Unwrap() error {
	return e.Err
}
