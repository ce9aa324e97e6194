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
	"fmt"
	"maps"
)

// Assignment maps variable names to values. During search it is partial:
// only variables chosen so far have entries.
type Assignment[V any] map[string]V

// Get returns the value of name and whether it is assigned.
func (a Assignment[V]) Get(name string) (V, bool) {
	v, ok := a[name]
	return v, ok
}

// Value returns the value of name, or an error wrapping ErrMalformedCSP and
// ErrUnassignedVariable when it has none.
//
// Constraints that require a variable to be present should read it with
// Value and return the error, which aborts the search.
func (a Assignment[V]) Value(name string) (V, error) {
	v, ok := a[name]
	if !ok {
		return v, fmt.Errorf("%w: %w: %q", ErrMalformedCSP, ErrUnassignedVariable, name)
	}
	return v, nil
}

// Has reports whether every name is assigned.
func (a Assignment[V]) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := a[n]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy. Cloning nil yields an empty assignment.
func (a Assignment[V]) Clone() Assignment[V] {
	if a == nil {
		return Assignment[V]{}
	}
	return maps.Clone(a)
}
