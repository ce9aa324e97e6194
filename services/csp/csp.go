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
	"slices"

	"github.com/AleutianAI/symphony/pkg/validation"
)

// CSP is a set of variables with finite ordered domains and the constraints
// an assignment must satisfy.
//
// Description:
//
//	Variables keep their declaration order, which is also the order the
//	solver assigns them in. Re-declaring a variable replaces its domain
//	but keeps its original position.
//
// Thread Safety: Not safe for concurrent mutation. Safe to share between
// solvers once fully built.
type CSP[V any] struct {
	order       []string
	domains     map[string][]V
	constraints []Constraint[V]
}

// New creates an empty CSP.
func New[V any]() *CSP[V] {
	return &CSP[V]{domains: make(map[string][]V)}
}

// AddVariable declares name with the given domain. The domain is copied.
// Names must pass validation.ValidateName.
func (c *CSP[V]) AddVariable(name string, domain []V) error {
	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("%w: variable name: %w", ErrMalformedCSP, err)
	}
	if _, exists := c.domains[name]; !exists {
		c.order = append(c.order, name)
	}
	c.domains[name] = slices.Clone(domain)
	return nil
}

// AddConstraint registers a constraint. Constraints are evaluated in
// registration order.
func (c *CSP[V]) AddConstraint(constraint Constraint[V]) error {
	if f, ok := constraint.(ConstraintFunc[V]); constraint == nil || (ok && f == nil) {
		return fmt.Errorf("%w: %w", ErrMalformedCSP, ErrNilConstraint)
	}
	c.constraints = append(c.constraints, constraint)
	return nil
}

// Variables returns variable names in declaration order.
func (c *CSP[V]) Variables() []string {
	return slices.Clone(c.order)
}

// Domain returns a copy of name's domain and whether name is declared.
func (c *CSP[V]) Domain(name string) ([]V, bool) {
	d, ok := c.domains[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(d), true
}

// Len returns the number of declared variables.
func (c *CSP[V]) Len() int { return len(c.order) }

// Constraints returns the number of registered constraints.
func (c *CSP[V]) Constraints() int { return len(c.constraints) }

// Validate checks that every Scoped constraint names declared variables
// only. The error wraps ErrMalformedCSP and ErrUndeclaredVariable.
func (c *CSP[V]) Validate() error {
	for i, constraint := range c.constraints {
		scoped, ok := constraint.(Scoped)
		if !ok {
			continue
		}
		for _, name := range scoped.Scope() {
			if _, declared := c.domains[name]; !declared {
				return fmt.Errorf("%w: constraint %d: %w: %q", ErrMalformedCSP, i, ErrUndeclaredVariable, name)
			}
		}
	}
	return nil
}

// IsConsistent validates the CSP, then evaluates every constraint against
// a, stopping at the first that rejects it or fails.
func (c *CSP[V]) IsConsistent(a Assignment[V]) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	ok, _, err := c.check(a)
	return ok, err
}

// check is IsConsistent that also reports how many constraints ran.
func (c *CSP[V]) check(a Assignment[V]) (bool, int, error) {
	for i, constraint := range c.constraints {
		ok, err := constraint.Check(a)
		if err != nil {
			return false, i + 1, fmt.Errorf("constraint %d: %w", i, err)
		}
		if !ok {
			return false, i + 1, nil
		}
	}
	return true, len(c.constraints), nil
}
