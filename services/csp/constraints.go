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

import "slices"

// Constraint reports whether an assignment is acceptable.
//
// The assignment may be partial. A constraint that cannot be judged yet
// should return true. A non-nil error is a caller error: the search stops
// and returns it.
type Constraint[V any] interface {
	Check(a Assignment[V]) (bool, error)
}

// ConstraintFunc adapts an ordinary function to Constraint.
type ConstraintFunc[V any] func(a Assignment[V]) (bool, error)

// Check calls f(a).
func (f ConstraintFunc[V]) Check(a Assignment[V]) (bool, error) { return f(a) }

// Scoped is implemented by constraints that name the variables they read.
// CSP.Validate rejects a scoped constraint naming an undeclared variable.
type Scoped interface {
	Scope() []string
}

// scopedConstraint is a check over a fixed set of variables.
type scopedConstraint[V any] struct {
	scope []string
	check ConstraintFunc[V]
}

func (c scopedConstraint[V]) Check(a Assignment[V]) (bool, error) { return c.check(a) }

func (c scopedConstraint[V]) Scope() []string { return slices.Clone(c.scope) }

// Over declares that check reads only the named variables. A check may
// then treat a missing name as not yet assigned, because every name is
// verified to be declared before solving.
//
// Example:
//
//	sum := csp.Over[int](func(a csp.Assignment[int]) (bool, error) {
//	    if !a.Has("X", "Y") {
//	        return true, nil
//	    }
//	    return a["X"]+a["Y"] == 10, nil
//	}, "X", "Y")
func Over[V any](check ConstraintFunc[V], names ...string) Constraint[V] {
	return scopedConstraint[V]{scope: slices.Clone(names), check: check}
}

// NotEqual requires x and y to hold different values once both are set.
func NotEqual[V comparable](x, y string) Constraint[V] {
	return Over[V](func(a Assignment[V]) (bool, error) {
		vx, okx := a[x]
		vy, oky := a[y]
		if !okx || !oky {
			return true, nil
		}
		return vx != vy, nil
	}, x, y)
}

// AllDifferent requires the assigned members of names to be pairwise
// distinct.
func AllDifferent[V comparable](names ...string) Constraint[V] {
	return Over[V](func(a Assignment[V]) (bool, error) {
		seen := make(map[V]struct{}, len(names))
		for _, n := range names {
			v, ok := a[n]
			if !ok {
				continue
			}
			if _, dup := seen[v]; dup {
				return false, nil
			}
			seen[v] = struct{}{}
		}
		return true, nil
	}, names...)
}

// Unary applies pred to name's value once it is set.
func Unary[V any](name string, pred func(V) bool) Constraint[V] {
	return Over[V](func(a Assignment[V]) (bool, error) {
		v, ok := a[name]
		if !ok {
			return true, nil
		}
		return pred(v), nil
	}, name)
}

// Binary applies pred to the values of x and y once both are set.
func Binary[V any](x, y string, pred func(vx, vy V) bool) Constraint[V] {
	return Over[V](func(a Assignment[V]) (bool, error) {
		vx, okx := a[x]
		vy, oky := a[y]
		if !okx || !oky {
			return true, nil
		}
		return pred(vx, vy), nil
	}, x, y)
}
