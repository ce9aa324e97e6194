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

import "errors"

var (
	// ErrMalformedCSP marks caller errors in the problem definition, such
	// as a constraint reading a variable that has no value.
	ErrMalformedCSP = errors.New("malformed CSP")

	// ErrUnassignedVariable is returned by Assignment.Value for a variable
	// with no value. It always appears together with ErrMalformedCSP.
	ErrUnassignedVariable = errors.New("variable not assigned")

	// ErrUndeclaredVariable is returned by CSP.Validate for a scoped
	// constraint naming a variable that was never declared. It always
	// appears together with ErrMalformedCSP.
	ErrUndeclaredVariable = errors.New("variable not declared")

	// ErrNilCSP is returned when a solver is constructed without a CSP.
	ErrNilCSP = errors.New("CSP is nil")

	// ErrNilConstraint is returned when a nil constraint is registered.
	ErrNilConstraint = errors.New("constraint is nil")
)
