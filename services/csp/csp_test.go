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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/symphony/pkg/validation"
)

func TestCSP_AddVariable(t *testing.T) {
	c := New[int]()
	domain := []int{1, 2, 3}
	require.NoError(t, c.AddVariable("X", domain))
	require.NoError(t, c.AddVariable("Y", []int{4}))

	domain[0] = 99
	got, ok := c.Domain("X")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got, "domain is copied on declaration")

	got[1] = 42
	again, _ := c.Domain("X")
	assert.Equal(t, []int{1, 2, 3}, again, "Domain returns a copy")

	_, ok = c.Domain("Z")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCSP_RedeclareKeepsPosition(t *testing.T) {
	c := New[string]()
	require.NoError(t, c.AddVariable("A", []string{"a"}))
	require.NoError(t, c.AddVariable("B", []string{"b"}))
	require.NoError(t, c.AddVariable("A", []string{"x", "y"}))

	assert.Equal(t, []string{"A", "B"}, c.Variables())
	d, _ := c.Domain("A")
	assert.Equal(t, []string{"x", "y"}, d)
	assert.Equal(t, 2, c.Len())
}

func TestCSP_RejectsMalformedDeclarations(t *testing.T) {
	c := New[int]()

	err := c.AddVariable("", []int{1})
	assert.ErrorIs(t, err, ErrMalformedCSP)
	assert.ErrorIs(t, err, validation.ErrEmpty)

	err = c.AddVariable("X\n", []int{1})
	assert.ErrorIs(t, err, ErrMalformedCSP)
	assert.ErrorIs(t, err, validation.ErrInvalidCharacter)

	err = c.AddConstraint(nil)
	assert.ErrorIs(t, err, ErrMalformedCSP)
	assert.ErrorIs(t, err, ErrNilConstraint)

	var nilFunc ConstraintFunc[int]
	err = c.AddConstraint(nilFunc)
	assert.ErrorIs(t, err, ErrNilConstraint)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Constraints())
}

func TestCSP_IsConsistent(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.AddVariable("X", []int{1, 2}))
	require.NoError(t, c.AddVariable("Y", []int{1, 2}))
	require.NoError(t, c.AddConstraint(NotEqual[int]("X", "Y")))

	ok, err := c.IsConsistent(Assignment[int]{"X": 1})
	require.NoError(t, err)
	assert.True(t, ok, "partial assignment is not rejected")

	ok, err = c.IsConsistent(Assignment[int]{"X": 1, "Y": 1})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.IsConsistent(Assignment[int]{"X": 1, "Y": 2})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCSP_IsConsistentSurfacesErrors(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.AddConstraint(ConstraintFunc[int](func(a Assignment[int]) (bool, error) {
		x, err := a.Value("X")
		if err != nil {
			return false, err
		}
		return x > 0, nil
	})))

	ok, err := c.IsConsistent(Assignment[int]{})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedCSP)
	assert.ErrorIs(t, err, ErrUnassignedVariable)
	assert.Contains(t, err.Error(), "constraint 0")
}

func TestCSP_ValidateRejectsUndeclaredNames(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.AddVariable("X", []int{1, 2}))
	require.NoError(t, c.AddVariable("Y", []int{1, 2}))
	require.NoError(t, c.AddConstraint(NotEqual[int]("X", "y")))

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCSP)
	assert.ErrorIs(t, err, ErrUndeclaredVariable)
	assert.Contains(t, err.Error(), `"y"`)

	ok, err := c.IsConsistent(Assignment[int]{"X": 1, "Y": 1})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUndeclaredVariable)

	// Declaring the name later makes the CSP valid.
	require.NoError(t, c.AddVariable("y", []int{3}))
	assert.NoError(t, c.Validate())
}

func TestCSP_ValidateIgnoresUnscopedConstraints(t *testing.T) {
	c := New[int]()
	require.NoError(t, c.AddConstraint(ConstraintFunc[int](func(Assignment[int]) (bool, error) {
		return true, nil
	})))
	assert.NoError(t, c.Validate())
}

func TestAssignment_Accessors(t *testing.T) {
	a := Assignment[int]{"X": 3}

	v, ok := a.Get("X")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = a.Get("Y")
	assert.False(t, ok)

	v, err := a.Value("X")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = a.Value("Y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedCSP) && errors.Is(err, ErrUnassignedVariable))
	assert.Contains(t, err.Error(), `"Y"`)

	assert.True(t, a.Has("X"))
	assert.False(t, a.Has("X", "Y"))

	clone := a.Clone()
	clone["X"] = 4
	assert.Equal(t, 3, a["X"])

	var empty Assignment[int]
	assert.NotNil(t, empty.Clone())
}

func TestHelperConstraints(t *testing.T) {
	t.Run("AllDifferent", func(t *testing.T) {
		c := AllDifferent[int]("A", "B", "C")
		ok, _ := c.Check(Assignment[int]{"A": 1, "C": 2})
		assert.True(t, ok)
		ok, _ = c.Check(Assignment[int]{"A": 1, "B": 2, "C": 1})
		assert.False(t, ok)
	})

	t.Run("Unary", func(t *testing.T) {
		even := Unary("A", func(v int) bool { return v%2 == 0 })
		ok, _ := even.Check(Assignment[int]{})
		assert.True(t, ok)
		ok, _ = even.Check(Assignment[int]{"A": 3})
		assert.False(t, ok)
	})

	t.Run("Scope", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B"}, NotEqual[int]("A", "B").(Scoped).Scope())
		assert.Equal(t, []string{"A", "B", "C"}, AllDifferent[int]("A", "B", "C").(Scoped).Scope())
		assert.Equal(t, []string{"A"}, Unary("A", func(int) bool { return true }).(Scoped).Scope())

		names := []string{"P", "Q"}
		sum := Over[int](func(Assignment[int]) (bool, error) { return true, nil }, names...)
		names[0] = "Z"
		assert.Equal(t, []string{"P", "Q"}, sum.(Scoped).Scope(), "scope is copied")
	})

	t.Run("Binary", func(t *testing.T) {
		less := Binary("A", "B", func(a, b int) bool { return a < b })
		ok, _ := less.Check(Assignment[int]{"A": 5})
		assert.True(t, ok)
		ok, _ = less.Check(Assignment[int]{"A": 5, "B": 2})
		assert.False(t, ok)
	})
}
