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
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/hashstructure/v2"
)

// unhashableBucket collects states the structural hasher rejects.
const unhashableBucket uint64 = 0

// compareUnexported lets cmp.Equal look inside unexported struct fields.
var compareUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// exploredSet records states that have already been expanded.
//
// Description:
//
//	Deduplication is by value, not by allocation: two separately built
//	states with the same contents are the same state. The representation
//	is chosen once per state type:
//
//	  - Plain value types (numbers, strings, bools, and arrays or structs
//	    of them, exported or not) key a map directly. Go equality on such
//	    types agrees with structural equality.
//	  - Types with only exported fields are hashed with hashstructure.
//	  - Anything else is hashed by a reflection walk that reads unexported
//	    fields too.
//
//	Hashed states are bucketed and compared with go-cmp within a bucket,
//	so hash collisions cost time but never correctness. A problem that
//	implements StateHasher or StateEqualer always uses buckets.
//
// Thread Safety: Not safe for concurrent use.
type exploredSet[S any] struct {
	keyed   map[any]struct{}
	buckets map[uint64][]S
	hash    func(S) uint64
	equal   func(a, b S) bool
	size    int
}

// newExploredSet picks hashing and equality from the problem's optional
// capabilities, falling back to structural defaults.
func newExploredSet[S any](problem Problem[S]) *exploredSet[S] {
	h, hasHasher := problem.(StateHasher[S])
	eq, hasEqualer := problem.(StateEqualer[S])

	if !hasHasher && !hasEqualer && isPlainValue(reflect.TypeFor[S]()) {
		return &exploredSet[S]{keyed: make(map[any]struct{})}
	}

	e := &exploredSet[S]{
		buckets: make(map[uint64][]S),
		hash:    structuralHashFor[S](),
		equal:   structuralEqual[S],
	}
	switch {
	case hasHasher:
		e.hash = h.HashState
	case hasEqualer:
		// Structural hashes may split states the problem considers equal.
		e.hash = func(S) uint64 { return unhashableBucket }
	}
	if hasEqualer {
		e.equal = eq.EqualStates
	}
	return e
}

// Add records state. Returns false if an equal state was already present.
func (e *exploredSet[S]) Add(state S) bool {
	if e.keyed != nil {
		if _, ok := e.keyed[any(state)]; ok {
			return false
		}
		e.keyed[any(state)] = struct{}{}
		e.size++
		return true
	}

	key := e.hash(state)
	for _, seen := range e.buckets[key] {
		if e.equal(seen, state) {
			return false
		}
	}
	e.buckets[key] = append(e.buckets[key], state)
	e.size++
	return true
}

// Len returns the number of distinct states recorded.
func (e *exploredSet[S]) Len() int {
	return e.size
}

// structuralHashFor returns the default hash function for S.
func structuralHashFor[S any]() func(S) uint64 {
	if exportedOnly(reflect.TypeFor[S](), make(map[reflect.Type]bool)) {
		return hashExported[S]
	}
	return hashDeep[S]
}

func hashExported[S any](state S) uint64 {
	h, err := hashstructure.Hash(state, hashstructure.FormatV2, nil)
	if err != nil {
		return unhashableBucket
	}
	return h
}

func hashDeep[S any](state S) uint64 {
	return deepHash(reflect.ValueOf(any(state)))
}

func structuralEqual[S any](a, b S) bool {
	return cmp.Equal(a, b, compareUnexported)
}

// isPlainValue reports whether == on t means the same as structural
// equality: no pointers, slices, maps, interfaces, funcs or channels
// anywhere inside, and no Equal method for go-cmp to prefer.
func isPlainValue(t reflect.Type) bool {
	if hasEqualMethod(t) {
		return false
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlainValue(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlainValue(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func hasEqualMethod(t reflect.Type) bool {
	if _, ok := t.MethodByName("Equal"); ok {
		return true
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface {
		_, ok := reflect.PointerTo(t).MethodByName("Equal")
		return ok
	}
	return false
}

// exportedOnly reports whether every value reachable from t is visible to
// hashstructure: no unexported struct fields, no interfaces whose dynamic
// types cannot be checked ahead of time, and no Equal methods.
func exportedOnly(t reflect.Type, seen map[reflect.Type]bool) bool {
	if seen[t] {
		return true
	}
	seen[t] = true
	if hasEqualMethod(t) {
		return false
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return exportedOnly(t.Elem(), seen)
	case reflect.Map:
		return exportedOnly(t.Key(), seen) && exportedOnly(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || !exportedOnly(f.Type, seen) {
				return false
			}
		}
		return true
	case reflect.Interface:
		return false
	default:
		return true
	}
}
