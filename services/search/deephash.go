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
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Markers written ahead of values that could otherwise hash alike.
const (
	markNil byte = iota
	markPresent
	markCycle
	markOpaque
)

// deepHash hashes v by walking it with reflection, unexported fields
// included.
//
// Description:
//
//	Values that go-cmp would report equal hash equal: pointers are
//	followed, map entries are combined without regard to iteration order,
//	and -0 hashes like +0. Types with an Equal method contribute only
//	their type name, since go-cmp defers to that method. Funcs and
//	channels contribute only their kind.
func deepHash(v reflect.Value) uint64 {
	w := &hashWalker{d: xxhash.New(), onStack: make(map[uintptr]bool)}
	w.walk(v)
	return w.d.Sum64()
}

type hashWalker struct {
	d       *xxhash.Digest
	onStack map[uintptr]bool
	buf     [8]byte
}

func (w *hashWalker) writeByte(b byte) {
	w.buf[0] = b
	_, _ = w.d.Write(w.buf[:1])
}

func (w *hashWalker) writeUint64(u uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], u)
	_, _ = w.d.Write(w.buf[:])
}

func (w *hashWalker) writeFloat(f float64) {
	if f == 0 {
		f = 0
	}
	w.writeUint64(math.Float64bits(f))
}

func (w *hashWalker) walk(v reflect.Value) {
	if !v.IsValid() {
		w.writeByte(markNil)
		return
	}
	if hasEqualMethod(v.Type()) {
		w.writeByte(markOpaque)
		_, _ = w.d.WriteString(v.Type().String())
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			w.writeByte(1)
		} else {
			w.writeByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.writeUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.writeUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.writeFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		w.writeFloat(real(c))
		w.writeFloat(imag(c))
	case reflect.String:
		w.writeUint64(uint64(v.Len()))
		_, _ = w.d.WriteString(v.String())
	case reflect.Array, reflect.Slice:
		w.writeUint64(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.walk(v.Field(i))
		}
	case reflect.Map:
		w.walkMap(v)
	case reflect.Pointer:
		w.walkPointer(v)
	case reflect.Interface:
		if v.IsNil() {
			w.writeByte(markNil)
			return
		}
		elem := v.Elem()
		w.writeByte(markPresent)
		_, _ = w.d.WriteString(elem.Type().String())
		w.walk(elem)
	default:
		w.writeByte(markOpaque)
		w.writeUint64(uint64(v.Kind()))
	}
}

// walkMap sums per-entry hashes so iteration order does not matter.
func (w *hashWalker) walkMap(v reflect.Value) {
	if v.IsNil() {
		w.writeByte(markNil)
		return
	}
	var sum uint64
	iter := v.MapRange()
	for iter.Next() {
		entry := &hashWalker{d: xxhash.New(), onStack: w.onStack}
		entry.walk(iter.Key())
		entry.walk(iter.Value())
		sum += entry.d.Sum64()
	}
	w.writeByte(markPresent)
	w.writeUint64(uint64(v.Len()))
	w.writeUint64(sum)
}

// walkPointer follows p unless it is already being walked, which only
// happens for cyclic values.
func (w *hashWalker) walkPointer(p reflect.Value) {
	if p.IsNil() {
		w.writeByte(markNil)
		return
	}
	addr := p.Pointer()
	if w.onStack[addr] {
		w.writeByte(markCycle)
		return
	}
	w.onStack[addr] = true
	w.writeByte(markPresent)
	w.walk(p.Elem())
	delete(w.onStack, addr)
}
