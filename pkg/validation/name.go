// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for caller-supplied names.
//
// Names flow into error messages, log records and span attributes, so they
// are kept printable and bounded.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest accepted name, in bytes.
const MaxNameLength = 128

// Validation errors. Wrapped errors carry the offending value.
var (
	ErrEmpty            = errors.New("name cannot be empty")
	ErrTooLong          = errors.New("name too long")
	ErrInvalidEncoding  = errors.New("name is not valid UTF-8")
	ErrInvalidCharacter = errors.New("name contains a control character")
	ErrPadded           = errors.New("name has leading or trailing whitespace")
)

// ValidateName checks a variable or component name.
//
// Valid names:
//   - 1 to MaxNameLength bytes of valid UTF-8
//   - No control characters (newlines, tabs, NUL)
//   - No leading or trailing whitespace
//
// Example:
//
//	if err := validation.ValidateName(name); err != nil {
//	    return fmt.Errorf("invalid variable: %w", err)
//	}
func ValidateName(name string) error {
	if name == "" {
		return ErrEmpty
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLong, len(name), MaxNameLength)
	}
	if !utf8.ValidString(name) {
		return ErrInvalidEncoding
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrInvalidCharacter, name)
		}
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q", ErrPadded, name)
	}
	return nil
}
