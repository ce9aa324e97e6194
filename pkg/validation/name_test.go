// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{"single letter", "X", nil},
		{"snake case", "study_hours", nil},
		{"with spaces inside", "New South Wales", nil},
		{"unicode", "Zürich", nil},
		{"max length", strings.Repeat("a", MaxNameLength), nil},

		// Invalid names
		{"empty", "", ErrEmpty},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrTooLong},
		{"bad utf8", "X\xff", ErrInvalidEncoding},
		{"newline", "X\nY", ErrInvalidCharacter},
		{"nul", "X\x00", ErrInvalidCharacter},
		{"leading space", " X", ErrPadded},
		{"trailing space", "X ", ErrPadded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
