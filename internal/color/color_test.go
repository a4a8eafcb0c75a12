// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorCapable(nil), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorCapable(nil), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv(NoColor, "")
	assert.True(t, isColorCapable(nil), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")

	t.Setenv(ForceColor, "")
	assert.False(t, isColorCapable(nil), "Expected no colour without a terminal")
}

func TestPaint(t *testing.T) {
	tests := []struct {
		name  string
		codes []Code
		want  string
	}{
		{name: "no codes", codes: nil, want: "text"},
		{name: "single code", codes: []Code{FgRed}, want: "\033[31mtext\033[0m"},
		{name: "multiple codes", codes: []Code{Bold, FgHiGreen}, want: "\033[1;92mtext\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paint("text", tt.codes...))
		})
	}
}

func TestColorize_Disabled(t *testing.T) {
	orig := enabled
	enabled = false

	t.Cleanup(func() { enabled = orig })

	assert.Equal(t, "plain", Colorize("plain", FgRed))
}
