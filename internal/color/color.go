// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = 0
	Bold  Code = 1
	Faint Code = 2
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled = isColorCapable(os.Stderr)

// Enabled reports whether color output was detected as wanted at start-up.
// NO_COLOR wins over FORCE_COLOR; with neither set, stderr must be a terminal.
func Enabled() bool {
	return enabled
}

// EnabledFor reports whether color output is wanted on f, using the same rules as Enabled.
func EnabledFor(f *os.File) bool {
	return isColorCapable(f)
}

// Colorize applies the codes only when Enabled reports true.
func Colorize(str string, codes ...Code) string {
	if !enabled {
		return str
	}

	return Paint(str, codes...)
}

// Paint wraps str in the given codes followed by a reset, regardless of terminal detection.
func Paint(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	nums := make([]string, len(codes))
	for i, c := range codes {
		nums[i] = strconv.Itoa(int(c))
	}

	var sb strings.Builder

	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + 3*len(codes)) //nolint:mnd
	sb.WriteString(prefix)
	sb.WriteString(strings.Join(nums, ";"))
	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func isColorCapable(f *os.File) bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}
