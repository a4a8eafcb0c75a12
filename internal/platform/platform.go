// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ErrMismatch is the sentinel matched by every *MismatchError.
var ErrMismatch = errors.New("platform mismatch")

// Host identifies a machine by its Go operating system and architecture names.
type Host struct {
	System string
	Arch   string
}

// Current returns the host the program is running on.
func Current() Host {
	return Host{System: runtime.GOOS, Arch: runtime.GOARCH}
}

// String implements fmt.Stringer.
func (h Host) String() string {
	return h.System + "/" + h.Arch
}

// Constraint is an expected system and architecture. Empty fields are unconstrained.
type Constraint struct {
	System string
	Arch   string
}

// IsZero reports whether the constraint accepts any host.
func (c Constraint) IsZero() bool {
	return c.System == "" && c.Arch == ""
}

// MismatchError reports which part of a Constraint the host did not satisfy.
type MismatchError struct {
	Field    string // "system" or "arch"
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s %q, host has %q", ErrMismatch, e.Field, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrMismatch) true.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// Check returns nil if h satisfies c, or a *MismatchError for the first field that does not.
func (c Constraint) Check(h Host) error {
	if c.System != "" && !SystemMatches(c.System, h.System) {
		return &MismatchError{Field: "system", Expected: c.System, Actual: h.System}
	}

	if c.Arch != "" && !ArchMatches(c.Arch, h.Arch) {
		return &MismatchError{Field: "arch", Expected: c.Arch, Actual: h.Arch}
	}

	return nil
}

var systemAliases = map[string]string{
	"macos": Darwin,
	"osx":   Darwin,
	"mac":   Darwin,
	"win32": Windows,
	"win":   Windows,
}

var archAliases = map[string]string{
	"x86_64":  "amd64",
	"x64":     "amd64",
	"aarch64": "arm64",
	"armv8":   "arm64",
	"i386":    "386",
	"i686":    "386",
	"x86":     "386",
	"armv7l":  "arm",
	"armv7":   "arm",
}

// pointer width of the Go architectures whence is expected to meet.
var archBits = map[string]int{
	"386":      32,
	"arm":      32,
	"mips":     32,
	"mipsle":   32,
	"wasm":     32,
	"amd64":    64,
	"arm64":    64,
	"loong64":  64,
	"mips64":   64,
	"mips64le": 64,
	"ppc64":    64,
	"ppc64le":  64,
	"riscv64":  64,
	"s390x":    64,
}

// NormalizeSystem maps a system name to its Go GOOS spelling.
func NormalizeSystem(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := systemAliases[n]; ok {
		return alias
	}

	return n
}

// NormalizeArch maps an architecture name to its Go GOARCH spelling.
func NormalizeArch(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := archAliases[n]; ok {
		return alias
	}

	return n
}

// SystemMatches reports whether expected names the same system as actual.
func SystemMatches(expected, actual string) bool {
	return NormalizeSystem(expected) == NormalizeSystem(actual)
}

// ArchMatches reports whether expected names the same architecture as actual.
// "64bit" and "32bit" compare the pointer width of actual.
func ArchMatches(expected, actual string) bool {
	e := NormalizeArch(expected)
	a := NormalizeArch(actual)

	switch e {
	case "64bit":
		return archBits[a] == 64 //nolint:mnd
	case "32bit":
		return archBits[a] == 32 //nolint:mnd
	default:
		return e == a
	}
}
