// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/whence/internal/platform"
)

// Naming is an executable naming convention.
// Names returns every file name a command may carry, the command itself first.
type Naming interface {
	Names(command string) []string
}

// SuffixNaming appends each suffix to a command that does not already end in it.
// Suffix comparison ignores case. A nil SuffixNaming only yields the command itself.
type SuffixNaming []string

var _ Naming = SuffixNaming(nil)

// Names implements Naming.
func (s SuffixNaming) Names(command string) []string {
	names := []string{command}
	lower := strings.ToLower(command)

	for _, suffix := range s {
		if suffix == "" || strings.HasSuffix(lower, strings.ToLower(suffix)) {
			continue
		}

		names = append(names, command+suffix)
	}

	return names
}

// NamingFor returns the naming convention of the given GOOS.
func NamingFor(goos string) Naming {
	if goos == platform.Windows {
		return SuffixNaming{".exe"}
	}

	return SuffixNaming(nil)
}

// HostNaming returns the naming convention of the running host.
func HostNaming() Naming {
	return NamingFor(runtime.GOOS)
}
