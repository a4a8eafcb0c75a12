// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/matt-FFFFFF/whence/internal/resolver"
)

var (
	// ErrInvalidCatalog is returned when a catalog fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrMissingName is returned for a tool without a name.
	ErrMissingName = errors.New("tool has no name")
	// ErrMissingCommand is returned for a tool without a command.
	ErrMissingCommand = errors.New("tool has no command")
	// ErrDuplicateName is returned when two tools share a name.
	ErrDuplicateName = errors.New("duplicate tool name")
	// ErrEmptyHint is returned when a tool lists an empty hint directory.
	ErrEmptyHint = errors.New("empty hint")
	// ErrUnknownTool is returned by Lookup for names that are not in the catalog.
	ErrUnknownTool = errors.New("unknown tool")
)

// Tool is a named executable lookup.
type Tool struct {
	Name           string   `yaml:"name" hcl:"name,label" docdesc:"Name the tool is looked up by"`
	Description    string   `yaml:"description,omitempty" hcl:"description,optional" docdesc:"What the tool is"`
	Command        string   `yaml:"command" hcl:"command" docdesc:"Executable name or path"`
	Hints          []string `yaml:"hints,omitempty" hcl:"hints,optional" docdesc:"Directories searched after the system PATH, in order"`
	Subdirectories []string `yaml:"subdirectories,omitempty" hcl:"subdirectories,optional" docdesc:"Paths below every hint searched before the hint itself"`
	Recursive      bool     `yaml:"recursive,omitempty" hcl:"recursive,optional" docdesc:"Search every directory below each hint"`
	// Systems limits the tool to these operating systems. Empty means every system.
	Systems []string `yaml:"systems,omitempty" hcl:"systems,optional" docdesc:"Operating systems the tool is meant for; empty means all"`
}

// Catalog is an ordered list of tools.
type Catalog struct {
	Tools []Tool `yaml:"tools" hcl:"tool,block" docdesc:"Tool definitions"`
}

// Request returns the resolver request for the tool.
func (t Tool) Request() resolver.Request {
	return resolver.Request{
		Command:        t.Command,
		Hints:          slices.Clone(t.Hints),
		Subdirectories: slices.Clone(t.Subdirectories),
		Recursive:      t.Recursive,
	}
}

// Applies reports whether the tool is meant for host.
func (t Tool) Applies(h platform.Host) bool {
	if len(t.Systems) == 0 {
		return true
	}

	return slices.ContainsFunc(t.Systems, func(s string) bool {
		return platform.SystemMatches(s, h.System)
	})
}

// Builtin returns the tools every catalog starts from.
func Builtin() *Catalog {
	return &Catalog{
		Tools: []Tool{
			{
				Name:        "cmake",
				Description: "CMake from the system PATH",
				Command:     "cmake",
			},
			{
				Name:        "msbuild",
				Description: "MSBuild from a Visual Studio installation",
				Command:     "msbuild.exe",
				Hints:       []string{"C:/Program Files (x86)/Microsoft Visual Studio"},
				Recursive:   true,
				Systems:     []string{platform.Windows},
			},
		},
	}
}

// Validate reports every problem in the catalog at once.
func (c *Catalog) Validate() error {
	var result error

	seen := make(map[string]int, len(c.Tools))

	for i, t := range c.Tools {
		where := fmt.Sprintf("tool %d", i)
		if t.Name != "" {
			where = fmt.Sprintf("tool %q", t.Name)
		}

		if strings.TrimSpace(t.Name) == "" {
			result = multierror.Append(result, fmt.Errorf("%s: %w", where, ErrMissingName))
		} else if first, dup := seen[t.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("%s: %w (first defined as tool %d)", where, ErrDuplicateName, first))
		} else {
			seen[t.Name] = i
		}

		if strings.TrimSpace(t.Command) == "" {
			result = multierror.Append(result, fmt.Errorf("%s: %w", where, ErrMissingCommand))
		}

		for j, h := range t.Hints {
			if strings.TrimSpace(h) == "" {
				result = multierror.Append(result, fmt.Errorf("%s: hint %d: %w", where, j, ErrEmptyHint))
			}
		}
	}

	if result != nil {
		return errors.Join(ErrInvalidCatalog, result)
	}

	return nil
}

// Merge returns a new catalog holding c's tools overridden and extended by others, in order.
// A tool in a later catalog replaces an earlier tool of the same name in place.
func (c *Catalog) Merge(others ...*Catalog) *Catalog {
	out := &Catalog{Tools: slices.Clone(c.Tools)}

	for _, o := range others {
		if o == nil {
			continue
		}

		for _, t := range o.Tools {
			i := slices.IndexFunc(out.Tools, func(existing Tool) bool {
				return existing.Name == t.Name
			})
			if i >= 0 {
				out.Tools[i] = t
				continue
			}

			out.Tools = append(out.Tools, t)
		}
	}

	return out
}

// Lookup returns the tool called name.
func (c *Catalog) Lookup(name string) (Tool, error) {
	for _, t := range c.Tools {
		if t.Name == name {
			return t, nil
		}
	}

	return Tool{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
}

// Names returns the tool names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Tools))
	for _, t := range c.Tools {
		names = append(names, t.Name)
	}

	slices.Sort(names)

	return names
}
