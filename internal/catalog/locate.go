// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/whence/internal/resolver"
	"github.com/spf13/afero"
)

// ErrToolNotFound is returned when a tool's executable cannot be located.
var ErrToolNotFound = errors.New("tool not found")

// Resolver is the lookup Locate needs. *resolver.Resolver implements it.
type Resolver interface {
	Resolve(req resolver.Request) (string, bool)
}

// Locate resolves the tool's executable. A result that is a directory counts as not found.
func Locate(r Resolver, t Tool) (string, error) {
	p, ok := r.Resolve(t.Request())
	if !ok {
		return "", fmt.Errorf("%w: %s (command %q)", ErrToolNotFound, t.Name, t.Command)
	}

	if isDir, err := afero.IsDir(FsFactory(), p); err == nil && isDir {
		return "", fmt.Errorf("%w: %s resolved to directory %s", ErrToolNotFound, t.Name, p)
	}

	return p, nil
}
