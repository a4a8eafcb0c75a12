// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/spf13/afero"
)

// FsLookPath returns a LookPathFunc that searches the directories of pathList
// (formatted like the PATH environment variable) on fsys.
// A match must not be a directory and, except on Windows, must have an execute bit set.
// Commands containing a path separator are checked as given instead of searched.
func FsLookPath(fsys afero.Fs, pathList string, naming Naming) LookPathFunc {
	if naming == nil {
		naming = HostNaming()
	}

	return func(command string) (string, error) {
		if command == "" {
			return "", ErrNotFound
		}

		if strings.ContainsAny(command, `/\`) {
			for _, name := range naming.Names(command) {
				if isExecutable(fsys, name) {
					return name, nil
				}
			}

			return "", fmt.Errorf("%w: %s", ErrNotFound, command)
		}

		for _, dir := range filepath.SplitList(pathList) {
			if dir == "" {
				continue
			}

			for _, name := range naming.Names(command) {
				p := filepath.Join(dir, name)
				if isExecutable(fsys, p) {
					return p, nil
				}
			}
		}

		return "", fmt.Errorf("%w: %s in %q", ErrNotFound, command, pathList)
	}
}

func isExecutable(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	// check if the command is executable if not Windows
	if runtime.GOOS != platform.Windows && info.Mode()&0o111 == 0 {
		return false
	}

	return true
}
