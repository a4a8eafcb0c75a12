// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/spf13/afero"
)

// currentDir is always searched after the caller's subdirectories.
const currentDir = "."

// ErrNotFound is returned by PATH lookups that find nothing.
var ErrNotFound = errors.New("executable not found")

// Logger receives the resolver's diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// LookPathFunc finds a command in the system PATH, like exec.LookPath.
type LookPathFunc func(command string) (string, error)

// Request describes a single lookup.
type Request struct {
	// Command is the executable name or path. It must not be empty.
	Command string
	// Hints are directories searched after the system PATH, in order.
	Hints []string
	// Subdirectories are relative paths joined to every hint, in order.
	// The hint itself is always tried last.
	Subdirectories []string
	// Recursive enables an unbounded descent below every hinted directory.
	Recursive bool
}

// Resolver performs lookups. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	fs       afero.Fs
	lookPath LookPathFunc
	naming   Naming
	logger   Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs sets the filesystem that literal paths and hints are checked against.
func WithFs(fsys afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithLookPath replaces exec.LookPath as the system PATH primitive.
func WithLookPath(fn LookPathFunc) Option {
	return func(r *Resolver) {
		r.lookPath = fn
	}
}

// WithNaming sets the executable naming convention. Defaults to HostNaming().
func WithNaming(n Naming) Option {
	return func(r *Resolver) {
		r.naming = n
	}
}

// WithLogger sets the logger. Defaults to ctxlog.DefaultLogger.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookPath: exec.LookPath,
		naming:   HostNaming(),
		logger:   ctxlog.DefaultLogger,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.fs == nil {
		r.fs = FsFactory()
	}

	return r
}

// Resolve returns the path of the executable described by req.
// ok is false when no search layer produced a match.
func (r *Resolver) Resolve(req Request) (path string, ok bool) {
	if req.Command == "" {
		r.logger.Debug("empty command, nothing to resolve")
		return "", false
	}

	names := r.naming.Names(req.Command)

	for _, name := range names {
		if _, err := r.fs.Stat(name); err == nil {
			r.logger.Debug("command exists as a literal path", "path", name)
			return name, true
		}
	}

	if p, ok := r.LookPath(req.Command); ok {
		return p, true
	}

	subdirs := slices.Concat(req.Subdirectories, []string{currentDir})

	for _, hint := range req.Hints {
		for _, sub := range subdirs {
			if p, ok := r.searchLocation(filepath.Join(hint, sub), names, req.Recursive); ok {
				return p, true
			}
		}
	}

	r.logger.Debug("command not found", "command", req.Command, "hints", req.Hints)

	return "", false
}

// LookPath runs only the system PATH layer.
func (r *Resolver) LookPath(command string) (string, bool) {
	if command == "" {
		return "", false
	}

	p, err := r.lookPath(command)
	if err != nil {
		r.logger.Debug("command not in PATH", "command", command, "error", err)
		return "", false
	}

	r.logger.Debug("command found in PATH", "command", command, "path", p)

	return p, true
}

func (r *Resolver) searchLocation(location string, names []string, recursive bool) (string, bool) {
	r.logger.Debug("searching location", "path", location, "names", names)

	info, err := r.fs.Stat(location)
	if err != nil {
		r.logger.Warn("location does not exist, ignoring", "path", location, "error", err)
		return "", false
	}

	if !info.IsDir() {
		if slices.Contains(names, filepath.Base(location)) {
			return location, true
		}

		return "", false
	}

	for _, name := range names {
		p := filepath.Join(location, name)
		if fi, err := r.fs.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
	}

	if !recursive {
		return "", false
	}

	matches := r.descend(location, names)
	if len(matches) == 0 {
		return "", false
	}

	if len(matches) > 1 {
		r.logger.Warn("multiple executables found with the same name, returning the first",
			"root", location, "matches", matches, "returning", matches[0])
	}

	return matches[0], true
}

// descend walks root and returns every non-directory entry named like the command.
// Matches for names[0] come first, then names[1], and so on; each group is in walk order.
func (r *Resolver) descend(root string, names []string) []string {
	found := make([][]string, len(names))

	walkErr := afero.Walk(r.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			r.logger.Debug("skipping unreadable path", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if i := slices.Index(names, info.Name()); i >= 0 {
			found[i] = append(found[i], path)
		}

		return nil
	})
	if walkErr != nil {
		r.logger.Debug("walk ended early", "root", root, "error", walkErr)
	}

	return slices.Concat(found...)
}
