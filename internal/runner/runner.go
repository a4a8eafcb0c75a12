// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"io"
	"os"

	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/matt-FFFFFF/whence/internal/resolver"
)

// Locator finds a command in the system PATH. *resolver.Resolver implements it.
type Locator interface {
	LookPath(command string) (string, bool)
}

// Logger receives the runner's diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Result describes a finished child process.
type Result struct {
	Command  []string // Argument vector, the command name first.
	Path     string   // Resolved executable path.
	ExitCode int      // Exit status, -1 if the child was terminated by a signal.
	Stdout   []byte   // Captured standard output.
	Stderr   []byte   // Captured standard error.
}

// Runner runs command lines on a host that matched its constraint at construction.
type Runner struct {
	host       platform.Host
	constraint platform.Constraint
	locator    Locator
	logger     Logger
	stdin      *os.File
	stdout     io.Writer
	stderr     io.Writer
	signals    <-chan os.Signal
}

// Option configures a Runner.
type Option func(*Runner)

// WithLocator sets how commands are found. Defaults to a resolver.Resolver using the same logger.
func WithLocator(l Locator) Option {
	return func(r *Runner) {
		r.locator = l
	}
}

// WithHost overrides the detected host the constraint is checked against.
func WithHost(h platform.Host) Option {
	return func(r *Runner) {
		r.host = h
	}
}

// WithLogger sets the logger. Defaults to ctxlog.DefaultLogger.
func WithLogger(l Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithStdin sets the child's standard input. Defaults to os.Stdin; nil leaves it closed.
func WithStdin(f *os.File) Option {
	return func(r *Runner) {
		r.stdin = f
	}
}

// WithStdout sets where the child's standard output is streamed. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr sets where the child's standard error is streamed. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithSignals forwards signals received on ch to the running child.
func WithSignals(ch <-chan os.Signal) Option {
	return func(r *Runner) {
		r.signals = ch
	}
}

// New creates a Runner and checks constraint against the host once.
// A mismatch is returned as an error matching both ErrPrecondition and platform.ErrMismatch.
func New(constraint platform.Constraint, opts ...Option) (*Runner, error) {
	r := &Runner{
		host:       platform.Current(),
		constraint: constraint,
		logger:     ctxlog.DefaultLogger,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.locator == nil {
		r.locator = resolver.New(resolver.WithLogger(r.logger))
	}

	if r.stdout == nil {
		r.stdout = io.Discard
	}

	if r.stderr == nil {
		r.stderr = io.Discard
	}

	if err := constraint.Check(r.host); err != nil {
		return nil, errors.Join(ErrPrecondition, err)
	}

	r.logger.Info("runner ready",
		"system", r.host.System,
		"arch", r.host.Arch,
		"expectedSystem", constraint.System,
		"expectedArch", constraint.Arch,
	)

	return r, nil
}

// Host returns the host the constraint was checked against.
func (r *Runner) Host() platform.Host {
	return r.host
}

// Constraint returns the constraint the Runner was built with.
func (r *Runner) Constraint() platform.Constraint {
	return r.constraint
}
