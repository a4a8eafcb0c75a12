// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is matched by every error returned before a process is started.
	ErrPrecondition = errors.New("precondition failed")
	// ErrEmptyCommandLine is returned when the command line holds no tokens.
	ErrEmptyCommandLine = errors.New("empty command line")
	// ErrExecutableNotFound is returned when the command is not in PATH.
	ErrExecutableNotFound = errors.New("executable not found in PATH")
	// ErrChildProcess is matched by every *ExitError.
	ErrChildProcess = errors.New("child process failed")
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when the operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrWait is returned when waiting for the process failed.
	ErrWait = errors.New("failed to wait for process")
)

// ExitError reports a child that exited unsuccessfully.
type ExitError struct {
	// Command is the argument vector that was run.
	Command []string
	// ExitCode is the child's exit status, or -1 if it was terminated by a signal.
	ExitCode int
	// LastLine is the last line the child wrote to stderr.
	LastLine string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
	if e.LastLine != "" {
		msg += ": " + e.LastLine
	}

	return msg
}

// Is makes errors.Is(err, ErrChildProcess) true.
func (e *ExitError) Is(target error) bool {
	return target == ErrChildProcess
}
