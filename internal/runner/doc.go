// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner executes a command line as a child process.
//
// A Runner is bound to an optional expected system and architecture, checked
// once by New. Run splits the command line on whitespace (there is no shell
// and no quoting), makes sure the command can be found in PATH, starts it,
// streams its output while capturing it, and waits for it to exit.
//
// Errors fall into two groups:
//
//   - ErrPrecondition: the platform did not match, the command line was empty,
//     or the executable could not be found. No process was started.
//   - ErrChildProcess: the child ran and exited unsuccessfully. The error is an
//     *ExitError carrying the exit code.
//
// Run blocks until the child exits. There is no timeout. Signals delivered on
// the channel passed to WithSignals are forwarded to the child.
package runner
