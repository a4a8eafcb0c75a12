// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run command.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/matt-FFFFFF/whence/internal/runner"
	"github.com/matt-FFFFFF/whence/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

const (
	systemFlag = "system"
	archFlag   = "arch"
	cliExitStr = ""
)

// RunCmd runs a command line as a child process.
var RunCmd = newRunCmd()

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a command line on a matching platform",
		ArgsUsage: "[--] COMMAND [ARGS...]",
		Description: `Run a command line and wait for it.

The arguments are joined with spaces and split again on whitespace. There is no
shell: quotes, pipes and variables are passed to the command unchanged.
The command must be in the system PATH.

With --system or --arch the host is checked first and nothing is run on a mismatch.
Interrupts are passed on to the command; a second identical interrupt kills it.

Exits with the command's exit status. Use -- before the command when its
arguments start with a dash.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     systemFlag,
				Usage:    "Required operating system, for example linux, darwin or windows",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     archFlag,
				Usage:    "Required architecture, for example amd64, arm64 or 64bit",
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	constraint := platform.Constraint{
		System: cmd.String(systemFlag),
		Arch:   cmd.String(archFlag),
	}

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	root := cmd.Root()

	r, err := runner.New(constraint,
		runner.WithLogger(logger),
		runner.WithSignals(sigCh),
		runner.WithStdout(writerOr(root.Writer, os.Stdout)),
		runner.WithStderr(writerOr(root.ErrWriter, os.Stderr)),
	)
	if err != nil {
		logger.Error(fmt.Sprintf("Refusing to run: %s", err.Error()), "host", platform.Current().String())
		return cli.Exit(cliExitStr, 1)
	}

	line := strings.Join(cmd.Args().Slice(), " ")

	res, err := r.Run(line)
	if err == nil {
		return nil
	}

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		logger.Info("command failed", "exitCode", res.ExitCode, "lastLine", exitErr.LastLine)
		return cli.Exit(cliExitStr, exitCode(exitErr.ExitCode))
	}

	logger.Error(fmt.Sprintf("Failed to run %q: %s", line, err.Error()))

	return cli.Exit(cliExitStr, 1)
}

// exitCode maps a child's status to ours. A child killed by a signal reports -1.
func exitCode(code int) int {
	if code <= 0 {
		return 1
	}

	return code
}

func writerOr(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}

	return w
}
