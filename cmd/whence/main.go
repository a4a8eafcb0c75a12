// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the whence command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/whence"
	"github.com/matt-FFFFFF/whence/cmd/whence/find"
	"github.com/matt-FFFFFF/whence/cmd/whence/run"
	"github.com/matt-FFFFFF/whence/cmd/whence/schema"
	"github.com/matt-FFFFFF/whence/cmd/whence/tool"
	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		find.FindCmd,
		run.RunCmd,
		tool.ToolCmd,
		tool.ToolsCmd,
		schema.SchemaCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "whence",
	Description: `whence locates executables and runs command lines.

It looks for a command as a literal path, then in the system PATH, then in
hint directories you name, optionally searching them recursively. It can also
run a command line after checking that the host matches an expected system and
architecture, passing the command's exit status back.

Set WHENCE_LOG_LEVEL to DEBUG, INFO, WARN or ERROR to control diagnostics.`,
	Usage:     "whence find cmake --hint /opt/cmake --subdir bin",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", whence.Version, whence.Commit)

	err := rootCmd.Run(ctx, os.Args) // Exit codes are handled by the cli framework
	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
}
