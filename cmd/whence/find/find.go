// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package find implements the find command.
package find

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/whence/internal/color"
	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/matt-FFFFFF/whence/internal/resolver"
	"github.com/urfave/cli/v3"
)

const (
	commandArg    = "command"
	hintFlag      = "hint"
	subdirFlag    = "subdir"
	recursiveFlag = "recursive"
	jsonFlag      = "json"
	cliExitStr    = ""
	jsonIndent    = 2
)

var (
	// ErrNoCommand is returned when no command name is given.
	ErrNoCommand = errors.New("no command specified")
	// ErrWriteOutput is returned when the result cannot be written.
	ErrWriteOutput = errors.New("failed to write output")
)

// FindCmd locates an executable and prints its path.
var FindCmd = newFindCmd()

func newFindCmd() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "Locate an executable",
		Description: `Locate an executable by name or path.

The command is checked as a literal path first, then in the system PATH,
then in every hint directory. Each hint is combined with every --subdir in order,
and finally searched on its own. With --recursive the whole tree below each
hint is searched as well.

Exits with status 1 when nothing is found.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      commandArg,
				UsageText: "COMMAND",
			},
		},
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    hintFlag,
				Aliases: []string{"H"},
				Usage:   "Directory to search after the system PATH. Specify multiple times to search several directories.",
			},
			&cli.StringSliceFlag{
				Name:    subdirFlag,
				Aliases: []string{"s"},
				Usage:   "Subdirectory of each hint to search first, for example bin. Specify multiple times.",
			},
			&cli.BoolFlag{
				Name:        recursiveFlag,
				Aliases:     []string{"r"},
				Usage:       "Search every directory below each hint",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        jsonFlag,
				Usage:       "Print the result as JSON",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	req := resolver.Request{
		Command:        cmd.StringArg(commandArg),
		Hints:          cmd.StringSlice(hintFlag),
		Subdirectories: cmd.StringSlice(subdirFlag),
		Recursive:      cmd.Bool(recursiveFlag),
	}

	if req.Command == "" {
		logger.Error("Please specify the command to find.")
		return cli.Exit(ErrNoCommand.Error(), 1)
	}

	r := resolver.New(resolver.WithLogger(logger))
	path, ok := r.Resolve(req)

	w := cmd.Root().Writer

	if cmd.Bool(jsonFlag) {
		f := colorjson.NewFormatter()
		f.Indent = jsonIndent
		f.DisabledColor = !colorFor(w)

		out, err := f.Marshal(map[string]any{
			"command": req.Command,
			"found":   ok,
			"path":    path,
		})
		if err != nil {
			return errors.Join(ErrWriteOutput, err)
		}

		if _, err := fmt.Fprintln(w, string(out)); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	} else if ok {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}

	if !ok {
		logger.Error(fmt.Sprintf("%s not found", req.Command), "hints", req.Hints)
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return color.EnabledFor(f)
}
