// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tool implements the tool and tools commands.
package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matt-FFFFFF/whence/internal/catalog"
	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/matt-FFFFFF/whence/internal/resolver"
	"github.com/urfave/cli/v3"
)

const (
	nameArg     = "name"
	catalogFlag = "catalog"
	resolveFlag = "resolve"
	allFlag     = "all"
	cliExitStr  = ""
)

// ErrWriteOutput is returned when the result cannot be written.
var ErrWriteOutput = errors.New("failed to write output")

func newCatalogFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    catalogFlag,
		Aliases: []string{"c"},
		Usage: "URL of a YAML or HCL tool catalog to add to the built-in tools. " +
			"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
			"Specify multiple times; later catalogs override earlier tools of the same name.",
	}
}

// ToolCmd locates a named tool from the catalog.
var ToolCmd = newToolCmd()

func newToolCmd() *cli.Command {
	return &cli.Command{
		Name:  "tool",
		Usage: "Locate a named tool",
		Description: `Locate a tool defined in the catalog and print its path.

The built-in catalog knows cmake and msbuild. More tools can be added with --catalog.
Exits with status 1 when the tool is unknown, not meant for this system, or not found.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      nameArg,
				UsageText: "NAME",
			},
		},
		Flags:  []cli.Flag{newCatalogFlag()},
		Action: toolAction,
	}
}

// ToolsCmd lists the catalog.
var ToolsCmd = newToolsCmd()

func newToolsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List the tool catalog",
		Flags: []cli.Flag{
			newCatalogFlag(),
			&cli.BoolFlag{
				Name:        resolveFlag,
				Usage:       "Locate every tool and add its path to the list",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        allFlag,
				Aliases:     []string{"a"},
				Usage:       "Include tools meant for other systems",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: toolsAction,
	}
}

func toolAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	name := cmd.StringArg(nameArg)
	if name == "" {
		logger.Error("Please specify the tool name.")
		return cli.Exit(cliExitStr, 1)
	}

	host := platform.Current()

	cat, err := catalog.FetchAll(ctx, host, cmd.StringSlice(catalogFlag)...)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load catalog: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	t, err := cat.Lookup(name)
	if err != nil {
		logger.Error(err.Error(), "known", cat.Names())
		return cli.Exit(cliExitStr, 1)
	}

	if !t.Applies(host) {
		logger.Error(fmt.Sprintf("%s is not available on %s", t.Name, host.System), "systems", t.Systems)
		return cli.Exit(cliExitStr, 1)
	}

	path, err := catalog.Locate(resolver.New(resolver.WithLogger(logger)), t)
	if err != nil {
		logger.Error(err.Error())
		return cli.Exit(cliExitStr, 1)
	}

	if _, err := fmt.Fprintln(cmd.Root().Writer, path); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

func toolsAction(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	host := platform.Current()

	cat, err := catalog.FetchAll(ctx, host, cmd.StringSlice(catalogFlag)...)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load catalog: %s", err.Error()))
		return cli.Exit(cliExitStr, 1)
	}

	var r catalog.Resolver
	if cmd.Bool(resolveFlag) {
		r = resolver.New(resolver.WithLogger(logger))
	}

	tbl := render(cat, host, cmd.Bool(allFlag), r)

	if _, err := fmt.Fprintln(cmd.Root().Writer, tbl.Render()); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	faintStyle  = cellStyle.Foreground(lipgloss.Color("8"))
)

// render builds the catalog table. A nil resolver leaves out the path column.
func render(cat *catalog.Catalog, host platform.Host, all bool, r catalog.Resolver) *table.Table {
	headers := []string{"NAME", "COMMAND", "HINTS", "SUBDIRS", "RECURSIVE", "SYSTEMS"}
	if r != nil {
		headers = append(headers, "PATH")
	}

	var (
		rows  [][]string
		other []bool
	)

	for _, t := range cat.Tools {
		applies := t.Applies(host)
		if !applies && !all {
			continue
		}

		row := []string{
			t.Name,
			t.Command,
			strings.Join(t.Hints, "\n"),
			strings.Join(t.Subdirectories, "\n"),
			fmt.Sprintf("%t", t.Recursive),
			orAll(t.Systems),
		}

		if r != nil {
			row = append(row, locate(r, t, applies))
		}

		rows = append(rows, row)
		other = append(other, !applies)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(other) && other[row]:
				return faintStyle
			default:
				return cellStyle
			}
		})
}

func locate(r catalog.Resolver, t catalog.Tool, applies bool) string {
	if !applies {
		return "-"
	}

	p, err := catalog.Locate(r, t)
	if err != nil {
		return "not found"
	}

	return p
}

func orAll(systems []string) string {
	if len(systems) == 0 {
		return "all"
	}

	return strings.Join(systems, ", ")
}
