// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema implements the schema command.
package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/whence/internal/catalog"
	"github.com/matt-FFFFFF/whence/internal/schema"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag = "format"
	formatJSON = "json"
	formatYAML = "yaml"
)

// ErrWriteOutput is returned when the output cannot be written.
var ErrWriteOutput = errors.New("failed to write output")

// SchemaCmd prints the catalog file schema or an example catalog.
var SchemaCmd = newSchemaCmd()

func newSchemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Describe the tool catalog format",
		Description: `Print the JSON Schema for YAML tool catalogs, or with --format yaml
an example catalog holding the built-in tools.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        formatFlag,
				Aliases:     []string{"f"},
				Usage:       "Output format: json or yaml",
				DefaultText: formatJSON,
				Value:       formatJSON,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer

	switch format := cmd.String(formatFlag); format {
	case formatJSON:
		return schema.NewGenerator().WriteCatalogSchema(w)
	case formatYAML:
		b, err := yaml.Marshal(catalog.Builtin())
		if err != nil {
			return errors.Join(ErrWriteOutput, err)
		}

		if _, err := w.Write(b); err != nil {
			return errors.Join(ErrWriteOutput, err)
		}

		return nil
	default:
		return cli.Exit(fmt.Sprintf("Invalid format: %s. Valid formats: json, yaml", format), 1)
	}
}
