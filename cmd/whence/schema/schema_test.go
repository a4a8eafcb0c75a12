// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package schema

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/matt-FFFFFF/whence/internal/catalog"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runSchema(t *testing.T, args ...string) (string, int) {
	t.Helper()

	exitCode := 0
	stubs := gostub.Stub(&cli.OsExiter, func(code int) {
		exitCode = code
	})
	stubs.Stub(&cli.ErrWriter, io.Discard)
	t.Cleanup(stubs.Reset)

	out := &bytes.Buffer{}
	root := &cli.Command{
		Name:      "whence",
		Writer:    out,
		ErrWriter: io.Discard,
		Commands:  []*cli.Command{newSchemaCmd()},
	}

	_ = root.Run(t.Context(), append([]string{"whence", "schema"}, args...))

	return out.String(), exitCode
}

func TestSchema_JSON(t *testing.T) {
	out, code := runSchema(t)
	assert.Zero(t, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "$schema")
}

func TestSchema_YAMLRoundTrips(t *testing.T) {
	out, code := runSchema(t, "--format", "yaml")
	assert.Zero(t, code)

	c, err := catalog.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin(), c)
}

func TestSchema_BadFormat(t *testing.T) {
	_, code := runSchema(t, "--format", "toml")
	assert.Equal(t, 1, code)
}
