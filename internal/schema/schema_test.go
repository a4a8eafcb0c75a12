// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Value int `yaml:"value"`
}

type sample struct {
	inner    `yaml:",inline"`
	Name     string   `yaml:"name" docdesc:"The name"`
	Tags     []string `yaml:"tags,omitempty"`
	Ratio    *float64 `yaml:"ratio,omitempty"`
	Enabled  bool
	Children []inner `yaml:"children,omitempty"`
	Skipped  string  `yaml:"-"`
	hidden   string
}

func TestGenerate(t *testing.T) {
	s, err := NewGenerator().Generate(&sample{})
	require.NoError(t, err)

	assert.Equal(t, typeObject, s.Type)
	assert.Equal(t, []string{"enabled", "name"}, s.Required)
	assert.NotContains(t, s.Properties, "skipped")
	assert.NotContains(t, s.Properties, "hidden")
	assert.NotContains(t, s.Properties, "value", "unexported embedded structs are skipped")

	assert.Equal(t, "The name", s.Properties["name"].Description)
	assert.Equal(t, typeNumber, s.Properties["ratio"].Type)
	assert.Equal(t, typeBoolean, s.Properties["enabled"].Type)

	require.NotNil(t, s.Properties["tags"].Items)
	assert.Equal(t, typeString, s.Properties["tags"].Items.Type)

	children := s.Properties["children"].Items
	require.NotNil(t, children)
	assert.Equal(t, typeObject, children.Type)
	assert.Equal(t, typeInteger, children.Properties["value"].Type)
}

func TestGenerate_NotStruct(t *testing.T) {
	_, err := NewGenerator().Generate("nope")
	require.ErrorIs(t, err, ErrNotStruct)

	_, err = NewGenerator().Generate(nil)
	require.ErrorIs(t, err, ErrNotStruct)
}

func TestWriteCatalogSchema(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewGenerator().WriteCatalogSchema(buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, draft, doc["$schema"])
	assert.Equal(t, []any{"tools"}, doc["required"])

	tools := doc["properties"].(map[string]any)["tools"].(map[string]any)
	assert.Equal(t, "array", tools["type"])

	tool := tools["items"].(map[string]any)
	assert.Equal(t, []any{"command", "name"}, tool["required"])
	assert.Equal(t, false, tool["additionalProperties"])

	props := tool["properties"].(map[string]any)
	for _, key := range []string{"name", "description", "command", "hints", "subdirectories", "recursive", "systems"} {
		assert.Contains(t, props, key)
	}
}
