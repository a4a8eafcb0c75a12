// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/lonegunmanb/hclfuncs"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrInvalidYaml is returned when a YAML catalog cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHcl is returned when an HCL catalog cannot be decoded.
	ErrInvalidHcl = errors.New("invalid HCL")
	// ErrUnknownFormat is returned for catalog files with an unsupported extension.
	ErrUnknownFormat = errors.New("unknown catalog format")
	// ErrReadCatalog is returned when a catalog file cannot be read.
	ErrReadCatalog = errors.New("failed to read catalog")
)

const (
	extYAML = ".yaml"
	extYML  = ".yml"
	extHCL  = ".hcl"
)

// ParseYAML decodes a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return &c, nil
}

// ParseHCL decodes an HCL catalog. Expressions can use the hclfuncs function library,
// host.os and host.arch, and env.NAME for any environment variable.
// filename is used in diagnostics and must end in .hcl.
func ParseHCL(filename string, data []byte, host platform.Host) (*Catalog, error) {
	var c Catalog
	if err := hclsimple.Decode(filename, data, evalContext(host), &c); err != nil {
		return nil, errors.Join(ErrInvalidHcl, err)
	}

	return &c, nil
}

func evalContext(host platform.Host) *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"host": cty.ObjectVal(map[string]cty.Value{
				"os":   cty.StringVal(host.System),
				"arch": cty.StringVal(host.Arch),
			}),
			"env": envVal,
		},
		Functions: hclfuncs.Functions(""),
	}
}

// Parse chooses the decoder from the file extension.
func Parse(filename string, data []byte, host platform.Host) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case extYAML, extYML:
		return ParseYAML(data)
	case extHCL:
		return ParseHCL(filename, data, host)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
	}
}

// Load reads and validates a catalog file from the filesystem returned by FsFactory.
func Load(path string, host platform.Host) (*Catalog, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadCatalog, err)
	}

	c, err := Parse(path, data, host)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
