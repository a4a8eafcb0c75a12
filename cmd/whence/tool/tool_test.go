// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tool

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/whence/internal/catalog"
	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/matt-FFFFFF/whence/internal/platform"
	"github.com/matt-FFFFFF/whence/internal/resolver"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runCmd(t *testing.T, cmd *cli.Command, args ...string) (string, int) {
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
		Commands:  []*cli.Command{cmd},
	}

	ctx := ctxlog.New(t.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_ = root.Run(ctx, append([]string{"whence", cmd.Name}, args...))

	return out.String(), exitCode
}

// writeCatalog creates an executable below dir and a catalog describing it.
func writeCatalog(t *testing.T, dir string) (catalogPath, target string) {
	t.Helper()

	target = filepath.Join(dir, "sdk", "1.2", "bin", "whence-test-tool")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
	require.NoError(t, os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec

	catalogPath = filepath.Join(dir, "catalog", "tools.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(catalogPath), 0o755))

	body := fmt.Sprintf(`tools:
  - name: testtool
    command: whence-test-tool
    hints: [%q]
    recursive: true
  - name: elsewhere
    command: whence-test-tool
    systems: [plan9]
`, filepath.Join(dir, "sdk"))
	require.NoError(t, os.WriteFile(catalogPath, []byte(body), 0o600))

	return catalogPath, target
}

func TestTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses unix file names")
	}

	catalogPath, target := writeCatalog(t, t.TempDir())

	out, code := runCmd(t, newToolCmd(), "--catalog", catalogPath, "testtool")
	assert.Zero(t, code)
	assert.Equal(t, target+"\n", out)

	_, code = runCmd(t, newToolCmd(), "--catalog", catalogPath, "elsewhere")
	assert.Equal(t, 1, code, "tool for another system")

	_, code = runCmd(t, newToolCmd(), "nosuchtool")
	assert.Equal(t, 1, code, "unknown tool")

	_, code = runCmd(t, newToolCmd())
	assert.Equal(t, 1, code, "missing name")
}

func TestTools(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses unix file names")
	}

	catalogPath, target := writeCatalog(t, t.TempDir())

	out, code := runCmd(t, newToolsCmd(), "--catalog", catalogPath, "--resolve")
	assert.Zero(t, code)
	assert.Contains(t, out, "testtool")
	assert.Contains(t, out, "cmake")
	assert.Contains(t, out, target)
	assert.NotContains(t, out, "elsewhere")
	assert.NotContains(t, out, "msbuild")

	out, code = runCmd(t, newToolsCmd(), "--catalog", catalogPath, "--all")
	assert.Zero(t, code)
	assert.Contains(t, out, "elsewhere")
	assert.Contains(t, out, "msbuild")
	assert.NotContains(t, out, "PATH")
}

type fixedResolver string

func (f fixedResolver) Resolve(resolver.Request) (string, bool) {
	return string(f), f != ""
}

func TestRender(t *testing.T) {
	host := platform.Host{System: platform.Linux, Arch: "amd64"}
	cat := &catalog.Catalog{Tools: []catalog.Tool{
		{Name: "a", Command: "a", Hints: []string{"/x", "/y"}},
		{Name: "b", Command: "b.exe", Systems: []string{"windows"}},
	}}

	got := render(cat, host, true, fixedResolver("")).Render()
	assert.Contains(t, got, "PATH")
	assert.Contains(t, got, "not found")
	assert.Contains(t, got, "/x")
	assert.Contains(t, got, "/y")
	assert.Contains(t, got, "windows")

	got = render(cat, host, false, nil).Render()
	assert.NotContains(t, got, "b.exe")
	assert.Contains(t, got, "all")
}
