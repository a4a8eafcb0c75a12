// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"bytes"
	"io"
	"log/slog"
	"runtime"
	"testing"

	"github.com/matt-FFFFFF/whence/internal/ctxlog"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func runRun(t *testing.T, args ...string) (string, int) {
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
		Commands:  []*cli.Command{newRunCmd()},
	}

	ctx := ctxlog.New(t.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_ = root.Run(ctx, append([]string{"whence", "run"}, args...))

	return out.String(), exitCode
}

func TestRun_Echo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix utilities")
	}

	out, code := runRun(t, "--", "echo", "hello", "world")
	assert.Zero(t, code)
	assert.Equal(t, "hello world\n", out)
}

func TestRun_PassesExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on unix utilities")
	}

	_, code := runRun(t, "--", "ls", "/this/path/does/not/exist/anywhere")
	assert.Equal(t, 2, code)
}

func TestRun_PlatformMismatch(t *testing.T) {
	other := "windows"
	if runtime.GOOS == "windows" {
		other = "linux"
	}

	out, code := runRun(t, "--system", other, "--", "echo", "never")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestRun_NotInPath(t *testing.T) {
	_, code := runRun(t, "--", "whence-no-such-command")
	assert.Equal(t, 1, code)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(-1))
	assert.Equal(t, 1, exitCode(0))
	assert.Equal(t, 3, exitCode(3))
}
