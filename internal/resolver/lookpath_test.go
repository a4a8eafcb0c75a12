// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not checked on windows")
	}

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/usr/bin/dironly", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/usr/local/bin/cmake", []byte{}, 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/usr/bin/cmake", []byte{}, 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/usr/local/bin/noexec", []byte{}, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/usr/bin/noexec", []byte{}, 0o755))

	pathList := strings.Join([]string{"", "/usr/local/bin", "/usr/bin"}, string(filepath.ListSeparator))
	lookPath := FsLookPath(fsys, pathList, SuffixNaming(nil))

	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "first PATH entry wins", command: "cmake", want: "/usr/local/bin/cmake"},
		{name: "non executable file is skipped", command: "noexec", want: "/usr/bin/noexec"},
		{name: "directory is skipped", command: "dironly"},
		{name: "missing", command: "nosuchcmd"},
		{name: "empty", command: ""},
		{name: "explicit path", command: "/usr/bin/cmake", want: "/usr/bin/cmake"},
		{name: "explicit path not executable", command: "/usr/local/bin/noexec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lookPath(tt.command)
			if tt.want == "" {
				require.ErrorIs(t, err, ErrNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFsLookPath_Naming(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/sdk/bin/msbuild.exe", []byte{}, 0o755))

	lookPath := FsLookPath(fsys, "/sdk/bin", SuffixNaming{".exe"})

	got, err := lookPath("msbuild")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/sdk/bin", "msbuild.exe"), got)
}

func TestFsLookPath_AsResolverPrimitive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/opt/bin/ninja", []byte{}, 0o755))

	logger, _ := bufferLogger()
	r := New(
		WithFs(fsys),
		WithLookPath(FsLookPath(fsys, "/opt/bin", nil)),
		WithNaming(SuffixNaming(nil)),
		WithLogger(logger),
	)

	got, ok := r.Resolve(Request{Command: "ninja"})
	require.True(t, ok)
	assert.Equal(t, "/opt/bin/ninja", got)
}
