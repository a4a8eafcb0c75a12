// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolver

import "github.com/spf13/afero"

// FsFactory returns the filesystem used by resolvers built without WithFs.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}
