// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog holds named tool definitions.
//
// A Tool is a reusable resolver.Request with a name and an optional list of systems it applies to.
// Catalogs come from the built-in set, from YAML or HCL files, or from any go-getter source.
//
// HCL catalogs look like this:
//
//	tool "ninja" {
//	  command        = host.os == "windows" ? "ninja.exe" : "ninja"
//	  hints          = [env.NINJA_HOME]
//	  subdirectories = ["bin"]
//	}
package catalog
