// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver locates executables on the host.
//
// A lookup tries, in order and returning on the first match:
//
//  1. the command as a literal path, and each platform spelling of it (e.g. tool.exe);
//  2. the system PATH, using the command as given;
//  3. every hint directory joined with every subdirectory suffix, plus the hint itself.
//     A hinted location may be the executable itself, may contain it directly, or,
//     when the request is recursive, may contain it at any depth.
//
// Hinted locations that do not exist are logged at warning level and skipped, so
// callers can pass speculative, platform specific hint lists.
//
// Not finding a command is a normal result: Resolve returns ok == false.
//
// The recursive descent has no depth limit and no exclusion list, so hinting a
// very large tree is slow. Symlinked directories are not followed, which keeps
// symlink cycles from looping. Directory entries are visited in lexical order,
// so when several files match, the one returned is the same on every platform.
package resolver
