// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform describes the host operating system and architecture and
// checks them against an expected system/arch pair.
//
// Names are compared case-insensitively and common aliases are accepted, so
// "Darwin", "macOS" and "darwin" all describe the same system, and "x86_64"
// matches the Go architecture "amd64". The bitness names "64bit" and "32bit"
// match any architecture of that pointer width.
package platform
