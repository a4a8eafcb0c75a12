// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the log handler and the CLI.
// Whether colour is wanted is decided once from NO_COLOR, FORCE_COLOR and
// whether stderr is a terminal.
package color
