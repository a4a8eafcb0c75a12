// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package teereader wraps a child process's output stream so that it can be
// streamed to the terminal while being captured, up to a size limit, and so
// that the last line written is available for error messages.
package teereader
