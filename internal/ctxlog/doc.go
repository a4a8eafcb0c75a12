// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides the structured logger used across whence.
// It uses the slog package and supports carrying the logger in a context.
//
// The default is a pretty console handler writing to stderr, so that the
// paths printed by the CLI on stdout stay machine readable.
// The level is read once from the WHENCE_LOG_LEVEL environment variable.
package ctxlog
