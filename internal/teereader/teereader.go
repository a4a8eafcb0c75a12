// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package teereader

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// DefaultMaxCapture is the capture limit used by New.
const DefaultMaxCapture = 8 * 1024 * 1024 // 8MB

// LastLineTeeReader wraps an io.Reader, capturing what passes through it and
// tracking the last line. Data beyond the capture limit is still passed on to
// the caller but no longer kept. It is safe for concurrent use.
type LastLineTeeReader struct {
	reader     io.Reader
	buf        bytes.Buffer
	maxCapture int
	truncated  bool
	lastLine   string
	partial    strings.Builder
	mu         sync.RWMutex
}

// New wraps r with a capture limit of DefaultMaxCapture.
func New(r io.Reader) *LastLineTeeReader {
	return NewWithLimit(r, DefaultMaxCapture)
}

// NewWithLimit wraps r, keeping at most maxCapture bytes. A limit <= 0 keeps everything.
func NewWithLimit(r io.Reader, maxCapture int) *LastLineTeeReader {
	return &LastLineTeeReader{
		reader:     r,
		maxCapture: maxCapture,
	}
}

// Read implements io.Reader.
func (lt *LastLineTeeReader) Read(p []byte) (int, error) {
	n, err := lt.reader.Read(p)
	if n > 0 {
		lt.mu.Lock()
		lt.capture(p[:n])
		lt.track(string(p[:n]))
		lt.mu.Unlock()
	}

	return n, err //nolint:wrapcheck
}

// capture must be called with the write lock held.
func (lt *LastLineTeeReader) capture(p []byte) {
	if lt.maxCapture <= 0 {
		lt.buf.Write(p)
		return
	}

	room := lt.maxCapture - lt.buf.Len()
	if room >= len(p) {
		lt.buf.Write(p)
		return
	}

	if room > 0 {
		lt.buf.Write(p[:room])
	}

	lt.truncated = true
}

// track must be called with the write lock held.
func (lt *LastLineTeeReader) track(data string) {
	lt.partial.WriteString(data)

	combined := lt.partial.String()

	idx := strings.LastIndexByte(combined, '\n')
	if idx < 0 {
		return
	}

	complete := strings.TrimRight(combined[:idx], "\r")
	if start := strings.LastIndexByte(complete, '\n'); start >= 0 {
		complete = complete[start+1:]
	}

	lt.lastLine = strings.TrimRight(complete, "\r")

	rest := combined[idx+1:]
	lt.partial.Reset()
	lt.partial.WriteString(rest)
}

// LastLine returns the most recent line, including a trailing line that was not
// terminated by a newline. If maxLength > 3 and the line is longer, it is cut and "..." appended.
func (lt *LastLineTeeReader) LastLine(maxLength int) string {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	line := lt.lastLine
	if p := lt.partial.String(); p != "" {
		line = p
	}

	if maxLength > 3 && len(line) > maxLength { //nolint:mnd
		line = line[:maxLength-3] + "..."
	}

	return line
}

// Bytes returns a copy of the captured data.
func (lt *LastLineTeeReader) Bytes() []byte {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	return bytes.Clone(lt.buf.Bytes())
}

// Truncated reports whether data was dropped because of the capture limit.
func (lt *LastLineTeeReader) Truncated() bool {
	lt.mu.RLock()
	defer lt.mu.RUnlock()

	return lt.truncated
}
