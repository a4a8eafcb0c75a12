// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"errors"
	"os"
)

// Target is a process that can receive signals. *os.Process implements it.
type Target interface {
	Signal(sig os.Signal) error
	Kill() error
}

// Logger receives forwarding diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
}

// Forward relays signals from sigCh to target until done is closed or sigCh is closed.
// The first signal of a type is relayed; a second signal of the same type kills target.
func Forward(sigCh <-chan os.Signal, target Target, done <-chan struct{}, logger Logger) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-done:
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				logger.Info("received duplicate signal, killing process", "signal", sig.String())

				if err := target.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
					logger.Info("failed to kill process", "error", err)
				}

				continue
			}

			seen[sig] = struct{}{}

			logger.Info("forwarding signal to process", "signal", sig.String())

			if err := target.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
				logger.Info("failed to send signal", "signal", sig.String(), "error", err)
			}
		}
	}
}
