// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"bytes"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type fakeTarget struct {
	mu      sync.Mutex
	signals []os.Signal
	kills   int
}

func (f *fakeTarget) Signal(sig os.Signal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.signals = append(f.signals, sig)

	return nil
}

func (f *fakeTarget) Kill() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.kills++

	return nil
}

func (f *fakeTarget) snapshot() ([]os.Signal, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]os.Signal(nil), f.signals...), f.kills
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestForward_RelaysFirstSignal(t *testing.T) {
	defer goleak.VerifyNone(t)

	target := &fakeTarget{}
	sigCh := make(chan os.Signal, 2)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		Forward(sigCh, target, done, testLogger())
	}()

	sigCh <- syscall.SIGTERM
	sigCh <- os.Interrupt

	assert.Eventually(t, func() bool {
		sigs, _ := target.snapshot()
		return len(sigs) == 2
	}, time.Second, 10*time.Millisecond)

	close(done)
	<-finished

	sigs, kills := target.snapshot()
	assert.Equal(t, []os.Signal{syscall.SIGTERM, os.Interrupt}, sigs)
	assert.Zero(t, kills)
}

func TestForward_SecondSignalKills(t *testing.T) {
	defer goleak.VerifyNone(t)

	target := &fakeTarget{}
	sigCh := make(chan os.Signal, 2)
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		Forward(sigCh, target, make(chan struct{}), testLogger())
	}()

	sigCh <- os.Interrupt
	sigCh <- os.Interrupt
	close(sigCh)
	<-finished

	sigs, kills := target.snapshot()
	assert.Equal(t, []os.Signal{os.Interrupt}, sigs)
	assert.Equal(t, 1, kills)
}

func TestNewAndStop(t *testing.T) {
	ch := New(t.Context(), syscall.SIGTERM)
	assert.Equal(t, 1, cap(ch))
	Stop(ch)
}
