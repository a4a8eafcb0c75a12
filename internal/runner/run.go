// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/whence/internal/signalbroker"
	"github.com/matt-FFFFFF/whence/internal/teereader"
)

// maxLastLine bounds the stderr line carried by an ExitError.
const maxLastLine = 512

// Run splits commandLine on whitespace, checks that the first token is in PATH,
// runs the tokens as a child process and waits for it.
// A non-zero exit returns the Result together with an *ExitError.
func (r *Runner) Run(commandLine string) (*Result, error) {
	args := strings.Fields(commandLine)
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrPrecondition, ErrEmptyCommandLine)
	}

	path, ok := r.locator.LookPath(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: %w: %s", ErrPrecondition, ErrExecutableNotFound, args[0])
	}

	return r.start(path, args)
}

func (r *Runner) start(path string, args []string) (*Result, error) {
	logger := r.logger

	res := &Result{
		Command:  args,
		Path:     path,
		ExitCode: -1,
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return res, errors.Join(ErrFailedToCreatePipe, err)
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		_ = rOut.Close()
		_ = wOut.Close()

		return res, errors.Join(ErrFailedToCreatePipe, err)
	}

	logger.Debug("starting process", "path", path, "args", args)

	ps, err := os.StartProcess(path, args, &os.ProcAttr{
		Files: []*os.File{r.stdin, wOut, wErr},
	})

	// The child holds its own copies; ours must go so the readers see EOF.
	_ = wOut.Close()
	_ = wErr.Close()

	if err != nil {
		_ = rOut.Close()
		_ = rErr.Close()

		return res, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	outTee := teereader.New(rOut)
	errTee := teereader.New(rErr)

	var wg sync.WaitGroup

	wg.Add(2) //nolint:mnd

	go drain(&wg, r.stdout, outTee)
	go drain(&wg, r.stderr, errTee)

	done := make(chan struct{})
	forwarded := make(chan struct{})

	if r.signals != nil {
		go func() {
			defer close(forwarded)
			signalbroker.Forward(r.signals, ps, done, logger)
		}()
	} else {
		close(forwarded)
	}

	state, waitErr := ps.Wait()

	close(done)
	<-forwarded
	wg.Wait()

	_ = rOut.Close()
	_ = rErr.Close()

	res.Stdout = outTee.Bytes()
	res.Stderr = errTee.Bytes()

	if waitErr != nil {
		return res, errors.Join(ErrWait, waitErr)
	}

	res.ExitCode = state.ExitCode()

	logger.Debug("process finished", "pid", ps.Pid, "exitCode", res.ExitCode, "state", state.String())

	if outTee.Truncated() || errTee.Truncated() {
		logger.Warn("process output exceeded the capture limit and was truncated",
			"maxBytes", teereader.DefaultMaxCapture)
	}

	if !state.Success() {
		return res, &ExitError{
			Command:  args,
			ExitCode: res.ExitCode,
			LastLine: errTee.LastLine(maxLastLine),
		}
	}

	return res, nil
}

// drain copies src to dst. If dst stops accepting data the rest of src is
// still read, so the child never blocks on a full pipe.
func drain(wg *sync.WaitGroup, dst io.Writer, src io.Reader) {
	defer wg.Done()

	if _, err := io.Copy(dst, src); err != nil {
		_, _ = io.Copy(io.Discard, src)
	}
}
