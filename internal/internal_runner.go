// Copyright (c) 2017-2020 Uber Technologies Inc.
// Portions of the Software are attributed to Copyright (c) 2020 Temporal Technologies Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package internal

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Disposition is the outcome category a Process Runner reduces a command's
// exit status to.
type Disposition int32

const (
	DispositionSuccess Disposition = iota
	DispositionFailed
	DispositionCanceled
	DispositionSpawnFailed
)

// cancelExitCode is the exit code a canceled command is contracted to
// produce; any other non-zero code is an ordinary failure.
const cancelExitCode = 255

// RunResult is the outcome of one runCommand invocation.
type RunResult struct {
	Disposition Disposition
	ExitCode    int
	SpawnError  error
}

// runCommand tokenizes command on whitespace and execs it in workingDir,
// inheriting stdio, mapping its exit status to a Disposition.
func runCommand(ctx context.Context, command, workingDir string) RunResult {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return RunResult{Disposition: DispositionSpawnFailed, SpawnError: errEmptyCommand}
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = workingDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return RunResult{Disposition: DispositionSuccess, ExitCode: 0}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == cancelExitCode {
			return RunResult{Disposition: DispositionCanceled, ExitCode: code}
		}
		return RunResult{Disposition: DispositionFailed, ExitCode: code}
	}
	return RunResult{Disposition: DispositionSpawnFailed, SpawnError: err}
}
