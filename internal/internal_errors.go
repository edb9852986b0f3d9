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
	"errors"
	"fmt"
)

// ProtocolError indicates the decision engine observed an event history that
// violates the Workflow Service contract (duplicate event ids, a reference to
// an event id that was never scheduled, and so on).
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Message
}

// Transient error classes recognized by the service invoker's retry loop.
const (
	TransientClassThrottling      = "Throttling"
	TransientClassUnknownResource = "UnknownResource"
)

// TransientError wraps a ServiceClient/ObjectStore failure the caller should
// retry rather than surface.
type TransientError struct {
	Class string
	Cause error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient error (%s): %v", e.Class, e.Cause)
}

func (e *TransientError) Unwrap() error {
	return e.Cause
}

// CommandError reports a non-zero exit or a failure to spawn the configured
// command.
type CommandError struct {
	ExitCode int
	SpawnErr error
}

func (e *CommandError) Error() string {
	if e.SpawnErr != nil {
		return fmt.Sprintf("command spawn failed: %v", e.SpawnErr)
	}
	return fmt.Sprintf("command exited with code %d", e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.SpawnErr
}

// ConfigError reports a malformed configuration file or Plan document.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Message
}

// AlreadyExistsError reports that a registration call (domain, workflow type,
// activity type) targets a resource that is already registered.
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string {
	return "already exists: " + e.Message
}

// IsAlreadyExists reports whether err is, or wraps, an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

// IsTransient reports whether err is, or wraps, a TransientError, returning
// its class.
func IsTransient(err error) (string, bool) {
	var te *TransientError
	if errors.As(err, &te) {
		return te.Class, true
	}
	return "", false
}

var errEmptyCommand = errors.New("internal: command is empty")

// stateMachineIllegalStatePanic marks an invariant violation in the decision
// engine: a history that cannot have been produced by a conforming Workflow
// Service. Recovered and converted to a *ProtocolError at the decider's
// per-tick call boundary.
type stateMachineIllegalStatePanic struct {
	message string
}

func (e stateMachineIllegalStatePanic) Error() string {
	return e.message
}

func panicIllegalState(message string) {
	panic(stateMachineIllegalStatePanic{message: message})
}
