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

package flow

import "go.uber.org/flow/v2/internal"

type (
	ProtocolError      = internal.ProtocolError
	TransientError     = internal.TransientError
	CommandError       = internal.CommandError
	ConfigError        = internal.ConfigError
	AlreadyExistsError = internal.AlreadyExistsError
)

const (
	TransientClassThrottling      = internal.TransientClassThrottling
	TransientClassUnknownResource = internal.TransientClassUnknownResource
)

// IsAlreadyExists reports whether err is, or wraps, an AlreadyExistsError.
func IsAlreadyExists(err error) bool {
	return internal.IsAlreadyExists(err)
}

// IsTransient reports whether err is, or wraps, a TransientError, returning
// its class.
func IsTransient(err error) (string, bool) {
	return internal.IsTransient(err)
}
