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
	"time"

	"github.com/facebookgo/clock"
	"go.uber.org/zap"
)

const throttleRetryInterval = 5 * time.Second

// serviceInvoker wraps the ServiceClient poll and respond calls the actor and
// decider hosts make with the retry-on-transient-error policy described by
// spec §5/§7. ObjectStore calls made by the stager are not wrapped.
// clock is injected so tests can drive the backoff deterministically instead
// of sleeping wall-clock time.
type serviceInvoker struct {
	clock  clock.Clock
	logger *zap.Logger
}

func newServiceInvoker(logger *zap.Logger) *serviceInvoker {
	return &serviceInvoker{clock: clock.New(), logger: logger}
}

// retry calls op until it succeeds, ctx is done, or it fails with a
// non-transient error.
func (s *serviceInvoker) retry(ctx context.Context, op func() error) error {
	for {
		err := op()
		if err == nil {
			return nil
		}
		class, transient := IsTransient(err)
		if !transient {
			return err
		}
		s.logger.Warn("retrying transient service error", zap.String("class", class), zap.Error(err))
		select {
		case <-s.clock.After(throttleRetryInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// registerIdempotent retries op and treats AlreadyExistsError as success,
// letting bootstrap registration calls run unconditionally on every startup.
func (s *serviceInvoker) registerIdempotent(ctx context.Context, op func() error) error {
	err := s.retry(ctx, op)
	if err != nil && !IsAlreadyExists(err) {
		return err
	}
	return nil
}
