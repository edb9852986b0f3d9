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
	// Decision is one action the decision engine asks the Decider Loop to
	// submit back to the Workflow Service for a single tick.
	Decision = internal.Decision

	ScheduleActivityDecision   = internal.ScheduleActivityDecision
	StartTimerDecision         = internal.StartTimerDecision
	CompleteWorkflowDecision   = internal.CompleteWorkflowDecision
	FailWorkflowDecision       = internal.FailWorkflowDecision
	CancelWorkflowDecision     = internal.CancelWorkflowDecision
	StartChildWorkflowDecision = internal.StartChildWorkflowDecision

	// UidGenerator hands out the uid prefix the Artifact Stager keys
	// stage-in and stage-out objects under.
	UidGenerator = internal.UidGenerator
)

// NewUUIDGenerator returns a UidGenerator backed by random UUIDs.
func NewUUIDGenerator() UidGenerator {
	return internal.NewUUIDGenerator()
}
