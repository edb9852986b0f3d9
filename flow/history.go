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
	// EventType identifies the kind of a HistoryEvent's Attributes payload.
	EventType = internal.EventType
	// HistoryEvent is one entry of the ordered event history a decision
	// task carries.
	HistoryEvent = internal.HistoryEvent

	WorkflowExecutionStartedAttributes             = internal.WorkflowExecutionStartedAttributes
	ActivityTaskScheduledAttributes                = internal.ActivityTaskScheduledAttributes
	ActivityTaskCompletedAttributes                = internal.ActivityTaskCompletedAttributes
	ActivityTaskFailedAttributes                   = internal.ActivityTaskFailedAttributes
	ActivityTaskCanceledAttributes                 = internal.ActivityTaskCanceledAttributes
	TimerStartedAttributes                         = internal.TimerStartedAttributes
	TimerFiredAttributes                           = internal.TimerFiredAttributes
	StartChildWorkflowExecutionInitiatedAttributes = internal.StartChildWorkflowExecutionInitiatedAttributes
)

const (
	EventWorkflowExecutionStarted              = internal.EventWorkflowExecutionStarted
	EventActivityTaskScheduled                 = internal.EventActivityTaskScheduled
	EventActivityTaskCompleted                 = internal.EventActivityTaskCompleted
	EventActivityTaskFailed                    = internal.EventActivityTaskFailed
	EventActivityTaskCanceled                  = internal.EventActivityTaskCanceled
	EventTimerStarted                          = internal.EventTimerStarted
	EventTimerFired                            = internal.EventTimerFired
	EventStartChildWorkflowExecutionInitiated  = internal.EventStartChildWorkflowExecutionInitiated
	EventOther                                 = internal.EventOther
)
