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

// EventType identifies the kind of a HistoryEvent's Attributes payload.
type EventType int32

const (
	EventWorkflowExecutionStarted EventType = iota
	EventActivityTaskScheduled
	EventActivityTaskCompleted
	EventActivityTaskFailed
	EventActivityTaskCanceled
	EventTimerStarted
	EventTimerFired
	EventStartChildWorkflowExecutionInitiated
	// EventOther covers event types the decision engine does not act on
	// directly (e.g. markers, search-attribute upserts) but which still
	// occupy an event id and must round-trip through the index.
	EventOther
)

// HistoryEvent is one entry of the ordered event history a decision task
// carries. EventID is assigned by the Workflow Service and is unique and
// strictly increasing within a single workflow execution.
type HistoryEvent struct {
	EventID    int64
	Type       EventType
	Attributes interface{}
}

// WorkflowExecutionStartedAttributes carries the input the Plan's Start Task
// was originally invoked with.
type WorkflowExecutionStartedAttributes struct {
	Input *string
}

// ActivityTaskScheduledAttributes names the Task that was scheduled.
type ActivityTaskScheduledAttributes struct {
	ActivityName string
}

// ActivityTaskCompletedAttributes reports success and links back to the
// ActivityTaskScheduled event via ScheduledEventID.
type ActivityTaskCompletedAttributes struct {
	ScheduledEventID int64
	Result           *string
}

// ActivityTaskFailedAttributes reports failure; by design (see spec §9) it
// carries no retry count and is always terminal for the Plan.
type ActivityTaskFailedAttributes struct {
	ScheduledEventID int64
	Reason           string
}

// ActivityTaskCanceledAttributes reports that a running activity was
// canceled before it completed.
type ActivityTaskCanceledAttributes struct {
	ScheduledEventID int64
}

// TimerStartedAttributes carries the Control payload a TimerFired event later
// echoes back, used to recover the Timer's name without a side index.
type TimerStartedAttributes struct {
	Control string
}

// TimerFiredAttributes links back to the TimerStarted event via
// StartedEventID.
type TimerFiredAttributes struct {
	StartedEventID int64
}

// StartChildWorkflowExecutionInitiatedAttributes marks the Continue end
// policy's hand-off point; it carries no payload the engine inspects.
type StartChildWorkflowExecutionInitiatedAttributes struct{}
