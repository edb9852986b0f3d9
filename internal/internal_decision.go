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

// Decision is one action the decision engine asks the Decider Loop to submit
// back to the Workflow Service for a single tick. isDecision is unexported so
// the set of concrete decisions is sealed to this package.
type Decision interface {
	isDecision()
}

// ScheduleActivityDecision requests the Workflow Service schedule the named
// Task, tagging it with a caller-generated Uid so its eventual completion can
// be staged under a matching Object Store prefix.
type ScheduleActivityDecision struct {
	Uid         string
	TaskName    string
	TaskVersion string
	Queue       string
	Input       *string
}

func (*ScheduleActivityDecision) isDecision() {}

// StartTimerDecision requests the Workflow Service start a Sleep step's timer.
// TimerName is carried as the timer's Control payload so TimerFired can later
// recover it without a side channel.
type StartTimerDecision struct {
	Uid            string
	TimerName      string
	TimeoutSeconds int32
}

func (*StartTimerDecision) isDecision() {}

// CompleteWorkflowDecision ends the Plan's execution successfully.
type CompleteWorkflowDecision struct {
	Result *string
}

func (*CompleteWorkflowDecision) isDecision() {}

// FailWorkflowDecision ends the Plan's execution with a terminal failure.
type FailWorkflowDecision struct {
	Reason string
}

func (*FailWorkflowDecision) isDecision() {}

// CancelWorkflowDecision acknowledges a cancellation request and ends the
// Plan's execution.
type CancelWorkflowDecision struct{}

func (*CancelWorkflowDecision) isDecision() {}

// StartChildWorkflowDecision implements the Continue end policy: the Plan
// restarts from its Start Task carrying the workflow's original input forward
// as the new execution's input.
type StartChildWorkflowDecision struct {
	Uid         string
	TaskName    string
	TaskVersion string
	Queue       string
	Input       *string
}

func (*StartChildWorkflowDecision) isDecision() {}
