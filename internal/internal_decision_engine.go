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

import "fmt"

// eventIndex keyed by event id, generalizing the scheduledEventId-keyed
// lookup maps the teacher's decisionsHelper kept per decision kind
// (scheduledEventIDToActivityID etc.) into one full-history index, since here
// the whole history — not just outstanding decisions — is replayed fresh on
// every tick.
type eventIndex map[int64]*HistoryEvent

// decisionContext is the replay state for a single tick: the Plan being
// executed and the full event history observed so far. It carries no state
// across ticks.
type decisionContext struct {
	plan   *Plan
	events []*HistoryEvent
	index  eventIndex
}

func newDecisionContext(plan *Plan, events []*HistoryEvent) *decisionContext {
	idx := make(eventIndex, len(events))
	for _, e := range events {
		if _, dup := idx[e.EventID]; dup {
			panicIllegalState(fmt.Sprintf("duplicate event id %d in history", e.EventID))
		}
		idx[e.EventID] = e
	}
	return &decisionContext{plan: plan, events: events, index: idx}
}

func isActionable(t EventType) bool {
	switch t {
	case EventWorkflowExecutionStarted, EventActivityTaskCompleted, EventActivityTaskFailed,
		EventActivityTaskCanceled, EventTimerFired, EventStartChildWorkflowExecutionInitiated:
		return true
	default:
		return false
	}
}

// scanActionable returns the most recent actionable event strictly below the
// given event id (or with no floor, when below is 0), matching the allowed
// predicate. Events are assumed sorted ascending by EventID, the order the
// Workflow Service is contracted to deliver them in; scanning in descending
// order recovers the *most recent* such event, resolving the ambiguity
// spec.md's own design notes flag in the original's first-match scan.
func (dc *decisionContext) scanActionable(below int64, allowed func(EventType) bool) *HistoryEvent {
	for i := len(dc.events) - 1; i >= 0; i-- {
		e := dc.events[i]
		if below > 0 && e.EventID >= below {
			continue
		}
		if !isActionable(e.Type) {
			continue
		}
		if allowed != nil && !allowed(e.Type) {
			continue
		}
		return e
	}
	return nil
}

func anyType(EventType) bool { return true }

// decide replays dc against its Plan and returns the Decisions to submit for
// this tick. It is a pure function of (plan, events): called twice with the
// same arguments it returns equivalent decisions, so it is safe to invoke
// repeatedly while only the first invocation's Decisions are ever actually
// submitted.
func (dc *decisionContext) decide(gen UidGenerator) ([]Decision, error) {
	last := dc.scanActionable(0, anyType)
	if last == nil {
		panicIllegalState("history has no actionable event")
	}

	switch last.Type {
	case EventWorkflowExecutionStarted:
		attrs := last.Attributes.(WorkflowExecutionStartedAttributes)
		return dc.scheduleFirst(attrs.Input, gen)
	case EventActivityTaskCompleted:
		return dc.handleActivityTaskCompleted(last, gen)
	case EventActivityTaskFailed:
		return dc.handleActivityTaskFailed(last)
	case EventActivityTaskCanceled:
		return []Decision{&CancelWorkflowDecision{}}, nil
	case EventTimerFired:
		return dc.handleTimerFired(last, gen)
	case EventStartChildWorkflowExecutionInitiated:
		return dc.handleContinueHandoff(last)
	default:
		panicIllegalState(fmt.Sprintf("event type %v is not actionable", last.Type))
		return nil, nil
	}
}

// scheduleFirst schedules the Plan's first Spec, or applies the end policy
// immediately if the Plan has none.
func (dc *decisionContext) scheduleFirst(input *string, gen UidGenerator) ([]Decision, error) {
	if len(dc.plan.Specs) == 0 {
		return dc.endPolicy(input, gen)
	}
	return dc.scheduleSpec(dc.plan.Specs[0], input, gen)
}

func (dc *decisionContext) scheduleSpec(s Spec, input *string, gen UidGenerator) ([]Decision, error) {
	uid := gen.NewUid()
	if s.Variant == VariantSleep {
		return []Decision{&StartTimerDecision{
			Uid:            uid,
			TimerName:      s.Timer.Name,
			TimeoutSeconds: s.Timer.TimeoutSeconds,
		}}, nil
	}
	return []Decision{&ScheduleActivityDecision{
		Uid:         uid,
		TaskName:    s.Task.Name,
		TaskVersion: s.Task.Version,
		Queue:       s.Task.Queue,
		Input:       input,
	}}, nil
}

// nextSpec applies the spec's Next-Spec rule: find the step matching
// (variant, name) and return whichever step immediately follows it, if any.
func nextSpec(specs []Spec, variant Variant, name string) (Spec, int, bool) {
	for i, s := range specs {
		if s.Variant == variant && s.Name() == name {
			if i+1 < len(specs) {
				return specs[i+1], i + 1, true
			}
			return Spec{}, -1, false
		}
	}
	return Spec{}, -1, false
}

func (dc *decisionContext) handleActivityTaskCompleted(e *HistoryEvent, gen UidGenerator) ([]Decision, error) {
	attrs := e.Attributes.(ActivityTaskCompletedAttributes)
	sched, ok := dc.index[attrs.ScheduledEventID]
	if !ok {
		panicIllegalState(fmt.Sprintf("activity completed event %d references unknown scheduled event %d", e.EventID, attrs.ScheduledEventID))
	}
	schedAttrs, ok := sched.Attributes.(ActivityTaskScheduledAttributes)
	if !ok {
		panicIllegalState(fmt.Sprintf("event %d is not an activity-scheduled event", sched.EventID))
	}

	if next, _, ok := nextSpec(dc.plan.Specs, VariantWork, schedAttrs.ActivityName); ok {
		return dc.scheduleSpec(next, attrs.Result, gen)
	}
	return dc.endPolicy(attrs.Result, gen)
}

// handleActivityTaskFailed always fails the Plan outright: the Plan model
// carries no per-step retry policy (spec §9), so there is no bookkeeping to
// consult before giving up.
func (dc *decisionContext) handleActivityTaskFailed(e *HistoryEvent) ([]Decision, error) {
	attrs := e.Attributes.(ActivityTaskFailedAttributes)
	return []Decision{&FailWorkflowDecision{Reason: attrs.Reason}}, nil
}

func (dc *decisionContext) handleTimerFired(e *HistoryEvent, gen UidGenerator) ([]Decision, error) {
	attrs := e.Attributes.(TimerFiredAttributes)
	started, ok := dc.index[attrs.StartedEventID]
	if !ok {
		panicIllegalState(fmt.Sprintf("timer fired event %d references unknown started event %d", e.EventID, attrs.StartedEventID))
	}
	startedAttrs, ok := started.Attributes.(TimerStartedAttributes)
	if !ok {
		panicIllegalState(fmt.Sprintf("event %d is not a timer-started event", started.EventID))
	}
	timerName := startedAttrs.Control

	// The timer itself carries no payload forward; recover the input the
	// timer was started with from the nearest preceding completion event.
	prior := dc.scanActionable(started.EventID, func(t EventType) bool {
		return t == EventWorkflowExecutionStarted || t == EventActivityTaskCompleted
	})
	var input *string
	if prior != nil {
		switch attrs := prior.Attributes.(type) {
		case WorkflowExecutionStartedAttributes:
			input = attrs.Input
		case ActivityTaskCompletedAttributes:
			input = attrs.Result
		}
	}

	if next, _, ok := nextSpec(dc.plan.Specs, VariantSleep, timerName); ok {
		return dc.scheduleSpec(next, input, gen)
	}
	return dc.endPolicy(input, gen)
}

func (dc *decisionContext) findWorkflowExecutionStarted() *HistoryEvent {
	for _, e := range dc.events {
		if e.Type == EventWorkflowExecutionStarted {
			return e
		}
	}
	panicIllegalState("history has no WorkflowExecutionStarted event")
	return nil
}

func (dc *decisionContext) handleContinueHandoff(e *HistoryEvent) ([]Decision, error) {
	start := dc.findWorkflowExecutionStarted()
	attrs := start.Attributes.(WorkflowExecutionStartedAttributes)
	return []Decision{&CompleteWorkflowDecision{Result: attrs.Input}}, nil
}

// endPolicy applies the Plan's End policy once its last Spec has completed:
// Stop completes the workflow with input, Continue restarts the Start Task
// with the workflow's original input from its WorkflowExecutionStarted event.
func (dc *decisionContext) endPolicy(input *string, gen UidGenerator) ([]Decision, error) {
	switch dc.plan.End {
	case EndContinue:
		start := dc.findWorkflowExecutionStarted()
		original := start.Attributes.(WorkflowExecutionStartedAttributes).Input
		return []Decision{&StartChildWorkflowDecision{
			Uid:         gen.NewUid(),
			TaskName:    dc.plan.Start.Name,
			TaskVersion: dc.plan.Start.Version,
			Queue:       dc.plan.Start.Queue,
			Input:       original,
		}}, nil
	default:
		return []Decision{&CompleteWorkflowDecision{Result: input}}, nil
	}
}
