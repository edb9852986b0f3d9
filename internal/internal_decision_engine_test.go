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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type sequentialUidGenerator struct{ n int }

func (g *sequentialUidGenerator) NewUid() string {
	g.n++
	return fmt.Sprintf("uid-%d", g.n)
}

func strPtr(s string) *string { return &s }

func mustPlan(t *testing.T, doc *PlanDocument) *Plan {
	t.Helper()
	plan, err := ParsePlan(doc)
	require.NoError(t, err)
	return plan
}

func TestDecide_TrivialStartWithNoSpecsCompletesWorkflow(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{Start: TaskDocument{Name: "bootstrap", Queue: "q"}})
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{Input: strPtr("in")}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	complete, ok := decisions[0].(*CompleteWorkflowDecision)
	require.True(t, ok)
	require.Equal(t, "in", *complete.Result)
}

func TestDecide_AdvancesThroughWorkSteps(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap"},
		Specs: []SpecDocument{
			{Work: &TaskDocument{Name: "fetch"}},
			{Work: &TaskDocument{Name: "publish"}},
		},
	})

	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{Input: strPtr("in")}},
		{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 3, Type: EventActivityTaskCompleted, Attributes: ActivityTaskCompletedAttributes{ScheduledEventID: 2, Result: strPtr("fetched")}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	sched, ok := decisions[0].(*ScheduleActivityDecision)
	require.True(t, ok)
	require.Equal(t, "publish", sched.TaskName)
	require.Equal(t, "fetched", *sched.Input)
}

func TestDecide_SleepThenWork(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap"},
		Specs: []SpecDocument{
			{Sleep: &TimerDocument{Name: "cooldown", TimeoutSeconds: 60}},
			{Work: &TaskDocument{Name: "publish"}},
		},
	})

	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{Input: strPtr("in")}},
		{EventID: 2, Type: EventTimerStarted, Attributes: TimerStartedAttributes{Control: "cooldown"}},
		{EventID: 3, Type: EventTimerFired, Attributes: TimerFiredAttributes{StartedEventID: 2}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	sched, ok := decisions[0].(*ScheduleActivityDecision)
	require.True(t, ok)
	require.Equal(t, "publish", sched.TaskName)
	require.Equal(t, "in", *sched.Input)
}

func TestDecide_UsesMostRecentActionableEvent(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap"},
		Specs: []SpecDocument{
			{Work: &TaskDocument{Name: "fetch"}},
			{Work: &TaskDocument{Name: "publish"}},
		},
	})

	// Two ActivityTaskScheduled/Completed pairs for "fetch" appear in the
	// history (e.g. a retried schedule); only the later completion should
	// drive the next decision.
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{Input: strPtr("in")}},
		{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 3, Type: EventActivityTaskCompleted, Attributes: ActivityTaskCompletedAttributes{ScheduledEventID: 2, Result: strPtr("stale")}},
		{EventID: 4, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 5, Type: EventActivityTaskCompleted, Attributes: ActivityTaskCompletedAttributes{ScheduledEventID: 4, Result: strPtr("fresh")}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	sched := decisions[0].(*ScheduleActivityDecision)
	require.Equal(t, "fresh", *sched.Input)
}

func TestDecide_ActivityFailureAlwaysFailsWorkflow(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap"},
		Specs: []SpecDocument{{Work: &TaskDocument{Name: "fetch"}}},
	})
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{}},
		{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 3, Type: EventActivityTaskFailed, Attributes: ActivityTaskFailedAttributes{ScheduledEventID: 2, Reason: "boom"}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	fail, ok := decisions[0].(*FailWorkflowDecision)
	require.True(t, ok)
	require.Equal(t, "boom", fail.Reason)
}

func TestDecide_ActivityCanceledCancelsWorkflow(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap"},
		Specs: []SpecDocument{{Work: &TaskDocument{Name: "fetch"}}},
	})
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{}},
		{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 3, Type: EventActivityTaskCanceled, Attributes: ActivityTaskCanceledAttributes{ScheduledEventID: 2}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.IsType(t, &CancelWorkflowDecision{}, decisions[0])
}

func TestDecide_EndContinueRestartsFromStart(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap", Version: "v3", Queue: "q"},
		End:   "continue",
		Specs: []SpecDocument{{Work: &TaskDocument{Name: "fetch"}}},
	})
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{Input: strPtr("seed")}},
		{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}},
		{EventID: 3, Type: EventActivityTaskCompleted, Attributes: ActivityTaskCompletedAttributes{ScheduledEventID: 2, Result: strPtr("done")}},
	}
	dc := newDecisionContext(plan, events)
	decisions, err := dc.decide(&sequentialUidGenerator{})
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	cont, ok := decisions[0].(*StartChildWorkflowDecision)
	require.True(t, ok)
	require.Equal(t, "bootstrap", cont.TaskName)
	require.Equal(t, "v3", cont.TaskVersion)
	require.Equal(t, "seed", *cont.Input)
}

func TestDecide_DuplicateEventIDPanicsIllegalState(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{Start: TaskDocument{Name: "bootstrap"}})
	events := []*HistoryEvent{
		{EventID: 1, Type: EventWorkflowExecutionStarted, Attributes: WorkflowExecutionStartedAttributes{}},
		{EventID: 1, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "x"}},
	}
	require.Panics(t, func() { newDecisionContext(plan, events) })
}

func TestNextSpec_FindsSuccessorOrReportsEnd(t *testing.T) {
	specs := []Spec{
		{Variant: VariantWork, Task: &Task{Name: "a"}},
		{Variant: VariantSleep, Timer: &Timer{Name: "b"}},
	}
	next, idx, ok := nextSpec(specs, VariantWork, "a")
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.Equal(t, "b", next.Name())

	_, _, ok = nextSpec(specs, VariantSleep, "b")
	require.False(t, ok)

	_, _, ok = nextSpec(specs, VariantWork, "missing")
	require.False(t, ok)
}
