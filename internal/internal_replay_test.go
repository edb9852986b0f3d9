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
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReplay_FullPlanAcrossTicks pins the decision sequence a three-step
// Plan (work, sleep, work) produces as its event history grows one
// event at a time, the way a real Workflow Service would deliver it tick
// by tick. A regression here means a history shape that used to decide
// correctly no longer does.
func TestReplay_FullPlanAcrossTicks(t *testing.T) {
	plan := mustPlan(t, &PlanDocument{
		Start: TaskDocument{Name: "bootstrap", Queue: "q"},
		Specs: []SpecDocument{
			{Work: &TaskDocument{Name: "fetch"}},
			{Sleep: &TimerDocument{Name: "cooldown", TimeoutSeconds: 5}},
			{Work: &TaskDocument{Name: "publish"}},
		},
	})

	var history []*HistoryEvent
	gen := &sequentialUidGenerator{}

	tick := func(eventID int64, eventType EventType, attrs interface{}) []Decision {
		history = append(history, &HistoryEvent{EventID: eventID, Type: eventType, Attributes: attrs})
		dc := newDecisionContext(plan, history)
		decisions, err := dc.decide(gen)
		require.NoError(t, err)
		return decisions
	}

	// Tick 1: started -> schedule "fetch".
	decisions := tick(1, EventWorkflowExecutionStarted, WorkflowExecutionStartedAttributes{Input: strPtr("seed")})
	require.Len(t, decisions, 1)
	require.IsType(t, &ScheduleActivityDecision{}, decisions[0])
	require.Equal(t, "fetch", decisions[0].(*ScheduleActivityDecision).TaskName)

	history = append(history, &HistoryEvent{EventID: 2, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "fetch"}})

	// Tick 2: fetch completes -> start "cooldown" timer.
	decisions = tick(3, EventActivityTaskCompleted, ActivityTaskCompletedAttributes{ScheduledEventID: 2, Result: strPtr("fetched")})
	require.Len(t, decisions, 1)
	require.IsType(t, &StartTimerDecision{}, decisions[0])
	require.Equal(t, "cooldown", decisions[0].(*StartTimerDecision).TimerName)

	history = append(history, &HistoryEvent{EventID: 4, Type: EventTimerStarted, Attributes: TimerStartedAttributes{Control: "cooldown"}})

	// Tick 3: timer fires -> schedule "publish" carrying fetch's result forward.
	decisions = tick(5, EventTimerFired, TimerFiredAttributes{StartedEventID: 4})
	require.Len(t, decisions, 1)
	sched, ok := decisions[0].(*ScheduleActivityDecision)
	require.True(t, ok)
	require.Equal(t, "publish", sched.TaskName)
	require.Equal(t, "fetched", *sched.Input)

	history = append(history, &HistoryEvent{EventID: 6, Type: EventActivityTaskScheduled, Attributes: ActivityTaskScheduledAttributes{ActivityName: "publish"}})

	// Tick 4: publish completes, no more Specs, End is Stop -> complete.
	decisions = tick(7, EventActivityTaskCompleted, ActivityTaskCompletedAttributes{ScheduledEventID: 6, Result: strPtr("published")})
	require.Len(t, decisions, 1)
	complete, ok := decisions[0].(*CompleteWorkflowDecision)
	require.True(t, ok)
	require.Equal(t, "published", *complete.Result)
}
