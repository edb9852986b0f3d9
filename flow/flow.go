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

// Package flow defines the Plan model, event history, decisions, and service
// contracts shared by the actor and decider packages.
package flow

import "go.uber.org/flow/v2/internal"

type (
	// Task is one unit of shell work a Plan can schedule as an activity.
	Task = internal.Task
	// Timer is one Sleep step a Plan can schedule.
	Timer = internal.Timer
	// Variant distinguishes a Spec's Work step from its Sleep step.
	Variant = internal.Variant
	// Spec is one step of a Plan: either a Task to run or a Timer to wait on.
	Spec = internal.Spec
	// EndPolicy governs what happens once a Plan's last Spec completes.
	EndPolicy = internal.EndPolicy
	// Plan is the ordered sequence of steps a Decider replays against an
	// event history.
	Plan = internal.Plan

	// PlanDocument is the YAML wire shape of a Plan.
	PlanDocument = internal.PlanDocument
	// TaskDocument is the YAML wire shape of a Task.
	TaskDocument = internal.TaskDocument
	// TimerDocument is the YAML wire shape of a Timer.
	TimerDocument = internal.TimerDocument
	// SpecDocument is the YAML wire shape of a Spec.
	SpecDocument = internal.SpecDocument
)

const (
	VariantWork  = internal.VariantWork
	VariantSleep = internal.VariantSleep

	EndStop     = internal.EndStop
	EndContinue = internal.EndContinue
)

// ParsePlan validates doc and builds the Plan it describes.
func ParsePlan(doc *PlanDocument) (*Plan, error) {
	return internal.ParsePlan(doc)
}
