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

// Package decider hosts the Decider Loop: polling decision tasks, replaying
// event history against a Plan, and responding with Decisions.
package decider

import (
	"go.uber.org/flow/v2/flow"
	"go.uber.org/flow/v2/internal"
)

// Options configures a Decider.
type Options = internal.DeciderOptions

// Decider polls a queue for decision tasks and replays them against a Plan
// until stopped or its quiesce file appears.
type Decider interface {
	// Start launches the configured number of workers and returns
	// immediately.
	Start()
	// Run starts the Decider and blocks until every worker exits.
	Run() error
	// Stop requests every worker quiesce and blocks until they do.
	Stop() error
}

// New constructs a Decider replaying plan against domain/queue.
func New(client flow.ServiceClient, plan *flow.Plan, domain, queue string, options Options) Decider {
	return internal.NewDeciderHost(client, plan, domain, queue, options)
}
