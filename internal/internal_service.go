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

import "context"

// ActivityTask is a unit of work handed to an Actor by PollActivity.
type ActivityTask struct {
	Token []byte
	Uid   string
	Input *string
}

// DecisionTask is a unit of work handed to a Decider by PollDecision: the
// event history replayed to produce the tick's Decisions.
type DecisionTask struct {
	Token  []byte
	Events []*HistoryEvent
}

// ServiceClient is the narrow contract this client needs from a hosted
// Workflow Service. It is deliberately transport-free: bytes-on-the-wire
// encoding and connection management belong to whatever concrete
// implementation is wired in at the cmd/ layer, not to this package.
type ServiceClient interface {
	RegisterDomain(ctx context.Context, domain string) error
	RegisterWorkflowType(ctx context.Context, domain, name, version string) error
	RegisterActivityType(ctx context.Context, domain, name, version string) error

	StartWorkflow(ctx context.Context, domain, queue string, task Task, input *string) error

	PollActivity(ctx context.Context, domain, queue string) (*ActivityTask, error)
	PollDecision(ctx context.Context, domain, queue string) (*DecisionTask, error)

	RespondActivityCompleted(ctx context.Context, token []byte, output *string) error
	RespondActivityFailed(ctx context.Context, token []byte, reason string) error
	RespondActivityCanceled(ctx context.Context, token []byte) error

	RespondDecisionCompleted(ctx context.Context, token []byte, decisions []Decision) error
}

// ObjectStore is the narrow contract this client needs from a hosted object
// store (e.g. S3): list, get, and put against a bucket, with credential
// discovery and transport left to the concrete implementation.
type ObjectStore interface {
	ListKeys(ctx context.Context, bucket, prefix string) ([]string, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte) error
}
