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
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DeciderOptions configures a DeciderHost.
type DeciderOptions struct {
	Concurrency  int
	QuiescePath  string
	Logger       *zap.Logger
	MetricsScope tally.Scope
	Tracer       opentracing.Tracer
	// PollQPS caps how often a worker calls PollDecision, per worker. Zero
	// means unlimited.
	PollQPS float64
}

// DeciderHost runs the Decider Loop: poll a decision task, replay its event
// history against the Plan, and respond with the resulting Decisions, across
// Options.Concurrency parallel workers.
type DeciderHost struct {
	client ServiceClient
	plan   *Plan
	domain string
	queue  string
	opts   DeciderOptions
	gen    UidGenerator

	invoker *serviceInvoker
	limiter *rate.Limiter

	stop atomic.Bool
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs error
}

// NewDeciderHost constructs a DeciderHost replaying plan against domain/queue.
func NewDeciderHost(client ServiceClient, plan *Plan, domain, queue string, opts DeciderOptions) *DeciderHost {
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}
	if opts.MetricsScope == nil {
		opts.MetricsScope = defaultScope()
	}
	if opts.Tracer == nil {
		opts.Tracer = opentracing.NoopTracer{}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	var limiter *rate.Limiter
	if opts.PollQPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.PollQPS), 1)
	}
	return &DeciderHost{
		client:  client,
		plan:    plan,
		domain:  domain,
		queue:   queue,
		opts:    opts,
		gen:     NewUUIDGenerator(),
		invoker: newServiceInvoker(opts.Logger),
		limiter: limiter,
	}
}

func (h *DeciderHost) recordErr(err error) {
	if err == nil {
		return
	}
	h.mu.Lock()
	h.errs = multierr.Append(h.errs, err)
	h.mu.Unlock()
}

// Start launches Options.Concurrency workers and returns immediately.
func (h *DeciderHost) Start() {
	for i := 0; i < h.opts.Concurrency; i++ {
		id := i
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.recordErr(h.runWorker(id))
		}()
	}
}

// Run starts the host and blocks until every worker exits, returning their
// aggregated errors.
func (h *DeciderHost) Run() error {
	h.Start()
	h.wg.Wait()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errs
}

// Stop requests every worker quiesce after its current iteration and blocks
// until they do.
func (h *DeciderHost) Stop() error {
	h.stop.Store(true)
	h.wg.Wait()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errs
}

func (h *DeciderHost) quiesceRequested() bool {
	if h.opts.QuiescePath == "" {
		return false
	}
	_, err := os.Stat(h.opts.QuiescePath)
	return err == nil
}

func (h *DeciderHost) runWorker(id int) error {
	scope := h.opts.MetricsScope.Tagged(map[string]string{"worker": fmt.Sprintf("%d", id)})
	ctx := context.Background()
	for !h.stop.Load() && !h.quiesceRequested() {
		if err := h.iterate(ctx, scope); err != nil {
			h.opts.Logger.Error("decider iteration failed", zap.Int("worker", id), zap.Error(err))
			scope.Counter("iteration.error").Inc(1)
		}
	}
	return nil
}

func (h *DeciderHost) iterate(ctx context.Context, scope tally.Scope) error {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var task *DecisionTask
	err := h.invoker.retry(ctx, func() error {
		t, err := h.client.PollDecision(ctx, h.domain, h.queue)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return err
	}
	if task == nil || len(task.Token) == 0 {
		return nil
	}

	span := h.opts.Tracer.StartSpan("flow.decider.decide")
	defer span.Finish()

	decisions, err := h.decideSafely(task.Events)
	if err != nil {
		return err
	}
	scope.Counter("decision.emitted").Inc(int64(len(decisions)))

	return h.invoker.retry(ctx, func() error {
		return h.client.RespondDecisionCompleted(ctx, task.Token, decisions)
	})
}

// decideSafely recovers a stateMachineIllegalStatePanic raised by the
// decision engine and converts it to a *ProtocolError; any other panic is
// re-raised, since it indicates a bug rather than a malformed history.
func (h *DeciderHost) decideSafely(events []*HistoryEvent) (decisions []Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			if p, ok := r.(stateMachineIllegalStatePanic); ok {
				err = &ProtocolError{Message: p.message}
				return
			}
			panic(r)
		}
	}()
	dc := newDecisionContext(h.plan, events)
	return dc.decide(h.gen)
}
