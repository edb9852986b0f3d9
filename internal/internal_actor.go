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
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/opentracing/opentracing-go"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ActorOptions configures an ActorHost.
type ActorOptions struct {
	Concurrency  int
	QuiescePath  string
	Command      string
	NoCopy       bool
	Local        bool
	Gzip         bool
	Logger       *zap.Logger
	MetricsScope tally.Scope
	Tracer       opentracing.Tracer
	// PollQPS caps how often a worker calls PollActivity, per worker.
	// Zero means unlimited.
	PollQPS float64
}

type controlDocument struct {
	RunUid string `json:"run_uid"`
}

// ActorHost runs the Actor Loop: poll, stage artifacts in, run the configured
// command, stage artifacts out, and respond, across Options.Concurrency
// parallel workers.
type ActorHost struct {
	client ServiceClient
	store  ObjectStore
	domain string
	queue  string
	bucket string
	prefix string
	opts   ActorOptions

	invoker *serviceInvoker
	stager  *stager
	limiter *rate.Limiter

	stop atomic.Bool
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs error
}

// NewActorHost constructs an ActorHost polling domain/queue and staging
// artifacts through bucket/prefix.
func NewActorHost(client ServiceClient, store ObjectStore, domain, queue, bucket, prefix string, opts ActorOptions) *ActorHost {
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
	return &ActorHost{
		client:  client,
		store:   store,
		domain:  domain,
		queue:   queue,
		bucket:  bucket,
		prefix:  prefix,
		opts:    opts,
		invoker: newServiceInvoker(opts.Logger),
		stager:  newStager(store, StagerOptions{Gzip: opts.Gzip}),
		limiter: limiter,
	}
}

func (h *ActorHost) recordErr(err error) {
	if err == nil {
		return
	}
	h.mu.Lock()
	h.errs = multierr.Append(h.errs, err)
	h.mu.Unlock()
}

// Start launches Options.Concurrency workers and returns immediately.
func (h *ActorHost) Start() {
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
func (h *ActorHost) Run() error {
	h.Start()
	h.wg.Wait()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errs
}

// Stop requests every worker quiesce after its current iteration and blocks
// until they do.
func (h *ActorHost) Stop() error {
	h.stop.Store(true)
	h.wg.Wait()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errs
}

func (h *ActorHost) quiesceRequested() bool {
	if h.opts.QuiescePath == "" {
		return false
	}
	_, err := os.Stat(h.opts.QuiescePath)
	return err == nil
}

func (h *ActorHost) runWorker(id int) error {
	scope := h.opts.MetricsScope.Tagged(map[string]string{"worker": fmt.Sprintf("%d", id)})
	ctx := context.Background()
	for !h.stop.Load() && !h.quiesceRequested() {
		if err := h.iterate(ctx, scope); err != nil {
			h.opts.Logger.Error("actor iteration failed", zap.Int("worker", id), zap.Error(err))
			scope.Counter("iteration.error").Inc(1)
		}
	}
	return nil
}

func (h *ActorHost) iterate(ctx context.Context, scope tally.Scope) error {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var task *ActivityTask
	err := h.invoker.retry(ctx, func() error {
		t, err := h.client.PollActivity(ctx, h.domain, h.queue)
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

	span := h.opts.Tracer.StartSpan("flow.actor.execute")
	defer span.Finish()

	result, err := h.execute(ctx, task)
	if err != nil {
		return err
	}
	scope.Counter("activity.executed").Inc(1)
	return h.respond(ctx, task.Token, result)
}

type activityExecResult struct {
	disposition Disposition
	output      *string
	exitCode    int
	spawnErr    error
}

func (h *ActorHost) execute(ctx context.Context, task *ActivityTask) (*activityExecResult, error) {
	var result *activityExecResult
	err := withWorkspace(task.Uid, WorkspaceOptions{NoCopy: h.opts.NoCopy, Local: h.opts.Local}, func(ws *Workspace) error {
		if err := writeJSON(filepath.Join(ws.DataDir, "control.json"), controlDocument{RunUid: task.Uid}); err != nil {
			return err
		}
		if task.Input != nil {
			if err := ioutil.WriteFile(filepath.Join(ws.DataDir, "input.json"), []byte(*task.Input), 0o644); err != nil {
				return err
			}
		}

		if err := h.stager.stageIn(ctx, h.bucket, h.prefix+"/"+task.Uid+"/in", ws); err != nil {
			return err
		}

		run := runCommand(ctx, h.opts.Command, ws.Root)

		// Stage out whatever the command produced even on failure, so
		// partial diagnostics are preserved for inspection.
		if _, stageErr := h.stager.stageOut(ctx, h.bucket, h.prefix+"/"+task.Uid+"/out", ws); stageErr != nil {
			return stageErr
		}

		var output *string
		outPath := filepath.Join(ws.DataDir, "output.json")
		if data, err := ioutil.ReadFile(outPath); err == nil {
			s := string(data)
			output = &s
		} else if !os.IsNotExist(err) {
			return err
		}

		result = &activityExecResult{
			disposition: run.Disposition,
			output:      output,
			exitCode:    run.ExitCode,
			spawnErr:    run.SpawnError,
		}
		return nil
	})
	return result, err
}

func (h *ActorHost) respond(ctx context.Context, token []byte, result *activityExecResult) error {
	switch result.disposition {
	case DispositionSuccess:
		return h.invoker.retry(ctx, func() error { return h.client.RespondActivityCompleted(ctx, token, result.output) })
	case DispositionCanceled:
		return h.invoker.retry(ctx, func() error { return h.client.RespondActivityCanceled(ctx, token) })
	default:
		reason := fmt.Sprintf("exit code %d", result.exitCode)
		if result.spawnErr != nil {
			reason = result.spawnErr.Error()
		}
		return h.invoker.retry(ctx, func() error { return h.client.RespondActivityFailed(ctx, token, reason) })
	}
}

func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0o644)
}
