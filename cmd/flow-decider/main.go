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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/opentracing/opentracing-go"
	"github.com/spf13/cobra"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"go.uber.org/flow/v2/decider"
	"go.uber.org/flow/v2/internal"
)

var (
	configPath  string
	quiescePath string
	concurrency int
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow-decider",
		Short: "Run the decider loop against a configured plan",
		RunE:  runDecider,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "flow.yaml", "path to the YAML configuration file")
	cmd.Flags().StringVar(&quiescePath, "quiesce-path", "", "path whose existence requests graceful shutdown")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of parallel decider workers")
	return cmd
}

func runDecider(cmd *cobra.Command, args []string) error {
	cfg, plan, err := internal.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracer, closer, err := newTracer("flow-decider."+cfg.Domain, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := newServiceClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := client.RegisterDomain(ctx, cfg.Domain); err != nil && !internal.IsAlreadyExists(err) {
		return err
	}
	if err := client.RegisterWorkflowType(ctx, cfg.Domain, plan.Start.Name, plan.Start.Version); err != nil && !internal.IsAlreadyExists(err) {
		return err
	}
	for _, spec := range plan.Specs {
		if spec.Variant != internal.VariantWork {
			continue
		}
		if err := client.RegisterActivityType(ctx, cfg.Domain, spec.Task.Name, spec.Task.Version); err != nil && !internal.IsAlreadyExists(err) {
			return err
		}
	}

	host := internal.NewDeciderHost(client, plan, cfg.Domain, cfg.Queue, internal.DeciderOptions{
		Concurrency: concurrency,
		QuiescePath: quiescePath,
		Logger:      logger,
		Tracer:      tracer,
	})
	var d decider.Decider = host
	return d.Run()
}

func newTracer(serviceName string, logger *zap.Logger) (opentracing.Tracer, io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler:     &jaegercfg.SamplerConfig{Type: "const", Param: 1},
		Reporter:    &jaegercfg.ReporterConfig{LogSpans: false},
	}
	return cfg.NewTracer(jaegercfg.Logger(jaegerZapAdapter{logger}))
}

type jaegerZapAdapter struct {
	logger *zap.Logger
}

func (a jaegerZapAdapter) Error(msg string) {
	a.logger.Error(msg)
}

func (a jaegerZapAdapter) Infof(msg string, args ...interface{}) {
	a.logger.Sugar().Infof(msg, args...)
}

// newServiceClient constructs the ServiceClient this decider replays
// against. As with flow-actor, the concrete Workflow Service RPC transport
// is out of this module's scope; an operator links a build that replaces
// this function with one returning a real client.
func newServiceClient(cfg *internal.Config) (internal.ServiceClient, error) {
	return nil, fmt.Errorf("flow-decider: no ServiceClient implementation linked for domain %q", cfg.Domain)
}
