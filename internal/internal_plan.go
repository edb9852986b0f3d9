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

// Task is one unit of shell work a Plan can schedule as an activity.
type Task struct {
	Name           string
	Version        string
	Queue          string
	TimeoutSeconds int32
}

// Timer is one Sleep step a Plan can schedule.
type Timer struct {
	Name           string
	TimeoutSeconds int32
}

// Variant distinguishes a Spec's Work step from its Sleep step.
type Variant int32

const (
	VariantWork Variant = iota
	VariantSleep
)

// Spec is one step of a Plan: either a Task to run or a Timer to wait on.
type Spec struct {
	Variant Variant
	Task    *Task
	Timer   *Timer
}

// Name returns the step's name, whichever variant it is.
func (s Spec) Name() string {
	if s.Variant == VariantSleep {
		return s.Timer.Name
	}
	return s.Task.Name
}

// EndPolicy governs what happens once a Plan's last Spec completes.
type EndPolicy int32

const (
	EndStop EndPolicy = iota
	EndContinue
)

func (p EndPolicy) String() string {
	if p == EndContinue {
		return "continue"
	}
	return "stop"
}

// Plan is the ordered sequence of steps a Decider replays against an event
// history: a Start Task, zero or more Work/Sleep Specs, and an End policy.
type Plan struct {
	Start Task
	Specs []Spec
	End   EndPolicy
}

// TaskDocument is the YAML wire shape of a Task.
type TaskDocument struct {
	Name           string `yaml:"name"`
	Version        string `yaml:"version"`
	Queue          string `yaml:"queue"`
	TimeoutSeconds int32  `yaml:"timeout_seconds"`
}

// TimerDocument is the YAML wire shape of a Timer.
type TimerDocument struct {
	Name           string `yaml:"name"`
	TimeoutSeconds int32  `yaml:"timeout_seconds"`
}

// SpecDocument is the YAML wire shape of a Spec: exactly one of Work or Sleep
// must be set.
type SpecDocument struct {
	Work  *TaskDocument  `yaml:"work,omitempty"`
	Sleep *TimerDocument `yaml:"sleep,omitempty"`
}

// PlanDocument is the YAML wire shape of a Plan.
type PlanDocument struct {
	Start TaskDocument   `yaml:"start"`
	End   string         `yaml:"end"`
	Specs []SpecDocument `yaml:"specs"`
}

// Document renders p back to its YAML wire shape, the inverse of ParsePlan.
func (p *Plan) Document() *PlanDocument {
	doc := &PlanDocument{
		Start: TaskDocument{
			Name:           p.Start.Name,
			Version:        p.Start.Version,
			Queue:          p.Start.Queue,
			TimeoutSeconds: p.Start.TimeoutSeconds,
		},
		End:   p.End.String(),
		Specs: make([]SpecDocument, 0, len(p.Specs)),
	}
	for _, s := range p.Specs {
		doc.Specs = append(doc.Specs, s.document())
	}
	return doc
}

func (s Spec) document() SpecDocument {
	if s.Variant == VariantSleep {
		return SpecDocument{Sleep: &TimerDocument{Name: s.Timer.Name, TimeoutSeconds: s.Timer.TimeoutSeconds}}
	}
	return SpecDocument{Work: &TaskDocument{
		Name:           s.Task.Name,
		Version:        s.Task.Version,
		Queue:          s.Task.Queue,
		TimeoutSeconds: s.Task.TimeoutSeconds,
	}}
}

func (d SpecDocument) toSpec() (Spec, error) {
	switch {
	case d.Work != nil && d.Sleep == nil:
		t := *d.Work
		return Spec{Variant: VariantWork, Task: &Task{
			Name: t.Name, Version: t.Version, Queue: t.Queue, TimeoutSeconds: t.TimeoutSeconds,
		}}, nil
	case d.Sleep != nil && d.Work == nil:
		t := *d.Sleep
		return Spec{Variant: VariantSleep, Timer: &Timer{Name: t.Name, TimeoutSeconds: t.TimeoutSeconds}}, nil
	default:
		return Spec{}, &ConfigError{Message: "spec must set exactly one of work or sleep"}
	}
}

func parseEndPolicy(s string) (EndPolicy, error) {
	switch s {
	case "", "stop":
		return EndStop, nil
	case "continue":
		return EndContinue, nil
	default:
		return 0, &ConfigError{Message: fmt.Sprintf("unknown end policy %q", s)}
	}
}

// ParsePlan validates doc and builds the Plan it describes. Task and Timer
// names share one namespace across the whole Plan: TimerFired recovers a
// step's name from its Control payload and ActivityTaskCompleted recovers it
// from the originating ActivityTaskScheduled event, neither carrying an
// explicit variant hint, so a name must resolve unambiguously on its own.
func ParsePlan(doc *PlanDocument) (*Plan, error) {
	if doc.Start.Name == "" {
		return nil, &ConfigError{Message: "plan start task must have a name"}
	}
	end, err := parseEndPolicy(doc.End)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{doc.Start.Name: true}
	specs := make([]Spec, 0, len(doc.Specs))
	for i, d := range doc.Specs {
		s, err := d.toSpec()
		if err != nil {
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
		name := s.Name()
		if name == "" {
			return nil, &ConfigError{Message: fmt.Sprintf("spec %d must have a name", i)}
		}
		if seen[name] {
			return nil, &ConfigError{Message: fmt.Sprintf("duplicate step name %q", name)}
		}
		seen[name] = true
		specs = append(specs, s)
	}

	return &Plan{
		Start: Task{
			Name: doc.Start.Name, Version: doc.Start.Version,
			Queue: doc.Start.Queue, TimeoutSeconds: doc.Start.TimeoutSeconds,
		},
		Specs: specs,
		End:   end,
	}, nil
}
