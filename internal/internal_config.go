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
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file shape an Actor or Decider binary
// loads at startup: the Domain and Queue to operate against, the Object
// Store Bucket/Prefix artifacts stage through, and the Plan the Decider
// replays.
type Config struct {
	Domain string       `yaml:"domain"`
	Queue  string       `yaml:"queue"`
	Bucket string       `yaml:"bucket"`
	Prefix string       `yaml:"prefix"`
	Plan   PlanDocument `yaml:"plan"`
}

// LoadConfig reads and parses the YAML configuration file at path, also
// validating its embedded Plan document.
func LoadConfig(path string) (*Config, *Plan, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, &ConfigError{Message: err.Error()}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, &ConfigError{Message: err.Error()}
	}

	plan, err := ParsePlan(&cfg.Plan)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, plan, nil
}
