/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package probe sends every method of the catalog to a target and collects
// one result per method.
package probe

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/method-prober/http"
	"sigs.k8s.io/method-prober/methods"
)

// MaxParallel is the number of probes kept in flight for a single target.
const MaxParallel = 10

// Outcome is what a single probe produced: either a status code or the
// network error that prevented one.
type Outcome struct {
	StatusCode int
	Err        error
}

// Failed reports whether the probe ended in a network error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Result pairs a method with the outcome of probing it.
type Result struct {
	Method  string
	Outcome Outcome
}

// String returns the status code as text, or a description of the error.
func (r Result) String() string {
	if r.Outcome.Failed() {
		return fmt.Sprintf("Error occurred with %s request: %v", r.Method, r.Outcome.Err)
	}
	return strconv.Itoa(r.Outcome.StatusCode)
}

// Prober probes targets with a fixed list of methods.
type Prober struct {
	agent   *http.Agent
	methods []string
}

// NewProber returns a prober for the full method catalog that keeps at most
// MaxParallel requests in flight.
func NewProber() *Prober {
	return &Prober{
		agent:   http.NewAgent().WithMaxParallel(MaxParallel),
		methods: methods.All(),
	}
}

// SetImplementation replaces the transport used by the prober agent.
func (p *Prober) SetImplementation(impl http.AgentImplementation) {
	p.agent.SetImplementation(impl)
}

// Methods returns a copy of the methods sent to each target.
func (p *Prober) Methods() []string {
	return append([]string(nil), p.methods...)
}

// Probe sends one request per method to url and returns the results in method
// order. Network errors are reported in the results, Probe itself never
// fails.
func (p *Prober) Probe(url string) []Result {
	logrus.Debugf("Probing %s with %d methods (%s)", url, len(p.methods), p.agent.Options())

	//nolint: bodyclose // closed by CloseResponseGroup
	resps, errs := p.agent.RequestGroup(p.methods, url)
	defer http.CloseResponseGroup(resps)

	results := make([]Result, len(p.methods))
	for i, method := range p.methods {
		results[i] = Result{Method: method}
		switch {
		case errs[i] != nil:
			results[i].Outcome.Err = errs[i]
		case resps[i] == nil:
			results[i].Outcome.Err = fmt.Errorf("no response to %s request", method)
		default:
			results[i].Outcome.StatusCode = resps[i].StatusCode
		}
		if results[i].Outcome.Failed() {
			logrus.Debugf("%s %s failed: %v", method, url, results[i].Outcome.Err)
		}
	}
	return results
}
