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

package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"
)

const defaultMaxParallel = 10

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//go:generate /usr/bin/env bash -c "cat ../hack/boilerplate/boilerplate.generatego.txt httpfakes/fake_agent_implementation.go > httpfakes/_fake_agent_implementation.go && mv httpfakes/_fake_agent_implementation.go httpfakes/fake_agent_implementation.go"

// Agent is an http agent.
type Agent struct {
	options *agentOptions
	AgentImplementation
}

// AgentImplementation is the actual implementation of the http calls
//
//counterfeiter:generate . AgentImplementation
type AgentImplementation interface {
	SendRequest(client *http.Client, method, url string) (*http.Response, error)
}

type defaultAgentImplementation struct{}

// agentOptions has the configurable bits of the agent.
type agentOptions struct {
	Timeout     time.Duration // Timeout when fetching URLs, zero means none
	MaxParallel uint          // Maximum number of parallel requests when requesting groups
}

// String returns a string representation of the options.
func (ao *agentOptions) String() string {
	return fmt.Sprintf(
		"HTTP.Agent options: Timeout: %s - MaxParallel: %d",
		ao.Timeout, ao.MaxParallel,
	)
}

func defaultAgentOptions() *agentOptions {
	return &agentOptions{
		Timeout:     0,
		MaxParallel: defaultMaxParallel,
	}
}

// NewAgent return a new agent with default options.
func NewAgent() *Agent {
	return &Agent{
		AgentImplementation: &defaultAgentImplementation{},
		options:             defaultAgentOptions(),
	}
}

// SetImplementation sets the agent implementation.
func (a *Agent) SetImplementation(impl AgentImplementation) {
	a.AgentImplementation = impl
}

// WithTimeout sets the agent timeout.
func (a *Agent) WithTimeout(timeout time.Duration) *Agent {
	a.options.Timeout = timeout
	return a
}

// WithMaxParallel controls how many requests we do when fetching groups.
// Values below one are raised to one.
func (a *Agent) WithMaxParallel(workers int) *Agent {
	if workers < 1 {
		workers = 1
	}
	a.options.MaxParallel = uint(workers)
	return a
}

// MaxParallel returns the number of requests a group keeps in flight.
func (a *Agent) MaxParallel() int {
	return int(a.options.MaxParallel)
}

// Options returns a printable summary of the agent configuration.
func (a *Agent) Options() string {
	return a.options.String()
}

// Client return an net/http client preconfigured with the agent options.
func (a *Agent) Client() *http.Client {
	return &http.Client{
		Timeout: a.options.Timeout,
	}
}

// Request sends a single request with the given method to a URL and returns
// the raw response. The caller is responsible for closing the body.
func (a *Agent) Request(method, url string) (*http.Response, error) {
	logrus.Debugf("Sending %s request to %s", method, url)
	return a.AgentImplementation.SendRequest(a.Client(), method, url)
}

// SendRequest performs the actual request.
func (impl *defaultAgentImplementation) SendRequest(client *http.Client, method, url string) (
	response *http.Response, err error,
) {
	request, err := http.NewRequest(method, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building %s request for %s: %w", method, url, err)
	}

	response, err = client.Do(request)
	if err != nil {
		return response, fmt.Errorf("sending %s request to %s: %w", method, url, err)
	}

	return response, nil
}

// RequestGroup behaves like agent.Request() but takes a group of methods and
// sends one request per method to the same URL in parallel. The number of
// simultaneous requests is controlled by options.MaxParallel.
//
// The returned slices are guaranteed to be of the same length and order as
// the methods argument, regardless of the order in which the requests finish.
func (a *Agent) RequestGroup(methods []string, url string) ([]*http.Response, []error) {
	ret := make([]*http.Response, len(methods))
	errs := make([]error, len(methods))
	if len(methods) == 0 {
		return ret, errs
	}

	t := throttler.New(int(a.options.MaxParallel), len(methods))
	m := sync.Mutex{}
	for i := range methods {
		go func(method string) {
			//nolint: bodyclose // We don't close here as we're returning the response
			resp, err := a.Request(method, url)

			m.Lock()
			ret[i] = resp
			errs[i] = err
			m.Unlock()

			t.Done(err)
		}(methods[i])
		t.Throttle()
	}

	return ret, errs
}

// CloseResponseGroup closes the bodies of all non-nil responses.
func CloseResponseGroup(resps []*http.Response) {
	for i := range resps {
		if resps[i] == nil || resps[i].Body == nil {
			continue
		}
		if err := resps[i].Body.Close(); err != nil {
			logrus.Warnf("Closing response body #%d: %v", i, err)
		}
	}
}
