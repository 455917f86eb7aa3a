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

// Package batch drives the prober over a sequence of targets.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/method-prober/probe"
	"sigs.k8s.io/method-prober/report"
)

// ErrNoURLs is returned when there is nothing to probe.
var ErrNoURLs = errors.New("no URLs provided")

// ReadTargets reads one target per line. Lines are trimmed and blank lines
// are skipped.
func ReadTargets(r io.Reader) ([]string, error) {
	targets := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading targets: %w", err)
	}
	return targets, nil
}

// Driver probes targets one after the other and prints their results.
type Driver struct {
	prober    *probe.Prober
	presenter *report.Presenter
}

// New returns a driver using the given prober and presenter.
func New(prober *probe.Prober, presenter *report.Presenter) *Driver {
	return &Driver{prober: prober, presenter: presenter}
}

// Run probes every target in order. Each target is probed to completion and
// its results printed before the next one starts. Probe failures are part of
// the output, only a missing target list or a failing writer is an error.
func (d *Driver) Run(targets []string) error {
	urls := make([]string, 0, len(targets))
	for _, target := range targets {
		if strings.TrimSpace(target) == "" {
			continue
		}
		urls = append(urls, probe.NormalizeURL(target))
	}
	if len(urls) == 0 {
		return ErrNoURLs
	}

	for i, url := range urls {
		logrus.Infof("Probing %s (%d/%d)", url, i+1, len(urls))
		if err := d.presenter.URL(url); err != nil {
			return err
		}
		if err := d.presenter.Results(d.prober.Probe(url)); err != nil {
			return err
		}
	}
	return nil
}
