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

package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/method-prober/probe"
	"sigs.k8s.io/method-prober/report"
)

const reset = "\x1b[0m"

func TestClassify(t *testing.T) {
	for name, tc := range map[string]struct {
		outcome  probe.Outcome
		expected report.Class
	}{
		"ok":              {probe.Outcome{StatusCode: 200}, report.Success},
		"multi-status":    {probe.Outcome{StatusCode: 207}, report.Success},
		"moved":           {probe.Outcome{StatusCode: 301}, report.Redirect},
		"not-found":       {probe.Outcome{StatusCode: 404}, report.ClientError},
		"not-allowed":     {probe.Outcome{StatusCode: 405}, report.ClientError},
		"unavailable":     {probe.Outcome{StatusCode: 503}, report.ServerError},
		"informational":   {probe.Outcome{StatusCode: 101}, report.Default},
		"out-of-range":    {probe.Outcome{StatusCode: 600}, report.Default},
		"network-error":   {probe.Outcome{Err: errors.New("connection refused")}, report.Default},
		"error-with-code": {probe.Outcome{StatusCode: 200, Err: errors.New("x")}, report.Default},
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, report.Classify(tc.outcome))
		})
	}
}

func TestClassString(t *testing.T) {
	require.Equal(t, "success", report.Success.String())
	require.Equal(t, "redirect", report.Redirect.String())
	require.Equal(t, "client-error", report.ClientError.String())
	require.Equal(t, "server-error", report.ServerError.String())
	require.Equal(t, "default", report.Default.String())
}

func TestResult(t *testing.T) {
	for name, tc := range map[string]struct {
		result   probe.Result
		expected string
	}{
		"success": {
			probe.Result{Method: "GET", Outcome: probe.Outcome{StatusCode: 200}},
			"\x1b[32m[GET]  200" + reset + "\n",
		},
		"redirect": {
			probe.Result{Method: "MOVE", Outcome: probe.Outcome{StatusCode: 301}},
			"\x1b[34m[MOVE]  301" + reset + "\n",
		},
		"client-error": {
			probe.Result{Method: "PUT", Outcome: probe.Outcome{StatusCode: 404}},
			"\x1b[31m[PUT]  404" + reset + "\n",
		},
		"server-error": {
			probe.Result{Method: "PRI", Outcome: probe.Outcome{StatusCode: 503}},
			"\x1b[33m[PRI]  503" + reset + "\n",
		},
		"network-error": {
			probe.Result{Method: "GET", Outcome: probe.Outcome{Err: errors.New("connection refused")}},
			"\x1b[37m[GET]  Error occurred with GET request: connection refused" + reset + "\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.NewPresenter(&buf).Result(tc.result))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestResultsKeepOrder(t *testing.T) {
	var buf bytes.Buffer
	results := []probe.Result{
		{Method: "OPTIONS", Outcome: probe.Outcome{StatusCode: 204}},
		{Method: "GET", Outcome: probe.Outcome{StatusCode: 200}},
		{Method: "HEAD", Outcome: probe.Outcome{StatusCode: 500}},
	}
	require.NoError(t, report.NewPresenter(&buf).Results(results))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "[OPTIONS]  204")
	require.Contains(t, lines[1], "[GET]  200")
	require.Contains(t, lines[2], "[HEAD]  500")
}

func TestURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewPresenter(&buf).URL("https://example.com"))
	require.Equal(t, "(+) URL: \x1b[34mhttps://example.com"+reset+"\n", buf.String())
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewPresenter(&buf).Banner())
	require.True(t, strings.HasPrefix(buf.String(), "\x1b[94m"))
	require.Contains(t, buf.String(), "HTTP method prober")
	require.Greater(t, strings.Count(buf.String(), "\n"), 3)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteErrors(t *testing.T) {
	p := report.NewPresenter(failingWriter{})
	require.ErrorContains(t, p.URL("https://example.com"), "closed pipe")
	require.ErrorContains(t, p.Banner(), "writing banner")
	require.ErrorContains(t, p.Results([]probe.Result{{Method: "GET"}}), "writing GET result")
}
