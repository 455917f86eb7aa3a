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

package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/method-prober/methods"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestRootSingleURL(t *testing.T) {
	server := newServer(t)

	for name, args := range map[string][]string{
		"flag":       {"--url", server.URL},
		"positional": {server.URL},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "", args...)
			require.NoError(t, err)
			require.Contains(t, out, "HTTP method prober")
			require.Equal(t, 1, strings.Count(out, "(+) URL: "))
			require.Contains(t, out, server.URL)
			require.Contains(t, out, "[GET]  200")
			require.Contains(t, out, "[PROPFIND]  405")
		})
	}
}

func TestRootBatchFromStdin(t *testing.T) {
	server := newServer(t)

	out, err := execute(t, server.URL+"\n\n"+server.URL+"/other\n")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "(+) URL: "))
	require.Equal(t, 2, strings.Count(out, "[GET]  200"))
	require.Equal(t, 2, strings.Count(out, "[PROPFIND]  405"))
	for _, method := range methods.All() {
		require.Equal(t, 2, strings.Count(out, "["+method+"]  "), "method %s", method)
	}
}

func TestRootNoURLs(t *testing.T) {
	for name, tc := range map[string]struct {
		stdin string
		args  []string
	}{
		"empty-stdin":      {"", nil},
		"blank-stdin":      {"\n \n", nil},
		"blank-positional": {"", []string{"  "}},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.stdin, tc.args...)
			require.Error(t, err)
			require.True(t, IsNoURLs(err))
			require.Contains(t, out, noURLsMessage)
			require.NotContains(t, out, "(+) URL: ")
		})
	}
}

func TestRootUsageErrors(t *testing.T) {
	for name, args := range map[string][]string{
		"two-positionals": {"a.com", "b.com"},
		"flag-and-arg":    {"--url", "a.com", "b.com"},
		"bad-log-level":   {"--log-level", "loud", "a.com"},
		"unknown-flag":    {"--method", "GET", "a.com"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "", args...)
			require.Error(t, err)
			require.False(t, IsNoURLs(err))
		})
	}
}

func TestLogLevels(t *testing.T) {
	require.Contains(t, logLevels(), "debug")
	require.Contains(t, logLevels(), "info")
}
