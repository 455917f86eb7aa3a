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

/*
Package http provides a configurable agent to send requests with arbitrary
methods to http servers.

# Single Requests

Request sends one request with any method token, registered or not, and
returns the raw http.Response:

	resp, err := http.NewAgent().Request("PROPFIND", "https://example.com/")

No body is sent and the response body is left to the caller.

# Group Requests

RequestGroup takes a list of methods and sends one request per method to the
same URL in parallel. The number of simultaneous requests can be controlled
with the .WithMaxParallel(int) option, it defaults to ten:

	# Create an HTTP agent that performs two requests at a time:
	agent := http.NewAgent().WithMaxParallel(2)

The group returns responses and errors in slices guaranteed to be of the same
length and order as the methods argument. Use CloseResponseGroup to release
the bodies once the responses have been inspected.
*/
package http
