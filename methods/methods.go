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

// Package methods holds the catalog of HTTP methods sent to every target.
//
// The catalog mixes the RFC 9110 methods with WebDAV (RFC 4918, RFC 3253,
// RFC 3744, RFC 5323), CalDAV, binding and link extensions, cache purge
// verbs and a couple of tokens no server should accept.
package methods

// Count is the number of methods in the catalog.
const Count = 44

const (
	VersionControl  = "VERSION-CONTROL"
	BaselineControl = "BASELINE-CONTROL"
	// Arbitrary is not a registered method. Servers that answer it with
	// anything other than 405 or 501 usually ignore the method entirely.
	Arbitrary = "ARBITRARY"
)

var catalog = [Count]string{
	"OPTIONS", "GET", "HEAD", "POST", "PUT", "DELETE", "TRACE", "TRACK",
	"DEBUG", "PURGE", "CONNECT", "PROPFIND", "PROPPATCH", "MKCOL", "COPY",
	"MOVE", "LOCK", "UNLOCK", VersionControl, "REPORT", "CHECKOUT", "CHECKIN",
	"UNCHECKOUT", "MKWORKSPACE", "UPDATE", "LABEL", "MERGE", BaselineControl,
	"MKACTIVITY", "ORDERPATCH", "ACL", "PATCH", "SEARCH", Arbitrary, "BIND",
	"LINK", "MKCALENDAR", "MKREDIRECTREF", "PRI", "QUERY", "REBIND", "UNBIND",
	"UNLINK", "UPDATEREDIRECTREF",
}

// All returns the method catalog in probing order. The returned slice is a
// copy and may be modified by the caller.
func All() []string {
	out := make([]string, Count)
	copy(out, catalog[:])
	return out
}
