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

package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/method-prober/cmd/method-prober/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.IsNoURLs(err) {
			logrus.Error(err)
		}
		os.Exit(1)
	}
}
