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

// Package log configures the global logrus logger.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is the log level used when none is given.
const DefaultLevel = "info"

// SetupGlobalLogger sets the global logrus logger to the given level and
// sends its output to stderr, keeping stdout free for results.
func SetupGlobalLogger(level string) error {
	return setup(logrus.StandardLogger(), level, os.Stderr)
}

func setup(logger *logrus.Logger, level string, out io.Writer) error {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}

	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if lvl >= logrus.DebugLevel {
		logger.Debug("Setting log level to " + lvl.String())
	}
	return nil
}
