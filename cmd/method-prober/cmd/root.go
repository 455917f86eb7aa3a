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
	"errors"
	"fmt"
	"io"

	"github.com/moby/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sigs.k8s.io/method-prober/batch"
	"sigs.k8s.io/method-prober/log"
	"sigs.k8s.io/method-prober/probe"
	"sigs.k8s.io/method-prober/report"
)

const noURLsMessage = "No URLs provided."

type options struct {
	url      string
	logLevel string
}

// New returns the root command of the method prober.
func New() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "method-prober [URL]",
		Short: "Probe an HTTP server with every method in the catalog",
		Long: `method-prober sends one request per HTTP method (standard, WebDAV and
extension methods) to a target and prints the status code of each one,
colored by status class.

The target is taken from --url, from the first argument or, when neither is
given, read one per line from standard input.`,
		Example: `  method-prober --url https://example.com
  method-prober example.com/api
  cat targets.txt | method-prober`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return log.SetupGlobalLogger(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(
		&opts.url,
		"url",
		"",
		"single URL to probe",
	)
	cmd.PersistentFlags().StringVar(
		&opts.logLevel,
		"log-level",
		log.DefaultLevel,
		fmt.Sprintf("the logging verbosity, either %s", logLevels()),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return New().Execute()
}

// IsNoURLs reports whether err means there was nothing to probe.
func IsNoURLs(err error) bool {
	return errors.Is(err, batch.ErrNoURLs)
}

func run(opts *options, args []string, in io.Reader, out io.Writer) error {
	if opts.url != "" && len(args) > 0 {
		return fmt.Errorf("target given both as --url %q and argument %q", opts.url, args[0])
	}

	presenter := report.NewPresenter(out)
	if err := presenter.Banner(); err != nil {
		return err
	}

	targets, err := targetsFrom(opts, args, in)
	if err != nil {
		return err
	}

	prober := probe.NewProber()
	driver := batch.New(prober, presenter)
	if err := driver.Run(targets); err != nil {
		if IsNoURLs(err) {
			fmt.Fprintln(out, noURLsMessage)
		}
		return err
	}
	logrus.Debugf("Probed %d target(s) with %d methods each", len(targets), len(prober.Methods()))
	return nil
}

func targetsFrom(opts *options, args []string, in io.Reader) ([]string, error) {
	switch {
	case opts.url != "":
		return []string{opts.url}, nil
	case len(args) == 1:
		return args, nil
	}

	if _, isTerminal := term.GetFdInfo(in); isTerminal {
		logrus.Info("No URL given, reading targets from standard input (one per line)")
	}
	return batch.ReadTargets(in)
}

func logLevels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}
