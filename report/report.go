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

// Package report prints probe results as ANSI colored text.
package report

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"

	"sigs.k8s.io/method-prober/probe"
)

// Class is the status class a result is colored by.
type Class int

const (
	Default Class = iota
	Success
	Redirect
	ClientError
	ServerError
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case Success:
		return "success"
	case Redirect:
		return "redirect"
	case ClientError:
		return "client-error"
	case ServerError:
		return "server-error"
	default:
		return "default"
	}
}

// Classify returns the class of an outcome from the leading digit of its
// status code. Network errors are always Default.
func Classify(o probe.Outcome) Class {
	if o.Failed() {
		return Default
	}
	switch o.StatusCode / 100 {
	case 2:
		return Success
	case 3:
		return Redirect
	case 4:
		return ClientError
	case 5:
		return ServerError
	default:
		return Default
	}
}

var classAttributes = map[Class]color.Attribute{
	Success:     color.FgGreen,
	Redirect:    color.FgBlue,
	ClientError: color.FgRed,
	ServerError: color.FgYellow,
	Default:     color.FgWhite,
}

const (
	bannerText = "HTTPC"
	bannerFont = "slant"
)

// Presenter writes colored probe output to a writer.
type Presenter struct {
	w       io.Writer
	classes map[Class]*color.Color
	url     *color.Color
	banner  *color.Color
	author  *color.Color
}

// NewPresenter returns a presenter writing to w. Colors are always emitted,
// even when w is not a terminal.
func NewPresenter(w io.Writer) *Presenter {
	p := &Presenter{
		w:       w,
		classes: make(map[Class]*color.Color, len(classAttributes)),
		url:     forced(color.FgBlue),
		banner:  forced(color.FgHiBlue),
		author:  forced(color.FgHiMagenta),
	}
	for class, attr := range classAttributes {
		p.classes[class] = forced(attr)
	}
	return p
}

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Banner prints the tool banner.
func (p *Presenter) Banner() error {
	fig := figure.NewFigure(bannerText, bannerFont, true)
	if _, err := p.banner.Fprintln(p.w, fig.String()); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}
	if _, err := p.author.Fprintln(p.w, "HTTP method prober"); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}
	return nil
}

// URL prints the header shown before the results of a target.
func (p *Presenter) URL(url string) error {
	if _, err := fmt.Fprintf(p.w, "(+) URL: %s\n", p.url.Sprint(url)); err != nil {
		return fmt.Errorf("writing URL header: %w", err)
	}
	return nil
}

// Result prints a single result line colored by its status class.
func (p *Presenter) Result(r probe.Result) error {
	c := p.classes[Classify(r.Outcome)]
	if _, err := fmt.Fprintln(p.w, c.Sprintf("[%s]  %s", r.Method, r.String())); err != nil {
		return fmt.Errorf("writing %s result: %w", r.Method, err)
	}
	return nil
}

// Results prints results in the order given.
func (p *Presenter) Results(results []probe.Result) error {
	for i := range results {
		if err := p.Result(results[i]); err != nil {
			return err
		}
	}
	return nil
}
