// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result - outcome of one operation on one argument
type Result struct {
	Line      int    `json:"line"`
	Operation string `json:"operation"`
	Argument  *Key   `json:"argument,omitempty"`
	Found     bool   `json:"found"`
	Key       *Key   `json:"key,omitempty"`
	Value     int    `json:"value"`
	Error     string `json:"error,omitempty"`
}

// Failed - true if the operation was rejected
func (r Result) Failed() bool {
	return "" != r.Error
}

//go:generate mockgen -source=reporter.go -destination=mocks/reporter.go -package=mocks

// Reporter - receives the results of a run
type Reporter interface {
	Report(result Result)
	Display(text string)
}

// NewTextReporter - one human readable line per result
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

// NewJSONReporter - one JSON object per line
func NewJSONReporter(w io.Writer) Reporter {
	return &jsonReporter{encoder: json.NewEncoder(w)}
}

type textReporter struct {
	w io.Writer
}

func (t *textReporter) Report(r Result) {
	prefix := fmt.Sprintf("%d: %s", r.Line, r.Operation)
	if nil != r.Argument {
		prefix += " " + r.Argument.String()
	}

	if r.Failed() {
		fmt.Fprintf(t.w, "%s: error: %s\n", prefix, r.Error)
		return
	}

	switch r.Operation {
	case names[OpInsert], names[OpCheck]:
		fmt.Fprintf(t.w, "%s: ok\n", prefix)
	case names[OpDelete]:
		if r.Found {
			fmt.Fprintf(t.w, "%s: removed\n", prefix)
		} else {
			fmt.Fprintf(t.w, "%s: absent\n", prefix)
		}
	case names[OpCount], names[OpHeight], names[OpPosition]:
		fmt.Fprintf(t.w, "%s: %d\n", prefix, r.Value)
	default:
		if r.Found && nil != r.Key {
			fmt.Fprintf(t.w, "%s: %s\n", prefix, r.Key)
		} else {
			fmt.Fprintf(t.w, "%s: none\n", prefix)
		}
	}
}

func (t *textReporter) Display(text string) {
	fmt.Fprint(t.w, text)
}

type jsonReporter struct {
	encoder *json.Encoder
}

func (j *jsonReporter) Report(r Result) {
	j.encoder.Encode(r)
}

// tree pictures are wrapped so every output line stays valid JSON
func (j *jsonReporter) Display(text string) {
	j.encoder.Encode(struct {
		Display string `json:"display"`
	}{
		Display: text,
	})
}
