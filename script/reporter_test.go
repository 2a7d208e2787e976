// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/script"
)

var reported = []script.Result{
	{Line: 1, Operation: "insert", Argument: key(5), Value: 1},
	{Line: 1, Operation: "insert", Argument: key(5), Value: 1, Error: "duplicate key"},
	{Line: 2, Operation: "delete", Argument: key(6), Value: 1},
	{Line: 3, Operation: "successor", Argument: key(1), Found: true, Key: key(5)},
	{Line: 4, Operation: "rank", Argument: key(2)},
	{Line: 5, Operation: "count", Value: 1},
	{Line: 6, Operation: "check", Found: true},
}

func TestTextReporter(t *testing.T) {
	var b bytes.Buffer
	r := script.NewTextReporter(&b)
	for _, item := range reported {
		r.Report(item)
	}
	r.Display("|------+ 5\n")

	expected := `1: insert 5: ok
1: insert 5: error: duplicate key
2: delete 6: absent
3: successor 1: 5
4: rank 2: none
5: count: 1
6: check: ok
|------+ 5
`
	assert.Equal(t, expected, b.String())
}

func TestJSONReporter(t *testing.T) {
	var b bytes.Buffer
	r := script.NewJSONReporter(&b)
	r.Report(reported[1])
	r.Report(reported[3])
	r.Report(reported[5])
	r.Display("x\n")

	expected := `{"line":1,"operation":"insert","argument":5,"found":false,"value":1,"error":"duplicate key"}
{"line":3,"operation":"successor","argument":1,"found":true,"key":5,"value":0}
{"line":5,"operation":"count","found":false,"value":1}
{"display":"x\n"}
`
	assert.Equal(t, expected, b.String())
}
