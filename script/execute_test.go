// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/script/mocks"
)

func key(k script.Key) *script.Key {
	return &k
}

func mustParse(t *testing.T, text string) []script.Operation {
	ops, err := script.Parse(strings.NewReader(text))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	return ops
}

func TestNewExecutorWithoutLogger(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := script.NewExecutor(mocks.NewMockReporter(ctl), nil, script.Options{})
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)
}

func TestRunScenario(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockReporter(ctl)
	defer ctl.Finish()

	ops := mustParse(t, `insert 1 3 4 5 2 100 20 13
rank 3
position 20
delete 4
search 4
predecessor 5
successor 13
count
height
check
print
`)

	var calls []*gomock.Call
	for i, k := range []script.Key{1, 3, 4, 5, 2, 100, 20, 13} {
		calls = append(calls, m.EXPECT().Report(script.Result{Line: 1, Operation: "insert", Argument: key(k), Value: i + 1}))
	}
	calls = append(calls,
		m.EXPECT().Report(script.Result{Line: 2, Operation: "rank", Argument: key(3), Found: true, Key: key(3)}),
		m.EXPECT().Report(script.Result{Line: 3, Operation: "position", Argument: key(20), Found: true, Value: 7}),
		m.EXPECT().Report(script.Result{Line: 4, Operation: "delete", Argument: key(4), Found: true, Value: 7}),
		m.EXPECT().Report(script.Result{Line: 5, Operation: "search", Argument: key(4)}),
		m.EXPECT().Report(script.Result{Line: 6, Operation: "predecessor", Argument: key(5), Found: true, Key: key(3)}),
		m.EXPECT().Report(script.Result{Line: 7, Operation: "successor", Argument: key(13), Found: true, Key: key(20)}),
		m.EXPECT().Report(script.Result{Line: 8, Operation: "count", Value: 7}),
		m.EXPECT().Report(script.Result{Line: 9, Operation: "height", Value: 4}),
		m.EXPECT().Report(script.Result{Line: 10, Operation: "check", Found: true}),
		m.EXPECT().Display(gomock.Any()).Times(1),
	)
	gomock.InOrder(calls...)

	e, err := script.NewExecutor(m, logger.New(category), script.Options{CheckAfterEach: true})
	if !assert.NoError(t, err) {
		return
	}
	summary, err := e.Run(ops)
	assert.NoError(t, err)
	assert.Equal(t, script.Summary{Operations: 11, Failures: 0}, summary)
	assert.Equal(t, 7, e.Tree().Count())
	assert.NoError(t, e.Tree().CheckWeights())
}

func TestRunContinuesAfterFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockReporter(ctl)
	defer ctl.Finish()

	ops := mustParse(t, "search 1\ninsert 1 1 2\nrank 0\nrank 3\n")

	gomock.InOrder(
		m.EXPECT().Report(script.Result{Line: 1, Operation: "search", Argument: key(1), Error: "tree is empty"}),
		m.EXPECT().Report(script.Result{Line: 2, Operation: "insert", Argument: key(1), Value: 1}),
		m.EXPECT().Report(script.Result{Line: 2, Operation: "insert", Argument: key(1), Value: 1, Error: "duplicate key"}),
		m.EXPECT().Report(script.Result{Line: 2, Operation: "insert", Argument: key(2), Value: 2}),
		m.EXPECT().Report(script.Result{Line: 3, Operation: "rank", Argument: key(0), Error: "rank: 0: invalid rank"}),
		m.EXPECT().Report(script.Result{Line: 4, Operation: "rank", Argument: key(3)}),
	)

	e, _ := script.NewExecutor(m, logger.New(category), script.Options{})
	summary, err := e.Run(ops)
	assert.NoError(t, err)
	assert.Equal(t, script.Summary{Operations: 4, Failures: 3}, summary)
}

func TestRunStopOnError(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockReporter(ctl)
	defer ctl.Finish()

	ops := mustParse(t, "insert 1 1 2\ncount\n")

	gomock.InOrder(
		m.EXPECT().Report(script.Result{Line: 1, Operation: "insert", Argument: key(1), Value: 1}),
		m.EXPECT().Report(script.Result{Line: 1, Operation: "insert", Argument: key(1), Value: 1, Error: "duplicate key"}),
	)

	e, _ := script.NewExecutor(m, logger.New(category), script.Options{StopOnError: true})
	summary, err := e.Run(ops)
	assert.True(t, errors.Is(err, fault.ErrDuplicateKey), "error: %v", err)
	assert.True(t, fault.IsErrExists(err))
	assert.Equal(t, "line 1: insert: duplicate key", err.Error())
	assert.Equal(t, script.Summary{Operations: 1, Failures: 1}, summary)
	assert.Equal(t, 1, e.Tree().Count())
}

func TestRunDeleteAbsent(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockReporter(ctl)
	defer ctl.Finish()

	gomock.InOrder(
		m.EXPECT().Report(script.Result{Line: 1, Operation: "insert", Argument: key(10), Value: 1}),
		m.EXPECT().Report(script.Result{Line: 2, Operation: "delete", Argument: key(11), Value: 1}),
		m.EXPECT().Report(script.Result{Line: 3, Operation: "position", Argument: key(11)}),
		m.EXPECT().Report(script.Result{Line: 4, Operation: "delete", Argument: key(10), Found: true}),
		m.EXPECT().Report(script.Result{Line: 5, Operation: "delete", Argument: key(10), Error: "tree is empty"}),
	)

	e, _ := script.NewExecutor(m, logger.New(category), script.Options{CheckAfterEach: true})
	summary, err := e.Run(mustParse(t, "insert 10\ndelete 11\nposition 11\ndelete 10\ndelete 10\n"))
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Failures)
	assert.True(t, e.Tree().IsEmpty())
}
