// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/orderstat"
)

type keyNode = avl.Node[Key, orderstat.Weight[Key], *orderstat.Weight[Key]]

// Options - execution controls
type Options struct {
	CheckAfterEach bool // verify the whole tree after every change
	StopOnError    bool // abort at the first rejected operation
	Verbose        bool // print trees with heights, balance and weights
}

// Summary - totals for a run
type Summary struct {
	Operations int
	Failures   int
}

// Executor - applies operations to one order statistic tree
type Executor struct {
	log      *logger.L
	reporter Reporter
	options  Options
	tree     *orderstat.Tree[Key]
}

// NewExecutor - create an executor with an empty tree
func NewExecutor(reporter Reporter, log *logger.L, options Options) (*Executor, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Executor{
		log:      log,
		reporter: reporter,
		options:  options,
		tree:     orderstat.New[Key](),
	}, nil
}

// Tree - the tree being operated on
func (e *Executor) Tree() *orderstat.Tree[Key] {
	return e.tree
}

// Run - execute operations in order
//
// rejected operations are reported as failed results; a nil error with
// non-zero Failures means the run completed in spite of them.  A
// structural failure detected by CheckAfterEach always aborts.
func (e *Executor) Run(ops []Operation) (Summary, error) {
	summary := Summary{}
	for _, op := range ops {
		summary.Operations += 1
		failures, err := e.execute(op)
		summary.Failures += failures
		if nil != err {
			e.log.Errorf("line: %d  %s aborted: %s", op.Line, op.Name(), err)
			return summary, err
		}
	}
	e.log.Infof("operations: %d  failures: %d  count: %d  height: %d", summary.Operations, summary.Failures, e.tree.Count(), e.tree.Height())
	return summary, nil
}

// execute one line, which may carry several keys
func (e *Executor) execute(op Operation) (int, error) {
	e.log.Debugf("line: %d  %s %v", op.Line, op.Name(), op.Arguments)

	if OpPrint == op.Code {
		var b bytes.Buffer
		e.tree.Print(&b, e.options.Verbose)
		e.reporter.Display(b.String())
		return 0, nil
	}

	if 0 == len(op.Arguments) {
		r, opErr := e.apply(op, nil)
		return e.finish(op, r, opErr)
	}

	failures := 0
	for i := range op.Arguments {
		k := op.Arguments[i]
		r, opErr := e.apply(op, &k)
		n, err := e.finish(op, r, opErr)
		failures += n
		if nil != err {
			return failures, err
		}
	}
	return failures, nil
}

// report a result and decide whether execution continues
func (e *Executor) finish(op Operation, r Result, opErr error) (int, error) {
	e.reporter.Report(r)

	if nil != opErr {
		e.log.Warnf("line: %d  %s rejected: %s", op.Line, op.Name(), opErr)
		if e.options.StopOnError {
			return 1, fmt.Errorf("line %d: %s: %w", op.Line, op.Name(), opErr)
		}
		return 1, nil
	}

	if e.options.CheckAfterEach && op.Mutating() {
		if err := e.check(); nil != err {
			return 0, fmt.Errorf("line %d: %s: %w", op.Line, op.Name(), err)
		}
	}
	return 0, nil
}

func (e *Executor) check() error {
	if err := e.tree.Check(); nil != err {
		return err
	}
	return e.tree.CheckWeights()
}

// apply an operation to a single argument, nil for operations without one
func (e *Executor) apply(op Operation, k *Key) (Result, error) {
	r := Result{
		Line:      op.Line,
		Operation: op.Name(),
		Argument:  k,
	}

	var n *keyNode
	var err error
	switch op.Code {

	case OpInsert:
		err = e.tree.Insert(*k)
		r.Value = e.tree.Count()

	case OpDelete:
		r.Found, err = e.tree.Delete(*k)
		r.Value = e.tree.Count()

	case OpSearch:
		n, err = e.tree.Search(*k)

	case OpPredecessor:
		n, err = e.tree.Predecessor(*k)

	case OpSuccessor:
		n, err = e.tree.Successor(*k)

	case OpRank:
		if *k < 1 {
			err = fmt.Errorf("rank: %d: %w", *k, fault.ErrInvalidRank)
			break
		}
		n, err = e.tree.Select(int(*k))

	case OpPosition:
		r.Value, err = e.tree.RankOf(*k)
		r.Found = r.Value > 0

	case OpCount:
		r.Value = e.tree.Count()

	case OpHeight:
		r.Value = e.tree.Height()

	case OpCheck:
		err = e.check()
		r.Found = nil == err

	default:
		err = fmt.Errorf("%s: %w", op.Name(), fault.ErrUnknownOperation)
	}

	if nil != n {
		r.Found, r.Key = true, keyOf(n.Key())
	}
	if nil != err {
		r.Error = err.Error()
	}
	return r, err
}

func keyOf(k Key) *Key {
	return &k
}
