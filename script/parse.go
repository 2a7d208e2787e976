// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/avltree/fault"
)

// Opcode - identifies an operation
type Opcode int

// all operations
const (
	OpInsert Opcode = iota
	OpDelete
	OpSearch
	OpPredecessor
	OpSuccessor
	OpRank
	OpPosition
	OpCount
	OpHeight
	OpCheck
	OpPrint
)

// argument limits, unlimited is -1
type syntax struct {
	code     Opcode
	minimum  int
	maximum  int
	mutating bool
}

var operations = map[string]syntax{
	"insert":      {OpInsert, 1, -1, true},
	"delete":      {OpDelete, 1, -1, true},
	"search":      {OpSearch, 1, 1, false},
	"predecessor": {OpPredecessor, 1, 1, false},
	"pred":        {OpPredecessor, 1, 1, false},
	"successor":   {OpSuccessor, 1, 1, false},
	"succ":        {OpSuccessor, 1, 1, false},
	"rank":        {OpRank, 1, 1, false},
	"select":      {OpRank, 1, 1, false},
	"position":    {OpPosition, 1, 1, false},
	"count":       {OpCount, 0, 0, false},
	"height":      {OpHeight, 0, 0, false},
	"check":       {OpCheck, 0, 0, false},
	"print":       {OpPrint, 0, 0, false},
}

// the canonical name of each opcode
var names = map[Opcode]string{
	OpInsert:      "insert",
	OpDelete:      "delete",
	OpSearch:      "search",
	OpPredecessor: "predecessor",
	OpSuccessor:   "successor",
	OpRank:        "rank",
	OpPosition:    "position",
	OpCount:       "count",
	OpHeight:      "height",
	OpCheck:       "check",
	OpPrint:       "print",
}

// String - canonical operation name
func (op Opcode) String() string {
	if s, ok := names[op]; ok {
		return s
	}
	return fmt.Sprintf("opcode(%d)", int(op))
}

// Operation - one parsed script line
type Operation struct {
	Line      int
	Code      Opcode
	Arguments []Key
}

// Name - canonical name of the operation
func (op Operation) Name() string {
	return op.Code.String()
}

// Mutating - true if the operation can change the tree
func (op Operation) Mutating() bool {
	return operations[op.Name()].mutating
}

// Parse - read a complete script
//
// the first bad line stops parsing and the error carries its line
// number
func Parse(r io.Reader) ([]Operation, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true

	ops := make([]Operation, 0, 16)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line += 1
		op, ok, err := parseLine(parser, line, scanner.Text())
		if nil != err {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return ops, nil
}

// ParseLine - parse a single line as line number 1
//
// ok is false for blank and comment lines
func ParseLine(text string) (op Operation, ok bool, err error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true
	return parseLine(parser, 1, text)
}

func parseLine(parser *shellwords.Parser, line int, text string) (Operation, bool, error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	words, err := parser.Parse(text)
	if nil != err {
		return Operation{}, false, err
	}
	if 0 == len(words) {
		return Operation{}, false, nil
	}

	name := strings.ToLower(words[0])
	s, ok := operations[name]
	if !ok {
		return Operation{}, false, fmt.Errorf("%q: %w", words[0], fault.ErrUnknownOperation)
	}

	words = words[1:]
	if len(words) < s.minimum {
		return Operation{}, false, fmt.Errorf("%s: %w", name, fault.ErrMissingArgument)
	}
	if s.maximum >= 0 && len(words) > s.maximum {
		return Operation{}, false, fmt.Errorf("%s: %w", name, fault.ErrTooManyArguments)
	}

	op := Operation{
		Line:      line,
		Code:      s.code,
		Arguments: make([]Key, 0, len(words)),
	}
	for _, w := range words {
		k, err := ParseKey(w)
		if nil != err {
			return Operation{}, false, fmt.Errorf("%s: %w", name, err)
		}
		op.Arguments = append(op.Arguments, k)
	}
	return op, true, nil
}
