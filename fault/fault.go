// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDuplicateKey          = ExistsError("duplicate key")
	ErrEmptyTree             = NotFoundError("tree is empty")
	ErrInconsistentCount     = ProcessError("inconsistent node count")
	ErrInconsistentHeight    = ProcessError("inconsistent node height")
	ErrInconsistentParent    = ProcessError("inconsistent parent link")
	ErrInconsistentWeight    = ProcessError("inconsistent subtree weight")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRank           = InvalidError("invalid rank")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingArgument       = InvalidError("missing argument")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrOutOfOrder            = ProcessError("keys out of order")
	ErrTooManyArguments      = InvalidError("too many arguments")
	ErrUnbalanced            = ProcessError("subtree heights differ by more than one")
	ErrUnknownOperation      = InvalidError("unknown operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
