// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// last resort logger channel, nil until Initialise
var log *logger.L

// Initialise - setup a log channel for a last attempt to log
// something before a panic
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string prefixed with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message and panic with it
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	criticalf(2, "%s", message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", message, err)
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		format = "(%q:%d) " + format
		arguments = a
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
