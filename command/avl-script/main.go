// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "stop-on-error", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, "version")
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, "help")
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line flags override the file
	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if len(options["check"]) > 0 {
		theConfiguration.CheckAfterEach = true
	}
	if len(options["stop-on-error"]) > 0 {
		theConfiguration.StopOnError = true
	}
	if len(options["json"]) > 0 {
		theConfiguration.JSON = true
	}
	if verbose {
		theConfiguration.VerbosePrint = true
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var output io.Writer = os.Stdout
	if quiet {
		output = ioutil.Discard
	}
	reporter := script.NewTextReporter(output)
	if theConfiguration.JSON {
		reporter = script.NewJSONReporter(output)
	}

	executor, err := script.NewExecutor(reporter, logger.New("script"), script.Options{
		CheckAfterEach: theConfiguration.CheckAfterEach,
		StopOnError:    theConfiguration.StopOnError,
		Verbose:        theConfiguration.VerbosePrint,
	})
	if nil != err {
		log.Criticalf("executor setup error: %s", err)
		exitwithstatus.Message("%s: executor setup error: %s", program, err)
	}

	if 0 == len(arguments) {
		arguments = []string{"-"}
	}

	scripts := newScriptCache()

	failures := 0
	for _, fileName := range arguments {
		summary, err := runFile(executor, scripts, fileName)
		failures += summary.Failures
		if nil != err {
			log.Errorf("file: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: %s: %s", program, fileName, err)
		}
		log.Infof("file: %q  operations: %d  failures: %d", fileName, summary.Operations, summary.Failures)
	}

	log.Debugf("distinct scripts: %d", scripts.count())

	if failures > 0 {
		log.Warnf("failures: %d", failures)
		exitwithstatus.Exit(1)
	}
}

// parse and run one script, "-" is standard input
func runFile(executor *script.Executor, scripts *scriptCache, fileName string) (script.Summary, error) {
	ops, err := scripts.load(fileName)
	if nil != err {
		return script.Summary{}, err
	}
	return executor.Run(ops)
}
