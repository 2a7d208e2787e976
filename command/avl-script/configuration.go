// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-script.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the program options
type Configuration struct {
	CheckAfterEach bool                 `gluamapper:"check_after_each" json:"check_after_each"`
	StopOnError    bool                 `gluamapper:"stop_on_error" json:"stop_on_error"`
	VerbosePrint   bool                 `gluamapper:"verbose_print" json:"verbose_print"`
	JSON           bool                 `gluamapper:"json" json:"json"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// with no file name the defaults are relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		CheckAfterEach: false,
		StopOnError:    false,
		VerbosePrint:   false,
		JSON:           false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// paths in the file are relative to its directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		variables := map[string]string{
			"config_directory": baseDirectory,
		}
		if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
			return nil, err
		}
	}

	options.Logging.Directory = configuration.EnsureAbsolute(baseDirectory, options.Logging.Directory)

	return options, nil
}
