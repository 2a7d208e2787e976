// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avltree/script"
)

// parsed scripts, so a file named several times is only read once
// standard input is never cached
type scriptCache struct {
	parsed *cache.Cache
}

func newScriptCache() *scriptCache {
	return &scriptCache{
		parsed: cache.New(cache.NoExpiration, 0),
	}
}

func (s *scriptCache) load(fileName string) ([]script.Operation, error) {
	if "-" == fileName {
		return script.Parse(os.Stdin)
	}

	name, err := filepath.Abs(fileName)
	if nil != err {
		return nil, err
	}
	if ops, ok := s.parsed.Get(name); ok {
		return ops.([]script.Operation), nil
	}

	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	ops, err := script.Parse(f)
	if nil != err {
		return nil, err
	}
	s.parsed.Set(name, ops, cache.NoExpiration)
	return ops, nil
}

func (s *scriptCache) count() int {
	return s.parsed.ItemCount()
}
