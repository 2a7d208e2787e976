// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
)

// Key - the key type of script trees
type Key int64

// Compare - key ordering for the tree
func (k Key) Compare(j Key) int {
	switch {
	case k < j:
		return -1
	case k > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k Key) String() string {
	return strconv.FormatInt(int64(k), 10)
}

// ParseKey - convert decimal or 0x prefixed hex text to a key
func ParseKey(s string) (Key, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if nil != err {
		return 0, fmt.Errorf("%q: %w", s, fault.ErrInvalidKey)
	}
	return Key(n), nil
}
