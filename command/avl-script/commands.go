// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup commands
// these are performed before the configuration is read
func processSetupCommand(program string, command string) {

	switch command {
	case "version":
		fmt.Printf("%s\n", version)

	default:
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--check] [--stop-on-error] [--json] [--config-file=FILE] [SCRIPT...]\n", program)
		fmt.Printf("\n")
		fmt.Printf("  run each SCRIPT (or standard input) against one order statistic tree\n")
		fmt.Printf("\n")
		fmt.Printf("options:\n\n")
		fmt.Printf("  --help           (-h)  - display this message\n")
		fmt.Printf("  --version        (-V)  - display version string\n")
		fmt.Printf("  --verbose        (-v)  - print trees with heights, balance and weights\n")
		fmt.Printf("  --quiet          (-q)  - suppress results, only set the exit status\n")
		fmt.Printf("  --check          (-k)  - verify the whole tree after every change\n")
		fmt.Printf("  --stop-on-error  (-e)  - abort at the first rejected operation\n")
		fmt.Printf("  --json           (-j)  - one JSON object per result\n")
		fmt.Printf("  --config-file    (-c)  - Lua configuration file\n")
		fmt.Printf("\n")
		fmt.Printf("script operations:\n\n")
		fmt.Printf("  insert KEY...              - add keys, duplicates are rejected\n")
		fmt.Printf("  delete KEY...              - remove keys\n")
		fmt.Printf("  search KEY                 - report whether a key is present\n")
		fmt.Printf("  predecessor KEY    (pred)  - next smaller key\n")
		fmt.Printf("  successor KEY      (succ)  - next larger key\n")
		fmt.Printf("  rank N             (select)- key of one based rank N\n")
		fmt.Printf("  position KEY               - rank of a key, zero if absent\n")
		fmt.Printf("  count                      - number of keys\n")
		fmt.Printf("  height                     - height of the tree\n")
		fmt.Printf("  check                      - verify the tree structure\n")
		fmt.Printf("  print                      - draw the tree\n")
		fmt.Printf("\n")
	}
}
