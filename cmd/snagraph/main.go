// SPDX-License-Identifier: MIT

// Command snagraph runs social network analyses over a YAML or TOML graph
// snapshot and prints the results as tables.
//
//	snagraph prominence net.yaml --index BC,CC
//	snagraph distances net.yaml --weights --inverted
//	snagraph cluster net.yaml --measure pearson --linkage average --cut 3
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
