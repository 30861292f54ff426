// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command abiguess infers a parameter type list for undecoded calldata.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	abiguess "github.com/samczsun/abi-guesser-go"
)

func main() {
	selectorPrefixed := flag.Bool("fragment", true, "treat input as selector-prefixed calldata rather than a bare tuple payload")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-fragment=false] <hex calldata>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := decodeHex(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "abiguess:", err)
		os.Exit(1)
	}

	if *selectorPrefixed {
		fragment, err := abiguess.GuessFragment(data)
		if err != nil {
			reportAndExit(err)
		}
		fmt.Println(fragment.String())
		return
	}

	types, err := abiguess.GuessABIEncodedData(data)
	if err != nil {
		reportAndExit(err)
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	fmt.Printf("(%s)\n", strings.Join(parts, ","))
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func reportAndExit(err error) {
	if errors.Is(err, abiguess.ErrNoConsistentType) {
		fmt.Fprintln(os.Stderr, "abiguess: no consistent type list found")
	} else {
		fmt.Fprintln(os.Stderr, "abiguess:", err)
	}
	os.Exit(1)
}
