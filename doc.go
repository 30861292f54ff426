// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package abiguess infers the parameter type signature of an opaque blob of
// ABI-encoded data (as used by Ethereum-style contract calls) when no
// signature is known ahead of time.
//
// Given raw calldata bytes, [GuessABIEncodedData] searches the space of type
// lists consistent with a well-formed ABI layout and returns one, chosen by
// a stated preference order, such that decoding the bytes against it
// produces a coherent value. Given 4-byte-selector-prefixed calldata,
// [GuessFragment] does the same and wraps the result in a synthetic function
// fragment named guessed_<selector>.
//
// The package does not implement its own ABI codec or type model: both are
// supplied by github.com/ethereum/go-ethereum/accounts/abi, which this
// package treats as a trusted, side-effect-free oracle. Decoding is a single
// recursive backtracking search with no concurrency, no I/O, and no shared
// state across calls.
package abiguess
