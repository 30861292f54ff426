// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "github.com/holiman/uint256"

// wordSize is the width in bytes of a single ABI static slot.
const wordSize = 32

// word returns the 32-byte big-endian word starting at pos, or nil if data
// doesn't extend that far.
func word(data []byte, pos int) []byte {
	if pos < 0 || pos+wordSize > len(data) {
		return nil
	}
	return data[pos : pos+wordSize]
}

// leadingZeros counts the zero bytes from the start of b up to the first
// non-zero byte, or len(b) if b is entirely zero.
func leadingZeros(b []byte) int {
	for i, c := range b {
		if c != 0 {
			return i
		}
	}
	return len(b)
}

// trailingZeros counts the zero bytes from the end of b back to the first
// non-zero byte, or len(b) if b is entirely zero.
func trailingZeros(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return len(b) - 1 - i
		}
	}
	return len(b)
}

// safeUint64 interprets a 32-byte big-endian word as an unsigned integer,
// succeeding only if the value fits a uint64. This stands in for the
// "safe integer" notion of spec (values below 2^53-1 in the original
// double-precision-float source): a native 64-bit reimplementation may use
// any bound below the buffer length without changing observable behavior,
// and no ABI offset or length in a well-formed, in-buffer-bounds layout can
// ever require more than 64 bits.
func safeUint64(w []byte) (uint64, bool) {
	if len(w) != wordSize {
		return 0, false
	}
	var arr [32]byte
	copy(arr[:], w)
	v := new(uint256.Int).SetBytes32(&arr)
	if !v.IsUint64() {
		return 0, false
	}
	return v.Uint64(), true
}
