// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

// tryParseOffset reads the word at pos and reports whether it could
// plausibly be a pointer into data's dynamic region: a safe integer, word
// aligned, strictly forward of pos, and strictly inside the buffer.
//
// This is a necessary condition, not a sufficient one — the caller treats
// both outcomes as branches to explore when permitted.
func tryParseOffset(data []byte, pos int) (offset int, ok bool) {
	w := word(data, pos)
	if w == nil {
		return 0, false
	}
	v, ok := safeUint64(w)
	if !ok || v > uint64(len(data)) {
		return 0, false
	}
	if v%wordSize != 0 {
		return 0, false
	}
	off := int(v)
	if !(pos < off && off < len(data)) {
		return 0, false
	}
	return off, true
}

// tryParseLength reads the word at offset and reports whether it could
// plausibly be the length prefix of a dynamic region starting there: a safe
// integer such that the implied payload still fits inside the buffer.
func tryParseLength(data []byte, offset int) (length int, ok bool) {
	w := word(data, offset)
	if w == nil {
		return 0, false
	}
	v, ok := safeUint64(w)
	if !ok || v > uint64(len(data)) {
		return 0, false
	}
	if offset+wordSize+int(v) > len(data) {
		return 0, false
	}
	return int(v), true
}
