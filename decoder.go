// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "github.com/ethereum/go-ethereum/accounts/abi"

// slot is one entry collected while walking a frame's static region: either
// an already-resolved static value, or a placeholder whose dynamic payload
// is resolved later, once the frame's static region is fully known.
type slot struct {
	resolved    *param
	placeholder bool
	offset      int
	length      *int
}

// withSlot returns a fresh slice consisting of collected plus s. Branches in
// the backtracking search must never alias each other's collected lists, so
// this always copies rather than appending in place.
func withSlot(collected []slot, s slot) []slot {
	out := make([]slot, len(collected)+1)
	copy(out, collected)
	out[len(collected)] = s
	return out
}

// decodeTuple is the recursive backtracking search. It walks the static
// region of data word by word starting at paramIdx, classifying each slot as
// a dynamic pointer with a following length, a dynamic pointer without one,
// or a static word, and recurses until the static region — end_of_static,
// which only ever shrinks as dynamic offsets are discovered — is exhausted.
//
// isDynArrayElem is nil when any slot kind is permitted, or points at a bool
// forcing every slot in this frame to be a dynamic pointer followed by a
// length word (true) or a dynamic pointer without one (false); static words
// are only permitted when it is nil — array elements must be homogeneous.
//
// Only the base case ever validates anything against the external codec;
// a failure there unwinds back up through the branch that led to it, and
// the caller tries its next branch. The first candidate whose fully resolved
// type list survives the codec probe wins.
func decodeTuple(data []byte, paramIdx int, collected []slot, endOfStatic int, expectedLength *int, isDynArrayElem *bool) ([]param, []interface{}, bool) {
	paramOffset := paramIdx * wordSize
	if paramOffset < endOfStatic {
		// Branch 1: dynamic pointer followed by a length word.
		if isDynArrayElem == nil || *isDynArrayElem {
			if off, ok := tryParseOffset(data, paramOffset); ok {
				if ln, ok := tryParseLength(data, off); ok {
					length := ln
					next := withSlot(collected, slot{placeholder: true, offset: off, length: &length})
					if types, vals, ok := decodeTuple(data, paramIdx+1, next, min(endOfStatic, off), expectedLength, isDynArrayElem); ok {
						return types, vals, true
					}
				}
			}
		}
		// Branch 2: dynamic pointer with no length word.
		if isDynArrayElem == nil || !*isDynArrayElem {
			if off, ok := tryParseOffset(data, paramOffset); ok {
				next := withSlot(collected, slot{placeholder: true, offset: off, length: nil})
				if types, vals, ok := decodeTuple(data, paramIdx+1, next, min(endOfStatic, off), expectedLength, isDynArrayElem); ok {
					return types, vals, true
				}
			}
		}
		// Branch 3: plain static word. Array elements may never mix static
		// and dynamic, so this is only available outside an array frame.
		if isDynArrayElem == nil {
			p := bytes32Param()
			next := withSlot(collected, slot{resolved: &p})
			if types, vals, ok := decodeTuple(data, paramIdx+1, next, endOfStatic, expectedLength, isDynArrayElem); ok {
				return types, vals, true
			}
		}
		return nil, nil, false
	}

	// Base case: the static region is exhausted.
	if expectedLength != nil && len(collected) != *expectedLength {
		return nil, nil, false
	}
	resolved, ok := resolvePlaceholders(data, collected)
	if !ok {
		return nil, nil, false
	}
	vals, ok := testParams(resolved, data)
	if !ok {
		return nil, nil, false
	}
	return resolved, vals, true
}

// resolvePlaceholders resolves every placeholder in collected, left to
// right, into a concrete candidate type.
func resolvePlaceholders(data []byte, collected []slot) ([]param, bool) {
	var offsets []int
	for _, s := range collected {
		if s.placeholder {
			offsets = append(offsets, s.offset)
		}
	}

	out := make([]param, len(collected))
	seen := 0
	for i, s := range collected {
		if !s.placeholder {
			out[i] = *s.resolved
			continue
		}
		next := len(data)
		trailing := seen == len(offsets)-1
		if !trailing {
			next = offsets[seen+1]
		}
		resolved, ok := resolveDynamic(data, s.offset, s.length, next, trailing)
		if !ok {
			return nil, false
		}
		out[i] = resolved
		seen++
	}
	return out, true
}

// resolveDynamic resolves a single dynamic placeholder given the byte range
// its payload occupies (spec.md §4.5).
func resolveDynamic(data []byte, offset int, length *int, next int, trailing bool) (param, bool) {
	start := offset
	if length != nil {
		start = offset + wordSize
	}
	if start > next || next > len(data) {
		return param{}, false
	}
	payload := data[start:next]

	if length == nil {
		// Neither a static tuple nor a static array carries a length prefix.
		fields, _, ok := decodeTuple(payload, 0, nil, len(payload), nil, nil)
		if !ok {
			return param{}, false
		}
		return tupleParam(fields...), true
	}

	ln := *length
	if ln == 0 {
		return emptyTupleArrayParam(), true
	}
	if ln == len(payload) || (len(payload)%wordSize == 0 && ln == len(payload)-trailingZeros(payload)) {
		return bytesParam(), true
	}
	return resolveArrayOfLength(payload, ln, trailing)
}

// resolveArrayOfLength resolves a dynamic placeholder whose length doesn't
// match a byte-string, meaning it must be an array of length elements. It
// tries all three interpretations in parallel and ranks the survivors.
func resolveArrayOfLength(payload []byte, length int, trailing bool) (param, bool) {
	var candidates []param

	if elem, ok := resolveArrayBranch(payload, length, true); ok {
		candidates = append(candidates, elem)
	}
	if elem, ok := resolveArrayBranch(payload, length, false); ok {
		candidates = append(candidates, elem)
	}
	if elem, ok := resolveStaticArrayBranch(payload, length, trailing); ok {
		candidates = append(candidates, elem)
	}
	if len(candidates) == 0 {
		return param{}, false
	}

	best := candidates[0]
	bestLen := len(format(best))
	for _, c := range candidates[1:] {
		if l := len(format(c)); l < bestLen {
			best, bestLen = c, l
		}
	}
	return arrayParam(best, 0), true
}

// resolveArrayBranch handles both array-of-dynamic interpretations: each
// element carries its own length prefix (withLength) or doesn't.
func resolveArrayBranch(payload []byte, length int, withLength bool) (param, bool) {
	fields, _, ok := decodeTuple(payload, 0, nil, len(payload), &length, &withLength)
	if !ok || !allFormatEqual(fields) {
		return param{}, false
	}
	return fields[0], true
}

// resolveStaticArrayBranch handles the array-of-static interpretation: the
// payload splits into length equal-sized element buffers.
func resolveStaticArrayBranch(payload []byte, length int, trailing bool) (param, bool) {
	if length <= 0 || len(payload)%wordSize != 0 {
		return param{}, false
	}
	numWords := len(payload) / wordSize
	if numWords%length != 0 && !trailing {
		return param{}, false
	}
	wordsPerElem := numWords / length
	if wordsPerElem == 0 {
		return param{}, false
	}
	elemSize := wordsPerElem * wordSize

	elems := make([]param, length)
	for i := 0; i < length; i++ {
		start := i * elemSize
		end := start + elemSize
		if end > len(payload) {
			return param{}, false
		}
		fields, _, ok := decodeTuple(payload[start:end], 0, nil, elemSize, nil, nil)
		if !ok {
			return param{}, false
		}
		if len(fields) > 1 {
			elems[i] = tupleParam(fields...)
		} else {
			elems[i] = fields[0]
		}
	}
	if !allFormatEqual(elems) {
		return param{}, false
	}
	return elems[0], true
}

// GuessABIEncodedData infers a type list consistent with data, a canonical
// ABI-encoded tuple payload with no known signature. It returns
// ErrNoConsistentType if no candidate signature both decodes without error
// and survives forced stringification of every decoded value.
func GuessABIEncodedData(data []byte) ([]abi.Type, error) {
	candidates, vals, ok := decodeTuple(data, 0, nil, len(data), nil, nil)
	if !ok {
		return nil, ErrNoConsistentType
	}
	refined := prettyTypes(candidates, vals)

	types := make([]abi.Type, len(refined))
	for i, p := range refined {
		t, err := resolveType(p)
		if err != nil {
			return nil, ErrNoConsistentType
		}
		types[i] = t
	}
	return types, nil
}
