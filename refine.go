// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"reflect"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// mergeTypes merges a list of descriptors that should agree (parallel tuple
// fields, or array elements observed independently) into one. Tuples merge
// component-wise; arrays merge their element types; anything else keeps the
// single format observed, or else becomes bytes if bytes was observed,
// uint256 if uint256 was observed, and bytes32 otherwise.
func mergeTypes(ps []param) param {
	if len(ps) == 1 {
		return ps[0]
	}
	for _, p := range ps {
		if t, err := resolveType(p); err == nil && t.T == abi.TupleTy {
			return mergeTuples(ps)
		}
	}
	for _, p := range ps {
		if t, err := resolveType(p); err == nil && (t.T == abi.ArrayTy || t.T == abi.SliceTy) {
			return mergeArrays(ps)
		}
	}
	return mergeElementary(ps)
}

func mergeTuples(ps []param) param {
	n := 0
	for _, p := range ps {
		if len(p.Components) > n {
			n = len(p.Components)
		}
	}
	merged := make([]param, n)
	for i := 0; i < n; i++ {
		var col []param
		for _, p := range ps {
			if i < len(p.Components) {
				col = append(col, p.Components[i])
			}
		}
		merged[i] = mergeTypes(col)
	}
	return tupleParam(merged...)
}

func mergeArrays(ps []param) param {
	var elems []param
	for _, p := range ps {
		t, err := resolveType(p)
		if err != nil || t.Elem == nil {
			continue
		}
		elems = append(elems, fromType(*t.Elem))
	}
	if len(elems) == 0 {
		return ps[0]
	}
	return arrayParam(mergeTypes(elems), 0)
}

func mergeElementary(ps []param) param {
	set := map[string]bool{}
	for _, p := range ps {
		set[format(p)] = true
	}
	if len(set) == 1 {
		return ps[0]
	}
	if set["bytes"] {
		return bytesParam()
	}
	if set["uint256"] {
		return uint256Param()
	}
	return bytes32Param()
}

// prettyTypes is the value-driven refinement pass: given the final candidate
// type list and the concrete values the codec probe decoded for it, it
// narrows generic bytes32/bytes placeholders into address, uint256, bytesN, or
// string using shape heuristics over the actual decoded bytes.
func prettyTypes(ps []param, vals []interface{}) []param {
	out := make([]param, len(ps))
	for i, p := range ps {
		if i < len(vals) {
			out[i] = prettyType(p, vals[i])
		} else {
			out[i] = p
		}
	}
	return out
}

func prettyType(p param, v interface{}) param {
	t, err := resolveType(p)
	if err != nil {
		return p
	}
	switch t.T {
	case abi.TupleTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Struct || rv.NumField() != len(t.TupleElems) {
			return p
		}
		refined := make([]param, len(t.TupleElems))
		for i, e := range t.TupleElems {
			refined[i] = prettyType(fromType(*e), rv.Field(i).Interface())
		}
		return tupleParam(refined...)

	case abi.ArrayTy, abi.SliceTy:
		rv := reflect.ValueOf(v)
		if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || t.Elem == nil {
			return p
		}
		elemType := fromType(*t.Elem)
		if rv.Len() == 0 {
			return arrayParam(elemType, 0)
		}
		refined := make([]param, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			refined[i] = prettyType(elemType, rv.Index(i).Interface())
		}
		return arrayParam(mergeTypes(refined), 0)

	case abi.FixedBytesTy:
		if t.Size != 32 {
			return p
		}
		raw, ok := rawBytes32(v)
		if !ok {
			return p
		}
		return refineBytes32(raw)

	case abi.BytesTy:
		b, ok := v.([]byte)
		if !ok {
			return p
		}
		if utf8.Valid(b) {
			return stringParam()
		}
		return bytesParam()

	default:
		return p
	}
}

// rawBytes32 extracts the 32 underlying bytes from the [32]byte value the
// codec decodes a bytes32 slot into.
func rawBytes32(v interface{}) ([]byte, bool) {
	b, ok := v.([32]byte)
	if !ok {
		return nil, false
	}
	return b[:], true
}

// refineBytes32 applies the value-shape heuristics of spec.md §4.6.2 to a
// raw bytes32 word.
func refineBytes32(w []byte) param {
	lz := leadingZeros(w)
	tz := trailingZeros(w)
	switch {
	case lz >= 12 && lz <= 17:
		return addressParam()
	case lz > 16:
		return uint256Param()
	case tz > 0:
		return bytesNParam(32 - tz)
	default:
		return bytes32Param()
	}
}
