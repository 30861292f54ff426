// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// param is the candidate type representation the decoder builds up during
// search. Rather than invent a parallel type-descriptor tree, it reuses the
// external ABI codec's own marshaling format (the shape abi.NewType already
// consumes) — a candidate hardens into a real, canonicalized abi.Type the
// moment it needs to be probed or formatted.
type param = abi.ArgumentMarshaling

func elementary(name string) param { return param{Type: name} }

func addressParam() param      { return elementary("address") }
func bytes32Param() param      { return elementary("bytes32") }
func bytesNParam(n int) param  { return elementary(fmt.Sprintf("bytes%d", n)) }
func bytesParam() param        { return elementary("bytes") }
func stringParam() param       { return elementary("string") }
func uint256Param() param      { return elementary("uint256") }

// tupleParam builds a tuple candidate. The external codec builds a real Go
// struct (via reflect) to decode tuples into, which requires every component
// to carry a name it can turn into an exported field — components carry none
// of their own at this point in the search, so synthetic positional names are
// assigned here.
func tupleParam(components ...param) param {
	named := make([]param, len(components))
	for i, c := range components {
		c.Name = fmt.Sprintf("arg%d", i)
		named[i] = c
	}
	return param{Type: "tuple", Components: named}
}

// arrayParam wraps elem as a dynamic array (size == 0) or a fixed-size array
// of the given size.
func arrayParam(elem param, size int) param {
	suffix := "[]"
	if size > 0 {
		suffix = fmt.Sprintf("[%d]", size)
	}
	return param{Type: elem.Type + suffix, InternalType: elem.InternalType, Components: elem.Components}
}

// emptyTupleArrayParam is the ()[] sentinel: an empty dynamic region, which
// cannot be distinguished among an empty bytes, an empty string, or an empty
// array of anything.
func emptyTupleArrayParam() param {
	return arrayParam(tupleParam(), 0)
}

// resolveType hardens a candidate into a real abi.Type, asking the external
// codec to validate and canonicalize it.
func resolveType(p param) (abi.Type, error) {
	return abi.NewType(p.Type, p.InternalType, p.Components)
}

// fromType is the inverse of resolveType: it rebuilds a param tree from an
// already-realized abi.Type, used when traversing a resolved signature (e.g.
// an array's element type, or a tuple's components) during refinement.
func fromType(t abi.Type) param {
	switch t.T {
	case abi.TupleTy:
		comps := make([]param, len(t.TupleElems))
		for i, e := range t.TupleElems {
			comps[i] = fromType(*e)
		}
		return tupleParam(comps...)
	case abi.ArrayTy:
		return arrayParam(fromType(*t.Elem), t.Size)
	case abi.SliceTy:
		return arrayParam(fromType(*t.Elem), 0)
	default:
		return elementary(t.String())
	}
}

// format returns the canonical textual signature of a candidate, as produced
// by the external type descriptor model. It returns "" if the candidate does
// not resolve to a valid type.
func format(p param) string {
	t, err := resolveType(p)
	if err != nil {
		return ""
	}
	return t.String()
}

func formatParams(ps []param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = format(p)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// allFormatEqual reports whether every candidate in ps formats identically —
// the homogeneity test array elements must satisfy under the ABI encoding.
func allFormatEqual(ps []param) bool {
	if len(ps) == 0 {
		return true
	}
	first := format(ps[0])
	for _, p := range ps[1:] {
		if format(p) != first {
			return false
		}
	}
	return true
}
