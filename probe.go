// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// toArguments hardens every candidate into a real abi.Type and packages them
// as an abi.Arguments tuple, the shape the external codec decodes against.
func toArguments(candidates []param) (abi.Arguments, error) {
	args := make(abi.Arguments, len(candidates))
	for i, c := range candidates {
		t, err := resolveType(c)
		if err != nil {
			return nil, err
		}
		args[i] = abi.Argument{Type: t}
	}
	return args, nil
}

// testParams invokes the external ABI codec to decode data as a tuple of
// candidate_types, additionally forcing stringification of every decoded
// value to surface lazy validity checks the codec might otherwise defer.
// Any error or panic raised by the codec during probing is caught and
// treated as a local rejection: this is the decoder's ground-truth oracle,
// not a source of distinct error categories.
func testParams(candidates []param, data []byte) (values []interface{}, ok bool) {
	args, err := toArguments(candidates)
	if err != nil {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			values, ok = nil, false
		}
	}()
	vals, err := args.UnpackValues(data)
	if err != nil {
		return nil, false
	}
	for _, v := range vals {
		_ = fmt.Sprintf("%v", v)
	}
	return vals, true
}
