// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import (
	"encoding/hex"
	"fmt"
)

const selectorSize = 4

// Fragment is a synthesized function fragment: a guessed name paired with
// the inferred parameter list, formatted the way the external type
// descriptor model renders a signature.
type Fragment struct {
	Name   string
	Inputs []param
}

// String renders the fragment as guessed_<selector>(<types>).
func (f Fragment) String() string {
	return f.Name + formatParams(f.Inputs)
}

// GuessFragment infers a function fragment from selector-prefixed calldata.
// The first 4 bytes are taken as the selector; the remainder is passed
// through GuessABIEncodedData. It returns ErrNoConsistentType if calldata is
// shorter than the 4-byte selector or no consistent type list could be
// inferred for the remainder.
func GuessFragment(calldata []byte) (*Fragment, error) {
	if len(calldata) < selectorSize {
		return nil, ErrNoConsistentType
	}
	selector := calldata[:selectorSize]
	payload := calldata[selectorSize:]

	types, err := GuessABIEncodedData(payload)
	if err != nil {
		return nil, err
	}

	inputs := make([]param, len(types))
	for i, t := range types {
		inputs[i] = fromType(t)
	}

	return &Fragment{
		Name:   fmt.Sprintf("guessed_%s", hex.EncodeToString(selector)),
		Inputs: inputs,
	}, nil
}
