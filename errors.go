// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "errors"

// ErrNoConsistentType is returned when no type signature could be found that
// both decodes the input without error and survives forced stringification
// of every decoded value. It is the single failure mode exposed by this
// package: every internal pruning condition (offset out of range,
// inconsistent array candidates, codec probe rejection, unequal element size
// in a non-trailing array, a frame ending with the wrong number of params)
// collapses into this same error once the outermost search exhausts all
// branches.
var ErrNoConsistentType = errors.New("abiguess: no type signature consistent with data")
