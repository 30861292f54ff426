// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	abiguess "github.com/samczsun/abi-guesser-go"
)

func mustArgs(t *testing.T, names []string) abi.Arguments {
	t.Helper()
	args := make(abi.Arguments, len(names))
	for i, n := range names {
		typ, err := abi.NewType(n, "", nil)
		if err != nil {
			t.Fatalf("building type %q: %v", n, err)
		}
		args[i] = abi.Argument{Type: typ}
	}
	return args
}

func encode(t *testing.T, names []string, values ...interface{}) []byte {
	t.Helper()
	packed, err := mustArgs(t, names).Pack(values...)
	if err != nil {
		t.Fatalf("packing %v: %v", names, err)
	}
	return packed
}

func guessFormats(t *testing.T, data []byte) []string {
	t.Helper()
	types, err := abiguess.GuessABIEncodedData(data)
	if err != nil {
		t.Fatalf("GuessABIEncodedData: %v", err)
	}
	out := make([]string, len(types))
	for i, ty := range types {
		out[i] = ty.String()
	}
	return out
}

func TestGuessSingleUint(t *testing.T) {
	data := encode(t, []string{"uint256"}, big.NewInt(42))
	got := guessFormats(t, data)
	want := []string{"uint256"}
	if !equalStrings(got, want) {
		t.Errorf("single uint: have %v, want %v", got, want)
	}
}

func TestGuessAddressAndUint(t *testing.T) {
	addr := common.HexToAddress("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	data := encode(t, []string{"address", "uint256"}, addr, big.NewInt(7))
	got := guessFormats(t, data)
	want := []string{"address", "uint256"}
	if !equalStrings(got, want) {
		t.Errorf("address+uint: have %v, want %v", got, want)
	}
}

func TestGuessString(t *testing.T) {
	data := encode(t, []string{"string"}, "hello")
	got := guessFormats(t, data)
	want := []string{"string"}
	if !equalStrings(got, want) {
		t.Errorf("string: have %v, want %v", got, want)
	}
}

func TestGuessDynamicBytes(t *testing.T) {
	payload := make([]byte, 40)
	for i := range payload {
		payload[i] = byte(0x80 + i) // lone continuation bytes: not valid UTF-8
	}
	data := encode(t, []string{"bytes"}, payload)
	got := guessFormats(t, data)
	want := []string{"bytes"}
	if !equalStrings(got, want) {
		t.Errorf("dynamic bytes: have %v, want %v", got, want)
	}
}

func TestGuessArrayOfUint256(t *testing.T) {
	data := encode(t, []string{"uint256[]"}, []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	got := guessFormats(t, data)
	want := []string{"uint256[]"}
	if !equalStrings(got, want) {
		t.Errorf("array of uint256: have %v, want %v", got, want)
	}
}

func TestGuessArrayOfStrings(t *testing.T) {
	data := encode(t, []string{"string[]"}, []string{"foo", "barbaz"})
	got := guessFormats(t, data)
	want := []string{"string[]"}
	if !equalStrings(got, want) {
		t.Errorf("array of strings: have %v, want %v", got, want)
	}
}

func TestGuessNoConsistentType(t *testing.T) {
	_, err := abiguess.GuessABIEncodedData([]byte{0x01})
	if !errors.Is(err, abiguess.ErrNoConsistentType) {
		t.Errorf("truncated data: have %v, want %v", err, abiguess.ErrNoConsistentType)
	}
}

func TestGuessEmptyData(t *testing.T) {
	types, err := abiguess.GuessABIEncodedData(nil)
	if err != nil {
		t.Fatalf("empty data: unexpected error %v", err)
	}
	if len(types) != 0 {
		t.Errorf("empty data: have %d types, want 0", len(types))
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
