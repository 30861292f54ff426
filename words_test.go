// abi-guesser-go: ABI parameter type inference engine
// Copyright 2024 abi-guesser-go Authors
// SPDX-License-Identifier: BSD-3-Clause

package abiguess

import "testing"

func TestLeadingTrailingZeros(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		lz   int
		tz   int
	}{
		{"all zero", make([]byte, 32), 32, 32},
		{"address-shaped", append(make([]byte, 12), bytes20Fill()...), 12, 0},
		{"no zeros", fillBytes(1), 0, 0},
	}
	for _, tt := range tests {
		if got := leadingZeros(tt.in); got != tt.lz {
			t.Errorf("%s: leadingZeros mismatch: have %d, want %d", tt.name, got, tt.lz)
		}
		if got := trailingZeros(tt.in); got != tt.tz {
			t.Errorf("%s: trailingZeros mismatch: have %d, want %d", tt.name, got, tt.tz)
		}
	}
}

func TestWord(t *testing.T) {
	data := fillBytes(1)
	if w := word(data, 0); w == nil || len(w) != 32 {
		t.Errorf("word at 0: have %v, want 32 bytes", w)
	}
	if w := word(data, 1); w != nil {
		t.Errorf("word past buffer: have %v, want nil", w)
	}
}

func TestSafeUint64(t *testing.T) {
	small := make([]byte, 32)
	small[31] = 32
	if v, ok := safeUint64(small); !ok || v != 32 {
		t.Errorf("small word: have (%d,%v), want (32,true)", v, ok)
	}

	overflow := fillBytes(1)
	if _, ok := safeUint64(overflow); ok {
		t.Errorf("overflow word: have ok=true, want ok=false")
	}
}

func fillBytes(b byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = b
	}
	return out
}

func bytes20Fill() []byte {
	out := make([]byte, 20)
	for i := range out {
		out[i] = 0xaa
	}
	return out
}
