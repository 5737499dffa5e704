// Copyright 2025 The go-bridgeum Authors
// This file is part of the go-bridgeum library.
//
// The go-bridgeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-bridgeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-bridgeum library. If not, see <http://www.gnu.org/licenses/>.

package common

import (
	"bytes"
	"testing"
)

func TestIsHexAddress(t *testing.T) {
	tests := []struct {
		str string
		exp bool
	}{
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0XAAEB6053F3E94C9B9A09F33669435E7EF1BEAED", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed1", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beae", false},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed11", false},
		{"0xxaaeb6053f3e94c9b9a09f33669435e7ef1beaed", false},
	}

	for _, test := range tests {
		if result := IsHexAddress(test.str); result != test.exp {
			t.Errorf("IsHexAddress(%s) == %v; expected %v",
				test.str, result, test.exp)
		}
	}
}

func TestAddressSetBytes(t *testing.T) {
	// Shorter input is left-padded.
	short := BytesToAddress([]byte{1, 2})
	var expShort Address
	expShort[AddressLength-2] = 1
	expShort[AddressLength-1] = 2
	if short != expShort {
		t.Errorf("short input: got %x, want %x", short, expShort)
	}
	// Longer input is cropped from the left.
	long := make([]byte, AddressLength+4)
	for i := range long {
		long[i] = byte(i)
	}
	cropped := BytesToAddress(long)
	if !bytes.Equal(cropped.Bytes(), long[4:]) {
		t.Errorf("long input: got %x, want %x", cropped.Bytes(), long[4:])
	}
}

func TestAddressHexRoundtrip(t *testing.T) {
	addr := HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if got := HexToAddress(addr.Hex()); got != addr {
		t.Errorf("roundtrip mismatch: %x != %x", got, addr)
	}
}

func TestAddressUnmarshalText(t *testing.T) {
	var a Address
	if err := a.UnmarshalText([]byte("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Hex() != "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed" {
		t.Errorf("decoded wrong value: %s", a.Hex())
	}
	if err := a.UnmarshalText([]byte("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")); err == nil {
		t.Error("expected error for missing 0x prefix")
	}
	if err := a.UnmarshalText([]byte("0x5aaeb6")); err == nil {
		t.Error("expected error for wrong length")
	}
}

func TestHashSetBytes(t *testing.T) {
	long := make([]byte, HashLength+8)
	for i := range long {
		long[i] = byte(i)
	}
	h := BytesToHash(long)
	if !bytes.Equal(h.Bytes(), long[8:]) {
		t.Errorf("long input: got %x, want %x", h.Bytes(), long[8:])
	}
}
