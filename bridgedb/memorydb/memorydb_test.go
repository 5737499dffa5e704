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

package memorydb

import (
	"bytes"
	"testing"
)

func TestMemorydbBasics(t *testing.T) {
	db := New()
	key, value := []byte("receipt"), []byte{1}

	if ok, _ := db.Has(key); ok {
		t.Error("fresh database reports key present")
	}
	if err := db.Put(key, value); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if ok, _ := db.Has(key); !ok {
		t.Error("stored key not reported present")
	}
	got, err := db.Get(key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %x, want %x", got, value)
	}
	if err := db.Delete(key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ok, _ := db.Has(key); ok {
		t.Error("deleted key still present")
	}
}

func TestMemorydbValueIsolation(t *testing.T) {
	db := New()
	value := []byte{1, 2, 3}
	db.Put([]byte("k"), value)
	value[0] = 9

	got, _ := db.Get([]byte("k"))
	if got[0] != 1 {
		t.Error("stored value aliases caller slice")
	}
	got[1] = 9
	again, _ := db.Get([]byte("k"))
	if again[1] != 2 {
		t.Error("returned value aliases stored slice")
	}
}

func TestMemorydbClosed(t *testing.T) {
	db := New()
	db.Put([]byte("k"), []byte{1})
	if err := db.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := db.Get([]byte("k")); err == nil {
		t.Error("get on closed database succeeded")
	}
	if err := db.Put([]byte("k"), []byte{2}); err == nil {
		t.Error("put on closed database succeeded")
	}
	if _, err := db.Has([]byte("k")); err == nil {
		t.Error("has on closed database succeeded")
	}
}
