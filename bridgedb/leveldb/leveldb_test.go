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

package leveldb

import (
	"bytes"
	"testing"
)

func TestLeveldbBasics(t *testing.T) {
	db, err := New(t.TempDir(), 0, 0, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	key, value := []byte("receipt"), []byte{1}
	if ok, _ := db.Has(key); ok {
		t.Error("fresh database reports key present")
	}
	if err := db.Put(key, value); err != nil {
		t.Fatalf("put failed: %v", err)
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

// TestLeveldbReopen verifies that entries survive a close and reopen cycle.
// Receipt consumption marks rely on this.
func TestLeveldbReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := New(dir, 0, 0, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Put([]byte("consumed"), []byte{1}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := New(dir, 0, 0, false)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer reopened.Close()

	if ok, _ := reopened.Has([]byte("consumed")); !ok {
		t.Error("entry lost across reopen")
	}
}

func TestLeveldbDoubleClose(t *testing.T) {
	db, err := New(t.TempDir(), 0, 0, false)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
