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

package core

import (
	"fmt"
	"sync"

	"github.com/bridgeum/go-bridgeum/bridgedb"
	"github.com/bridgeum/go-bridgeum/common"
)

// receiptPrefix namespaces consumed-receipt entries in the backing store.
var receiptPrefix = []byte("bridge-receipt-")

// receiptKey = receiptPrefix + digest.
func receiptKey(hash common.Hash) []byte {
	return append(receiptPrefix, hash[:]...)
}

// ReceiptStore tracks which receipt digests have been consumed. The set only
// grows: there is no expiry and no removal, replay protection is intentionally
// permanent. With a persistent backing store it survives restarts.
type ReceiptStore struct {
	mu sync.Mutex // Serializes the check-then-mark in Consume
	db bridgedb.KeyValueStore
}

// NewReceiptStore wraps the given key-value store as a consumed-receipt set.
func NewReceiptStore(db bridgedb.KeyValueStore) *ReceiptStore {
	return &ReceiptStore{db: db}
}

// IsConsumed reports whether the given receipt digest was consumed before.
func (s *ReceiptStore) IsConsumed(hash common.Hash) bool {
	ok, _ := s.db.Has(receiptKey(hash))
	return ok
}

// Consume transitions the digest from unconsumed to consumed. At most one
// caller ever succeeds for a given digest; every other caller, concurrent or
// later, observes ErrReceiptAlreadyUsed. The transition is irreversible.
func (s *ReceiptStore) Consume(hash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, _ := s.db.Has(receiptKey(hash)); ok {
		return ErrReceiptAlreadyUsed
	}
	if err := s.db.Put(receiptKey(hash), []byte{1}); err != nil {
		return fmt.Errorf("failed to mark receipt consumed: %w", err)
	}
	return nil
}
