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
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bridgeum/go-bridgeum/bridgedb/memorydb"
	"github.com/bridgeum/go-bridgeum/common"
	"github.com/holiman/uint256"
)

func TestReceiptHashDeterministic(t *testing.T) {
	base := Receipt{
		Recipient: common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
		Amount:    uint256.NewInt(123),
		Nonce:     1,
	}
	require.Equal(t, base.Hash(), base.Hash(), "digest must be deterministic")

	// Any field change must shift the digest.
	changed := base
	changed.Recipient = common.HexToAddress("0x0000000000000000000000000000000000000042")
	require.NotEqual(t, base.Hash(), changed.Hash(), "recipient not bound into digest")

	changed = base
	changed.Amount = uint256.NewInt(124)
	require.NotEqual(t, base.Hash(), changed.Hash(), "amount not bound into digest")

	changed = base
	changed.Nonce = 2
	require.NotEqual(t, base.Hash(), changed.Hash(), "nonce not bound into digest")
}

func TestReceiptEncodingSize(t *testing.T) {
	r := Receipt{
		Recipient: common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
		Amount:    new(uint256.Int).SetAllOne(),
		Nonce:     ^uint64(0),
	}
	require.Len(t, r.encode(), receiptEncodingSize)
}

func TestReceiptStoreConsumeOnce(t *testing.T) {
	store := NewReceiptStore(memorydb.New())
	hash := common.HexToHash("0x01")

	require.False(t, store.IsConsumed(hash))
	require.NoError(t, store.Consume(hash))
	require.True(t, store.IsConsumed(hash))
	require.ErrorIs(t, store.Consume(hash), ErrReceiptAlreadyUsed)
	// Still consumed, no un-consumption path exists.
	require.True(t, store.IsConsumed(hash))
}

func TestReceiptStoreIndependentDigests(t *testing.T) {
	store := NewReceiptStore(memorydb.New())
	require.NoError(t, store.Consume(common.HexToHash("0x01")))
	require.False(t, store.IsConsumed(common.HexToHash("0x02")))
	require.NoError(t, store.Consume(common.HexToHash("0x02")))
}

func TestReceiptStoreConcurrentConsume(t *testing.T) {
	store := NewReceiptStore(memorydb.New())
	hash := common.HexToHash("0xbeef")

	var (
		wg        sync.WaitGroup
		successes uint32
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Consume(hash) == nil {
				atomic.AddUint32(&successes, 1)
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, successes, "exactly one concurrent caller may consume a digest")
}
