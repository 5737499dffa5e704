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
	"encoding/binary"

	"github.com/bridgeum/go-bridgeum/common"
	"github.com/bridgeum/go-bridgeum/crypto"
	"github.com/bridgeum/go-bridgeum/params"
	"github.com/holiman/uint256"
)

// receiptEncodingSize is the encoded size of a receipt:
// recipient(20) + amount(32) + nonce(8) = 60.
const receiptEncodingSize = common.AddressLength + 32 + 8

// Receipt is an off-chain authorized instruction to credit one account with a
// specific amount, identified by a unique nonce. The receipt itself is never
// persisted; only its digest is, once consumed.
type Receipt struct {
	Recipient common.Address // Account to be credited
	Amount    *uint256.Int   // Amount of wrapped asset to mint
	Nonce     uint64         // Uniquifier chosen by the off-chain signer
}

// encode serializes the receipt into its fixed-width wire format.
// Format: recipient(20) + amount(32, big endian) + nonce(8, big endian).
// A nil amount encodes as zero.
func (r *Receipt) encode() []byte {
	buf := make([]byte, receiptEncodingSize)
	copy(buf[:common.AddressLength], r.Recipient[:])
	if r.Amount != nil {
		amount := r.Amount.Bytes32()
		copy(buf[common.AddressLength:common.AddressLength+32], amount[:])
	}
	binary.BigEndian.PutUint64(buf[common.AddressLength+32:], r.Nonce)
	return buf
}

// Hash returns the signing digest of the receipt:
//
//	keccak256(ReceiptSigningDomain || keccak256(encode(recipient, amount, nonce)))
//
// The outer hash folds in the protocol domain prefix so a signature over this
// digest can authorize nothing outside the bridgeum receipt convention.
// Off-chain signers must reproduce this construction exactly.
func (r *Receipt) Hash() common.Hash {
	inner := crypto.Keccak256(r.encode())
	return crypto.Keccak256Hash(params.ReceiptSigningDomain, inner)
}
