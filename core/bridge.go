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

// Package core implements the bridging ledger controller: a wrapped-asset
// balance ledger whose balance-increasing transitions are authorized by
// off-chain produced receipt signatures and whose balance-decreasing
// transitions emit swap intents for an external bridging process.
package core

import (
	"fmt"
	"math/big"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/bridgeum/go-bridgeum/bridgedb"
	"github.com/bridgeum/go-bridgeum/common"
	"github.com/bridgeum/go-bridgeum/core/state"
	"github.com/bridgeum/go-bridgeum/crypto"
	"github.com/bridgeum/go-bridgeum/params"
	"github.com/holiman/uint256"
)

// inmemorySignatures is the number of recent recovered signers to keep cached.
const inmemorySignatures = 4096

// Config are the construction parameters of a bridge.
type Config struct {
	// Owner is granted the MINTER, PAUSER and ADMIN roles at construction.
	// This is the only self-granting path; afterwards every role change goes
	// through the admin-gated GrantRole and RevokeRole.
	Owner common.Address

	// Logger receives structured records of every accepted and rejected
	// transition. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Bridge is the receiving-side verification and ledger state machine of the
// wrapped asset. All state-mutating entry points serialize on a single mutex:
// every externally visible transition (mint+consume, burn+emit) is applied as
// one atomic unit and no two callers can both pass a check-then-act sequence
// for the same receipt.
type Bridge struct {
	mu sync.Mutex // Serializes all state-mutating entry points

	ledger   *state.Ledger
	receipts *ReceiptStore
	roles    *RoleRegistry
	gate     PauseGate
	feed     eventFeed

	sigcache *lru.ARCCache // Recovered signers of recent receipt signatures
	log      *zap.Logger
}

// New creates a bridge with an empty ledger, the receipt set backed by db,
// and config.Owner holding every role.
func New(config Config, db bridgedb.KeyValueStore) *Bridge {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sigcache, _ := lru.NewARC(inmemorySignatures)

	return &Bridge{
		ledger:   state.NewLedger(),
		receipts: NewReceiptStore(db),
		roles:    NewRoleRegistry(config.Owner),
		sigcache: sigcache,
		log:      logger,
	}
}

// MintWithReceipt credits amount to recipient if sig is a well-formed
// signature by a MINTER-role identity over exactly this (recipient, amount,
// nonce) receipt, and the receipt was never consumed before. The mint and the
// consumption of the receipt happen as one atomic unit.
//
// A malformed signature fails with ErrInvalidSignature. A well-formed
// signature that does not authorize this exact receipt fails with
// ErrSignatureInvalid, deliberately without revealing which field was wrong.
// A nil amount is treated as zero.
func (b *Bridge) MintWithReceipt(recipient common.Address, amount *uint256.Int, nonce uint64, sig []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount == nil {
		amount = new(uint256.Int)
	}
	if b.gate.IsPaused() {
		return ErrBridgePaused
	}
	receipt := Receipt{Recipient: recipient, Amount: amount, Nonce: nonce}
	hash := receipt.Hash()

	if b.receipts.IsConsumed(hash) {
		b.log.Warn("Rejected replayed mint receipt",
			zap.String("digest", hash.Hex()),
			zap.String("recipient", recipient.Hex()))
		return ErrReceiptAlreadyUsed
	}
	signer, err := b.recoverSigner(hash, sig)
	if err != nil {
		return err
	}
	if !b.roles.HasRole(RoleMinter, signer) {
		// Same surface for wrong signer and tampered fields: a tampered
		// field shifts the digest, recovery yields some other identity and
		// that identity does not hold the minter role.
		b.log.Warn("Rejected mint receipt with unauthorized signature",
			zap.String("digest", hash.Hex()),
			zap.String("recovered", signer.Hex()))
		return ErrSignatureInvalid
	}
	if err := b.ledger.Mint(recipient, amount); err != nil {
		return err
	}
	if err := b.receipts.Consume(hash); err != nil {
		// Can only happen on a backing-store write failure: the in-lock
		// IsConsumed check above rules out a racing consumer. Undo the mint
		// so the failed call leaves no partial mutation behind.
		if berr := b.ledger.Burn(recipient, amount); berr != nil {
			return fmt.Errorf("receipt consumption failed and mint rollback failed: %v: %w", berr, err)
		}
		return err
	}
	b.feed.send(BalanceIncreasedEvent{Recipient: recipient, Amount: new(uint256.Int).Set(amount)})
	b.log.Info("Minted wrapped asset",
		zap.String("recipient", recipient.Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("nonce", nonce),
		zap.String("signer", signer.Hex()))
	return nil
}

// SwapOut burns amount from the caller's balance and emits a swap intent for
// the external bridging process to release the underlying asset at
// destination. The burn and the intent emission are one atomic unit. The
// intent is also returned to the caller. A nil amount is treated as zero;
// a zero-amount swap succeeds for any caller and emits a zero intent.
func (b *Bridge) SwapOut(caller common.Address, destination string, amount *uint256.Int) (*SwapIntentEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount == nil {
		amount = new(uint256.Int)
	}
	if b.gate.IsPaused() {
		return nil, ErrBridgePaused
	}
	if len(destination) != params.DestAddressLength {
		return nil, ErrInvalidDestination
	}
	if err := b.ledger.Burn(caller, amount); err != nil {
		return nil, err
	}
	intent := &SwapIntentEvent{
		Initiator:   caller,
		Destination: destination,
		Amount:      new(uint256.Int).Set(amount),
	}
	b.feed.send(BalanceDecreasedEvent{Account: caller, Amount: new(uint256.Int).Set(amount)})
	b.feed.send(*intent)
	b.log.Info("Swapped out wrapped asset",
		zap.String("initiator", caller.Hex()),
		zap.String("destination", destination),
		zap.String("amount", amount.String()))
	return intent, nil
}

// Pause engages the pause gate. The caller must hold the PAUSER role.
func (b *Bridge) Pause(caller common.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roles.HasRole(RolePauser, caller) {
		return ErrUnauthorized
	}
	if err := b.gate.Pause(); err != nil {
		return err
	}
	b.feed.send(PauseStateChangedEvent{Paused: true})
	b.log.Info("Bridge paused", zap.String("caller", caller.Hex()))
	return nil
}

// Unpause releases the pause gate. The caller must hold the PAUSER role.
func (b *Bridge) Unpause(caller common.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roles.HasRole(RolePauser, caller) {
		return ErrUnauthorized
	}
	if err := b.gate.Unpause(); err != nil {
		return err
	}
	b.feed.send(PauseStateChangedEvent{Paused: false})
	b.log.Info("Bridge unpaused", zap.String("caller", caller.Hex()))
	return nil
}

// GrantRole adds identity to the holders of role. The caller must hold the
// ADMIN role. Granting an already-held role succeeds without effect.
func (b *Bridge) GrantRole(caller common.Address, role Role, identity common.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roles.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	if b.roles.Grant(role, identity) {
		b.feed.send(RoleGrantedEvent{Role: role, Identity: identity, Grantor: caller})
		b.log.Info("Granted role",
			zap.Stringer("role", role),
			zap.String("identity", identity.Hex()),
			zap.String("grantor", caller.Hex()))
	}
	return nil
}

// RevokeRole removes identity from the holders of role. The caller must hold
// the ADMIN role. Revoking an unheld role succeeds without effect.
func (b *Bridge) RevokeRole(caller common.Address, role Role, identity common.Address) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.roles.HasRole(RoleAdmin, caller) {
		return ErrUnauthorized
	}
	if b.roles.Revoke(role, identity) {
		b.feed.send(RoleRevokedEvent{Role: role, Identity: identity, Revoker: caller})
		b.log.Info("Revoked role",
			zap.Stringer("role", role),
			zap.String("identity", identity.Hex()),
			zap.String("revoker", caller.Hex()))
	}
	return nil
}

// BalanceOf returns the wrapped-asset balance of the given account.
func (b *Bridge) BalanceOf(addr common.Address) *uint256.Int {
	return b.ledger.BalanceOf(addr)
}

// TotalSupply returns the total amount of wrapped asset in circulation.
func (b *Bridge) TotalSupply() *uint256.Int {
	return b.ledger.TotalSupply()
}

// IsReceiptConsumed reports whether the receipt identified by the given
// fields was consumed before. A nil amount is treated as zero.
func (b *Bridge) IsReceiptConsumed(recipient common.Address, amount *uint256.Int, nonce uint64) bool {
	receipt := Receipt{Recipient: recipient, Amount: amount, Nonce: nonce}
	return b.receipts.IsConsumed(receipt.Hash())
}

// HasRole reports whether identity currently holds role.
func (b *Bridge) HasRole(role Role, identity common.Address) bool {
	return b.roles.HasRole(role, identity)
}

// IsPaused reports whether the pause gate is engaged.
func (b *Bridge) IsPaused() bool {
	return b.gate.IsPaused()
}

// SubscribeEvents registers ch to receive every bridge event. Delivery is
// non-blocking, so ch should be buffered for the expected burst.
func (b *Bridge) SubscribeEvents(ch chan<- Event) *Subscription {
	return b.feed.subscribe(ch)
}

// recoverSigner extracts the bridgeum account address that produced sig over
// hash. Malformation of any kind surfaces as ErrInvalidSignature; a
// successful recovery of an unauthorized identity is not an error here.
func (b *Bridge) recoverSigner(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, ErrInvalidSignature
	}
	// Same digest with a different signature recovers a different identity,
	// so the cache key covers both.
	key := crypto.Keccak256Hash(hash[:], sig)
	if address, known := b.sigcache.Get(key); known {
		return address.(common.Address), nil
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[crypto.RecoveryIDOffset], r, s) {
		return common.Address{}, ErrInvalidSignature
	}
	pubkey, err := crypto.Ecrecover(hash[:], sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	var signer common.Address
	copy(signer[:], crypto.Keccak256(pubkey[1:])[12:])
	b.sigcache.Add(key, signer)
	return signer, nil
}
