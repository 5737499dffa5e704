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

// Package state implements the wrapped-asset balance ledger.
package state

import (
	"errors"
	"sync"

	"github.com/bridgeum/go-bridgeum/common"
	"github.com/holiman/uint256"
)

var (
	// ErrInsufficientBalance is returned when a burn or transfer is requested
	// for more than the account holds. No partial amount is ever applied.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSupplyOverflow is returned when a mint would push the total supply
	// past the 256 bit integer width.
	ErrSupplyOverflow = errors.New("total supply overflow")
)

// Ledger maps account addresses to wrapped-asset balances and tracks the
// total supply. Every mutation updates the touched balances and the supply
// under a single lock hold, so the conservation invariant
//
//	totalSupply == sum of all balances
//
// holds at every observable point, including under concurrent access.
type Ledger struct {
	mu       sync.RWMutex
	balances map[common.Address]*uint256.Int
	supply   *uint256.Int
}

// NewLedger creates an empty ledger with zero total supply.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[common.Address]*uint256.Int),
		supply:   uint256.NewInt(0),
	}
}

// BalanceOf returns the current balance of the given account. Accounts that
// were never minted to report zero.
func (l *Ledger) BalanceOf(addr common.Address) *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if bal, ok := l.balances[addr]; ok {
		return new(uint256.Int).Set(bal)
	}
	return uint256.NewInt(0)
}

// TotalSupply returns the cumulative minted minus cumulative burned amount.
func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return new(uint256.Int).Set(l.supply)
}

// Mint credits amount to addr and grows the total supply by the same amount.
// The only failure mode is ErrSupplyOverflow when the supply would exceed the
// 256 bit width; a single balance can never exceed the total supply, so the
// supply check also bounds every balance.
func (l *Ledger) Mint(addr common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	newSupply, overflow := new(uint256.Int).AddOverflow(l.supply, amount)
	if overflow {
		return ErrSupplyOverflow
	}
	bal, ok := l.balances[addr]
	if !ok {
		bal = uint256.NewInt(0)
		l.balances[addr] = bal
	}
	bal.Add(bal, amount)
	l.supply = newSupply
	return nil
}

// Burn debits amount from addr and shrinks the total supply by the same
// amount. It fails with ErrInsufficientBalance if the account holds less than
// amount, leaving the ledger untouched. An account absent from the ledger
// holds zero, so burning zero succeeds for any account.
func (l *Ledger) Burn(addr common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	bal := l.balances[addr]
	if bal == nil {
		bal = uint256.NewInt(0)
	}
	if bal.Lt(amount) {
		return ErrInsufficientBalance
	}
	bal.Sub(bal, amount)
	l.supply.Sub(l.supply, amount)
	if bal.IsZero() {
		delete(l.balances, addr)
	}
	return nil
}

// Transfer moves amount from one account to another without touching the
// total supply. It fails with ErrInsufficientBalance if the sender holds less
// than amount, where an absent sender holds zero. A self transfer of a held
// amount is a no-op that succeeds.
func (l *Ledger) Transfer(from, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src := l.balances[from]
	if src == nil {
		src = uint256.NewInt(0)
	}
	if src.Lt(amount) {
		return ErrInsufficientBalance
	}
	// Zero moves and self moves are accepted above but must not materialize
	// empty accounts.
	if from == to || amount.IsZero() {
		return nil
	}
	dst, ok := l.balances[to]
	if !ok {
		dst = uint256.NewInt(0)
		l.balances[to] = dst
	}
	src.Sub(src, amount)
	dst.Add(dst, amount)
	if src.IsZero() {
		delete(l.balances, from)
	}
	return nil
}

// Dump returns a copy of every non-zero balance, keyed by account. It is
// meant for inspection and tests, not for the hot path.
func (l *Ledger) Dump() map[common.Address]*uint256.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cpy := make(map[common.Address]*uint256.Int, len(l.balances))
	for addr, bal := range l.balances {
		cpy[addr] = new(uint256.Int).Set(bal)
	}
	return cpy
}
