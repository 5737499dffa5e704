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
	"errors"

	"github.com/bridgeum/go-bridgeum/core/state"
)

// Various error messages to mark bridge transitions invalid. Every rejected
// call leaves the bridge state exactly as it was before the call.
var (
	// ErrBridgePaused is returned by mint and swap-out attempts while the
	// pause gate is engaged.
	ErrBridgePaused = errors.New("bridge is paused")

	// ErrAlreadyPaused is returned when pausing an already paused bridge.
	ErrAlreadyPaused = errors.New("bridge already paused")

	// ErrNotPaused is returned when unpausing a bridge that is not paused.
	ErrNotPaused = errors.New("bridge not paused")

	// ErrUnauthorized is returned when the caller of an administrative
	// operation does not hold the required role.
	ErrUnauthorized = errors.New("caller lacks required role")

	// ErrInvalidSignature is returned when a receipt signature is malformed:
	// wrong length, out-of-range scalars, bad recovery id, or recovery
	// mathematically failed. Distinct from ErrSignatureInvalid on purpose.
	ErrInvalidSignature = errors.New("invalid signature encoding")

	// ErrSignatureInvalid is returned when a well-formed signature does not
	// authorize this exact receipt. Wrong signer, mismatched recipient,
	// mismatched amount and mismatched nonce all surface as this one error,
	// so a caller cannot probe which field was wrong.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrReceiptAlreadyUsed is returned when the receipt digest has been
	// consumed before. Replay protection is permanent.
	ErrReceiptAlreadyUsed = errors.New("receipt already used")

	// ErrInvalidDestination is returned when a swap-out destination address
	// does not match the external chain's fixed-length encoding.
	ErrInvalidDestination = errors.New("invalid destination address format")
)

// Ledger failure modes, re-exported so callers only need the core package.
var (
	ErrInsufficientBalance = state.ErrInsufficientBalance
	ErrSupplyOverflow      = state.ErrSupplyOverflow
)
