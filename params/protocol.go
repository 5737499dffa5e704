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

package params

// ReceiptSigningDomain is the fixed prefix mixed into every receipt digest
// before signing. It binds signatures to the bridgeum receipt convention so
// that a signature produced for another protocol can never authorize a mint
// here, and vice versa. Off-chain signers must reproduce it byte for byte.
var ReceiptSigningDomain = []byte("\x19Bridgeum Signed Receipt:\n32")

const (
	// DestAddressLength is the exact character count of a swap-out destination
	// address in the external chain's native hex encoding. Any other length is
	// rejected before the burn is attempted.
	DestAddressLength = 64
)

const (
	VersionMajor = 1 // Major version component of the current release
	VersionMinor = 0 // Minor version component of the current release
	VersionPatch = 2 // Patch version component of the current release
)

// Version holds the textual version string.
const Version = "1.0.2"
