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
	mapset "github.com/deckarep/golang-set"

	"github.com/bridgeum/go-bridgeum/common"
)

// Role is a named capability grantable to identities. Many identities may
// hold a role and one identity may hold many roles.
type Role uint8

const (
	// RoleMinter authorizes an identity to sign mint receipts.
	RoleMinter Role = iota
	// RolePauser authorizes an identity to pause and unpause the bridge.
	RolePauser
	// RoleAdmin authorizes an identity to grant and revoke roles.
	RoleAdmin
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleMinter:
		return "MINTER"
	case RolePauser:
		return "PAUSER"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// allRoles enumerates every role the registry manages. Roles are created at
// construction and never destroyed, only emptied.
var allRoles = []Role{RoleMinter, RolePauser, RoleAdmin}

// RoleRegistry maps roles to the set of identities holding them. It is pure
// mechanism: admin gating of grant and revoke lives in the bridge controller
// so every authorization decision is visible in one place.
//
// The member sets are safe for concurrent use.
type RoleRegistry struct {
	members map[Role]mapset.Set
}

// NewRoleRegistry creates a registry with the owner holding every role. This
// is the only point at which roles appear without an admin-gated grant.
func NewRoleRegistry(owner common.Address) *RoleRegistry {
	reg := &RoleRegistry{
		members: make(map[Role]mapset.Set, len(allRoles)),
	}
	for _, role := range allRoles {
		reg.members[role] = mapset.NewSet()
		reg.members[role].Add(owner)
	}
	return reg
}

// HasRole reports whether identity currently holds role.
func (reg *RoleRegistry) HasRole(role Role, identity common.Address) bool {
	set, ok := reg.members[role]
	return ok && set.Contains(identity)
}

// Grant adds identity to the holders of role. It reports whether the
// membership actually changed; granting an already-held role is a no-op.
func (reg *RoleRegistry) Grant(role Role, identity common.Address) bool {
	set, ok := reg.members[role]
	if !ok {
		return false
	}
	return set.Add(identity)
}

// Revoke removes identity from the holders of role. Revoking a role the
// identity does not hold is a no-op, not an error, so administrative scripts
// can be replayed safely. It reports whether the membership actually changed.
func (reg *RoleRegistry) Revoke(role Role, identity common.Address) bool {
	set, ok := reg.members[role]
	if !ok || !set.Contains(identity) {
		return false
	}
	set.Remove(identity)
	return true
}

// Holders returns the number of identities currently holding role.
func (reg *RoleRegistry) Holders(role Role) int {
	set, ok := reg.members[role]
	if !ok {
		return 0
	}
	return set.Cardinality()
}
