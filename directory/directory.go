// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - lookup of the accounts currently holding an
// entity's roles
//
// entity governance (who owns a project, which payment terminal is
// active, which role may mint and burn) lives outside this daemon; the
// registries only consult it through the Directory contract, so any
// provider can be plugged in
//
// the daemon ships one provider: a JSON file reloaded on change
package directory

import (
	"github.com/fundpool/treasuryd/account"
)

// Directory - role lookup for an entity
//
// the controller role is distinct from the owner: it alone gates
// minting and burning, and is never reachable through a capability
// grant
type Directory interface {

	// current owning account; fault.EntityNotFound for unknown entities
	OwnerOf(entity uint64) (*account.Account, error)

	// current operational terminal; fault.EntityNotFound for unknown
	// entities, nil account when the entity has no active terminal
	TerminalOf(entity uint64) (*account.Account, error)

	// check the caller against the current controlling role
	IsController(entity uint64, caller *account.Account) (bool, error)
}
