// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

// well-known capability indices
//
// the index space is shared with the out of scope collaborator
// modules (cycle scheduling, terminals, handle registry); only the
// indices checked inside this daemon are listed with their consumers,
// the rest are reserved
const (
	Reconfigure       = 1  // reserved: cycle reconfiguration
	Redeem            = 2  // reserved: terminal redemption
	MigrateController = 3  // reserved: directory management
	MigrateTerminal   = 4  // reserved: directory management
	ProcessFees       = 5  // reserved: terminal fee handling
	SetMetadata       = 6  // reserved: handle registry
	Issue             = 7  // ledger.Issue
	ChangeToken       = 8  // ledger.ChangeToken
	Mint              = 9  // reserved: controller delegation
	Burn              = 10 // reserved: controller delegation
	Claim             = 11 // reserved: claiming on behalf of holders
	Transfer          = 12 // ledger.TransferUnclaimed
	RequireClaim      = 13 // ledger.SetRequireClaim
	SetController     = 14 // reserved: directory management
	SetTerminals      = 15 // reserved: directory management
	SetSplits         = 18 // splits.Set
)
