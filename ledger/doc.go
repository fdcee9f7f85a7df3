// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - dual representation token ledger
//
// every entity's token exists in up to two forms: an internally
// tracked unclaimed pool, and an optional external fungible token
// instance mirroring the claimed part. the two are mutually
// convertible through Claim, and every observable aggregate is the
// sum of both forms:
//
//	BalanceOf(holder, entity) = unclaimed(holder) + token.BalanceOf(holder)
//	TotalSupply(entity)       = unclaimedTotal    + token.TotalSupply()
//
// mutations follow effects before interactions: all pool writes
// commit in one batch and the change notification is sent before any
// call into the external token instance, so a re-entrant collaborator
// can never observe partially applied balances. a token call failing
// after the commit leaves the two representations out of step, which
// is unrecoverable, so it halts the daemon
package ledger
