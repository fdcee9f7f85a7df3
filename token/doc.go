// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - hosted fungible token instances
//
// deployments without an on-chain token use this package as the
// external representation: a plain fungible token book-kept in the
// daemon's own database. each instance carries per-holder balances, a
// total supply and an administrative owner, and satisfies the ledger's
// token contract, so the ledger cannot tell it apart from a remote one
package token
