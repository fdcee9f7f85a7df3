// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database containing a set of pools, each
// pool being distinguished by a one byte prefix on its keys
//
// Grants:
//
//	key:   grantor account bytes ++ grantee account bytes ++ namespace (BE uint64)
//	value: 32 byte capability mask
//
// Splits:
//
//	key:   entity (BE uint64) ++ namespace (BE uint64) ++ group (BE uint64)
//	value: packed ordered entry list
//
// Unclaimed:
//
//	key:   entity (BE uint64) ++ holder account bytes
//	value: balance (BE uint64)
//
// UnclaimedTotal:
//
//	key:   entity (BE uint64)
//	value: total supply (BE uint64)
//
// Tokens:
//
//	key:   entity (BE uint64)
//	value: packed token issue record
//
// RequireClaim:
//
//	key:   entity (BE uint64)
//	value: one byte flag
//
// TokenBalances / TokenMeta: storage for the hosted fungible-token
// implementation (see the token package)
package storage
