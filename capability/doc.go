// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability - the permission registry
//
// an account (the grantor) can delegate any of 256 indexed
// capabilities to another account (the grantee), scoped to a
// namespace; namespace zero is a wildcard matching every namespace
//
// grants are stored as whole 256 bit masks and are replaced wholesale
// by every set operation; storing an empty mask removes the grant
//
// the Require… combinators are the authorisation checks used by the
// splits and ledger modules and by external collaborators; they are
// pure reads and never mutate state
package capability
