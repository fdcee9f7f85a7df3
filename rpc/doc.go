// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC 2.0 call surface over TLS
//
// exposes the capability, splits and ledger operations to external
// collaborators. reads are open; every mutating call carries the
// caller's account and an ed25519 signature over a canonical digest
// of its arguments, so the permission checks inside the registries
// act on a proven identity rather than a transport address
//
// mutating calls are refused while the daemon is starting up
package rpc
