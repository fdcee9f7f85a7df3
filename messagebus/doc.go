// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue for inter-module data transfer
//
// every state change notification (grant overwrite, split entry
// addition, ledger mutation) is sent here; the publish module drains
// the broadcast queue to external subscribers
package messagebus
