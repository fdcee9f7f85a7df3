// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package splits - percentage based split-allocation registry
//
// each (entity, namespace, group) key holds an ordered list of split
// entries routing shares of a distributable amount to a beneficiary
// account, to an external allocator handler, or to another entity's
// treasury. percentages are basis points out of 10000; the remainder
// below 10000 is not stored, it represents funds the entity keeps.
//
// a set replaces the whole list atomically. an entry can be
// time-locked: while its lockedUntil is in the future every
// replacement must carry it forward structurally unchanged, with an
// equal or later lock
package splits
