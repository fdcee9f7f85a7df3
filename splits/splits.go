// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splits

import (
	"encoding/binary"
	"time"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/capability"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/messagebus"
)

// storage key: entity ++ namespace ++ group
func splitKey(entity uint64, namespace uint64, group uint64) []byte {
	key := make([]byte, 24)
	binary.BigEndian.PutUint64(key[0:8], entity)
	binary.BigEndian.PutUint64(key[8:16], namespace)
	binary.BigEndian.PutUint64(key[16:24], group)
	return key
}

// Get - the live entry list for a key
//
// the empty list results for keys never set
func Get(entity uint64, namespace uint64, group uint64) ([]Entry, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	return stored(entity, namespace, group)
}

// read and unpack, treating a corrupt record as fatal
func stored(entity uint64, namespace uint64, group uint64) ([]Entry, error) {
	packed := globalData.splits.Get(splitKey(entity, namespace, group))
	if nil == packed {
		return []Entry{}, nil
	}
	entries, err := Unpack(packed)
	if nil != err {
		globalData.log.Criticalf("corrupt split record: entity: %d  namespace: %d  group: %d  error: %s",
			entity, namespace, group, err)
		return nil, err
	}
	return entries, nil
}

// Set - replace the whole entry list for a key
//
// the caller must be the entity's owner, its active terminal, or hold
// a split-modification grant from the owner scoped to the entity id.
// every previous entry still under time lock must reappear in the new
// list structurally unchanged with an equal or later lock. the new
// list commits in one write after all entries validate; nothing is
// stored when any entry fails
func Set(caller *account.Account, entity uint64, namespace uint64, group uint64, entries []Entry) error {

	if nil == caller {
		return fault.InvalidItem
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	owner, err := globalData.directory.OwnerOf(entity)
	if nil != err {
		return err
	}
	terminal, err := globalData.directory.TerminalOf(entity)
	if nil != err {
		return err
	}
	err = capability.RequireWithAlternate(caller, owner, terminal, entity, capability.SetSplits)
	if nil != err {
		return err
	}

	previous, err := stored(entity, namespace, group)
	if nil != err {
		return err
	}

	// entries locked into the future must be carried forward
	now := uint64(time.Now().Unix())
carryover:
	for _, old := range previous {
		if old.LockedUntil <= now {
			continue carryover
		}
		for _, entry := range entries {
			if old.Matches(entry) && entry.LockedUntil >= old.LockedUntil {
				continue carryover
			}
		}
		return fault.LockedEntryOmitted
	}

	total := uint32(0)
	for _, entry := range entries {
		if 0 == entry.Percent {
			return fault.ZeroPercent
		}
		if nil == entry.Beneficiary && nil == entry.Allocator {
			return fault.NoRecipient
		}
		if entry.Percent > PercentDenominator {
			return fault.PercentOverflow
		}
		total += entry.Percent
		if total > PercentDenominator {
			return fault.PercentOverflow
		}
	}

	key := splitKey(entity, namespace, group)
	if 0 == len(entries) {
		globalData.splits.Delete(key)
	} else {
		globalData.splits.Put(key, Pack(entries))
	}

	globalData.log.Infof("set: entity: %d  namespace: %d  group: %d  entries: %d  total: %d",
		entity, namespace, group, len(entries), total)

	namespaceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(namespaceBytes, namespace)
	groupBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(groupBytes, group)
	entityBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(entityBytes, entity)

	for _, entry := range entries {
		messagebus.Bus.Broadcast.Send("split",
			entityBytes,
			namespaceBytes,
			groupBytes,
			entry.pack(nil),
			caller.Bytes(),
		)
	}

	return nil
}
