// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splits

import (
	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/util"
)

// PercentDenominator - percentages are basis points out of this
const PercentDenominator = 10000

// Entry - one split rule
//
// at least one of Beneficiary and Allocator must be present; Redirect
// of zero means no redirection to another entity
type Entry struct {
	Percent       uint32           `json:"percent"`
	LockedUntil   uint64           `json:"lockedUntil"`
	Beneficiary   *account.Account `json:"beneficiary"`
	Allocator     *account.Account `json:"allocator"`
	Redirect      uint64           `json:"redirect"`
	PreferClaimed bool             `json:"preferClaimed"`
}

// packed entry flag bits
const (
	flagPreferClaimed = 0x01
	flagBeneficiary   = 0x02
	flagAllocator     = 0x04
	flagLimit         = 0x08
)

// Matches - structural equality for lock carryover
//
// compares the routing fields only; the lock timestamp and the
// claimed-representation preference are free to change
func (entry Entry) Matches(other Entry) bool {
	if entry.Percent != other.Percent || entry.Redirect != other.Redirect {
		return false
	}
	if (nil == entry.Beneficiary) != (nil == other.Beneficiary) {
		return false
	}
	if nil != entry.Beneficiary && !entry.Beneficiary.SameAs(other.Beneficiary) {
		return false
	}
	if (nil == entry.Allocator) != (nil == other.Allocator) {
		return false
	}
	if nil != entry.Allocator && !entry.Allocator.SameAs(other.Allocator) {
		return false
	}
	return true
}

// append one packed entry
//
// layout: flags ++ percent ++ lockedUntil ++ redirect (Varint64) ++
// optional beneficiary ++ optional allocator (packed accounts)
func (entry Entry) pack(buffer []byte) []byte {

	flags := byte(0)
	if entry.PreferClaimed {
		flags |= flagPreferClaimed
	}
	if nil != entry.Beneficiary {
		flags |= flagBeneficiary
	}
	if nil != entry.Allocator {
		flags |= flagAllocator
	}

	buffer = append(buffer, flags)
	buffer = append(buffer, util.ToVarint64(uint64(entry.Percent))...)
	buffer = append(buffer, util.ToVarint64(entry.LockedUntil)...)
	buffer = append(buffer, util.ToVarint64(entry.Redirect)...)
	if nil != entry.Beneficiary {
		buffer = append(buffer, entry.Beneficiary.Bytes()...)
	}
	if nil != entry.Allocator {
		buffer = append(buffer, entry.Allocator.Bytes()...)
	}
	return buffer
}

// Pack - serialise a whole entry list
//
// layout: count (Varint64) ++ entries
func Pack(entries []Entry) []byte {
	buffer := util.ToVarint64(uint64(len(entries)))
	for _, entry := range entries {
		buffer = entry.pack(buffer)
	}
	return buffer
}

// read one varint field, advancing the offset
func unpackVarint(buffer []byte, offset int) (uint64, int, error) {
	value, count := util.FromVarint64(buffer[offset:])
	if 0 == count {
		return 0, 0, fault.InvalidItem
	}
	return value, offset + count, nil
}

// read one packed account, advancing the offset
func unpackAccount(buffer []byte, offset int) (*account.Account, int, error) {
	if offset+account.AccountBytesLength > len(buffer) {
		return nil, 0, fault.InvalidItem
	}
	acc, err := account.AccountFromBytes(buffer[offset : offset+account.AccountBytesLength])
	if nil != err {
		return nil, 0, err
	}
	return acc, offset + account.AccountBytesLength, nil
}

// Unpack - deserialise a whole entry list
func Unpack(buffer []byte) ([]Entry, error) {

	count, offset, err := unpackVarint(buffer, 0)
	if nil != err {
		return nil, err
	}
	if count > uint64(len(buffer)) {
		return nil, fault.InvalidCount
	}

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i += 1 {

		if offset >= len(buffer) {
			return nil, fault.InvalidItem
		}
		flags := buffer[offset]
		if flags >= flagLimit {
			return nil, fault.InvalidItem
		}
		offset += 1

		percent, offset2, err := unpackVarint(buffer, offset)
		if nil != err {
			return nil, err
		}
		lockedUntil, offset3, err := unpackVarint(buffer, offset2)
		if nil != err {
			return nil, err
		}
		redirect, offset4, err := unpackVarint(buffer, offset3)
		if nil != err {
			return nil, err
		}
		offset = offset4

		entry := Entry{
			Percent:       uint32(percent),
			LockedUntil:   lockedUntil,
			Redirect:      redirect,
			PreferClaimed: 0 != flags&flagPreferClaimed,
		}
		if 0 != flags&flagBeneficiary {
			entry.Beneficiary, offset, err = unpackAccount(buffer, offset)
			if nil != err {
				return nil, err
			}
		}
		if 0 != flags&flagAllocator {
			entry.Allocator, offset, err = unpackAccount(buffer, offset)
			if nil != err {
				return nil, err
			}
		}
		entries = append(entries, entry)
	}

	if offset != len(buffer) {
		return nil, fault.InvalidItem
	}
	return entries, nil
}
