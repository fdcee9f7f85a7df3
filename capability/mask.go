// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/fundpool/treasuryd/fault"
)

// capability index limits
const (
	// IndexLimit - one greater than the highest valid capability index
	IndexLimit = 256

	// MaskBytesLength - length of the packed binary form
	MaskBytesLength = 32
)

// Mask - a fixed width 256 bit capability mask
//
// bit i of the mask set means capability index i is granted; word 0
// holds bits 0…63 starting from the least significant bit
type Mask [4]uint64

// MaskOf - build a mask from a list of capability indices
//
// out of range indices are ignored
func MaskOf(indices ...int) Mask {
	var m Mask
	for _, index := range indices {
		m.Set(index)
	}
	return m
}

// Has - check if a capability index is present
//
// returns false for out of range indices; the registry level check
// reports those as an error before consulting the mask
func (m Mask) Has(index int) bool {
	if index < 0 || index >= IndexLimit {
		return false
	}
	return 0 != m[index>>6]&(1<<uint(index&63))
}

// Set - add a capability index to the mask
func (m *Mask) Set(index int) {
	if index < 0 || index >= IndexLimit {
		return
	}
	m[index>>6] |= 1 << uint(index&63)
}

// Clear - remove a capability index from the mask
func (m *Mask) Clear(index int) {
	if index < 0 || index >= IndexLimit {
		return
	}
	m[index>>6] &^= 1 << uint(index&63)
}

// IsZero - check if no capability is granted
func (m Mask) IsZero() bool {
	return 0 == m[0]|m[1]|m[2]|m[3]
}

// Bytes - the packed binary form: words in index order, each big endian
//
// this layout is a compatibility requirement for systems that already
// hold permission data, so it must never change
func (m Mask) Bytes() []byte {
	buffer := make([]byte, MaskBytesLength)
	for i := 0; i < 4; i += 1 {
		binary.BigEndian.PutUint64(buffer[8*i:], m[i])
	}
	return buffer
}

// MaskFromBytes - unpack the binary form
func MaskFromBytes(buffer []byte) (Mask, error) {
	var m Mask
	if MaskBytesLength != len(buffer) {
		return m, fault.InvalidItem
	}
	for i := 0; i < 4; i += 1 {
		m[i] = binary.BigEndian.Uint64(buffer[8*i:])
	}
	return m, nil
}

// MarshalText - for JSON encoding
func (m Mask) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(MaskBytesLength))
	hex.Encode(buffer, m.Bytes())
	return buffer, nil
}

// UnmarshalText - for JSON decoding
func (m *Mask) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	decoded, err := MaskFromBytes(buffer[:byteCount])
	if nil != err {
		return err
	}
	*m = decoded
	return nil
}
