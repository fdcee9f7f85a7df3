// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundpool/treasuryd/capability"
)

// bit positions must be stable across the whole index range
func TestMaskBits(t *testing.T) {

	for _, index := range []int{0, 1, 63, 64, 127, 128, 191, 192, 255} {
		var m capability.Mask
		m.Set(index)

		assert.True(t, m.Has(index), "bit %d not set", index)
		assert.False(t, m.IsZero(), "mask zero after set of %d", index)

		for _, other := range []int{0, 1, 63, 64, 127, 128, 191, 192, 255} {
			if other != index {
				assert.False(t, m.Has(other), "bit %d leaked into %d", index, other)
			}
		}

		m.Clear(index)
		assert.True(t, m.IsZero(), "mask not zero after clear of %d", index)
	}
}

// out of range indices never match and never panic
func TestMaskRange(t *testing.T) {

	m := capability.MaskOf(0, 255, 256, -1, 1000)

	assert.True(t, m.Has(0), "bit 0 missing")
	assert.True(t, m.Has(255), "bit 255 missing")
	assert.False(t, m.Has(256), "out of range index matched")
	assert.False(t, m.Has(-1), "negative index matched")
}

// the packed form is 32 bytes and round trips
func TestMaskBytes(t *testing.T) {

	m := capability.MaskOf(1, 2, 3, 77, 200)

	packed := m.Bytes()
	assert.Equal(t, capability.MaskBytesLength, len(packed), "packed length")

	decoded, err := capability.MaskFromBytes(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, m, decoded, "mask changed by round trip")

	_, err = capability.MaskFromBytes(packed[:31])
	assert.NotNil(t, err, "short buffer accepted")
}

// word layout: index 0 is the least significant bit of the first word
func TestMaskLayout(t *testing.T) {

	m := capability.MaskOf(0)
	packed := m.Bytes()
	assert.Equal(t, byte(0x01), packed[7], "bit 0 not at LSB of word 0")

	m = capability.MaskOf(64)
	packed = m.Bytes()
	assert.Equal(t, byte(0x01), packed[15], "bit 64 not at LSB of word 1")
}
