// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundpool/treasuryd/splits"
)

func TestEntryCodec(t *testing.T) {
	beneficiary := makeAccount(t)
	allocator := makeAccount(t)

	entries := []splits.Entry{
		{Percent: 1, Beneficiary: beneficiary},
		{Percent: 9999, LockedUntil: 1893456000, Allocator: allocator, PreferClaimed: true},
		{Percent: 500, Beneficiary: beneficiary, Allocator: allocator, Redirect: 1 << 40},
	}

	decoded, err := splits.Unpack(splits.Pack(entries))
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(entries), len(decoded), "entry count changed")
	for i, entry := range entries {
		assert.True(t, entry.Matches(decoded[i]), "entry %d changed", i)
		assert.Equal(t, entry.LockedUntil, decoded[i].LockedUntil, "entry %d lock changed", i)
		assert.Equal(t, entry.PreferClaimed, decoded[i].PreferClaimed, "entry %d flag changed", i)
	}

	decoded, err = splits.Unpack(splits.Pack(nil))
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, 0, len(decoded), "empty list changed")
}

func TestEntryCodecRejectsDamage(t *testing.T) {
	beneficiary := makeAccount(t)

	packed := splits.Pack([]splits.Entry{
		{Percent: 1000, Beneficiary: beneficiary},
	})

	// truncation anywhere must error, never panic
	for cut := 0; cut < len(packed); cut += 1 {
		_, err := splits.Unpack(packed[:cut])
		assert.NotNil(t, err, "truncation at %d accepted", cut)
	}

	// trailing garbage
	_, err := splits.Unpack(append(append([]byte{}, packed...), 0x00))
	assert.NotNil(t, err, "trailing byte accepted")

	// unknown flag bits
	damaged := append([]byte{}, packed...)
	damaged[1] |= 0x80
	_, err = splits.Unpack(damaged)
	assert.NotNil(t, err, "unknown flags accepted")
}

func TestEntryMatches(t *testing.T) {
	first := makeAccount(t)
	second := makeAccount(t)

	base := splits.Entry{Percent: 100, Beneficiary: first, Redirect: 5}

	assert.True(t, base.Matches(base), "entry does not match itself")
	assert.True(t, base.Matches(splits.Entry{Percent: 100, Beneficiary: first, Redirect: 5, LockedUntil: 99, PreferClaimed: true}),
		"lock and preference included in structural match")

	assert.False(t, base.Matches(splits.Entry{Percent: 101, Beneficiary: first, Redirect: 5}), "percent ignored")
	assert.False(t, base.Matches(splits.Entry{Percent: 100, Beneficiary: second, Redirect: 5}), "beneficiary ignored")
	assert.False(t, base.Matches(splits.Entry{Percent: 100, Beneficiary: first, Redirect: 6}), "redirect ignored")
	assert.False(t, base.Matches(splits.Entry{Percent: 100, Beneficiary: first, Allocator: second, Redirect: 5}), "allocator ignored")
	assert.False(t, base.Matches(splits.Entry{Percent: 100, Allocator: first, Redirect: 5}), "recipient kind ignored")
}
