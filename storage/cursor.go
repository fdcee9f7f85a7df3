// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/fundpool/treasuryd/fault"
)

// FetchCursor - cursor for fetching a range of elements from a pool
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor covering the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix},     // Start of key range, included in the range
			Limit: []byte{p.prefix + 1}, // Limit of key range, excluded from the range
		},
	}
}

// Seek - position the cursor at a key inside the pool
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - fetch up to count elements from the cursor position
//
// the cursor is advanced past the returned elements so repeated calls
// page through the pool
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidItem
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil, fault.NotInitialised
	}

	iter := poolData.db.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	results := make([]Element, 0, count)
	n := 0
	for iter.Next() {
		key := iter.Key()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(iter.Value()))
		copy(dataValue, iter.Value())

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break
		}
	}

	if len(results) > 0 {
		// advance the range start beyond the last returned key
		lastKey := results[len(results)-1].Key
		next := cursor.pool.prefixKey(lastKey)
		next = append(next, 0x00)
		cursor.maxRange.Start = next
	}

	return results, iter.Error()
}
