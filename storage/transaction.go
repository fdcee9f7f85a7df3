// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - a batch of writes across several pools that commits
// all-or-nothing
//
// reads issued while a transaction is being built see the database
// state from before the transaction; nothing becomes visible until
// Commit succeeds
type Transaction struct {
	batch   *leveldb.Batch
	pending []pendingWrite
}

type pendingWrite struct {
	op    dbOperation
	key   string
	value []byte
}

// NewTransaction - create an empty transaction
func NewTransaction() *Transaction {
	return &Transaction{
		batch: new(leveldb.Batch),
	}
}

// Put - queue a key/value store into a pool
func (trx *Transaction) Put(pool *PoolHandle, key []byte, value []byte) {
	prefixed := pool.prefixKey(key)
	trx.batch.Put(prefixed, value)
	trx.pending = append(trx.pending, pendingWrite{
		op:    dbPut,
		key:   string(prefixed),
		value: value,
	})
}

// PutN - queue a uint64 store into a pool as an 8 byte big endian record
func (trx *Transaction) PutN(pool *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	trx.Put(pool, key, buffer)
}

// Delete - queue a key removal from a pool
func (trx *Transaction) Delete(pool *PoolHandle, key []byte) {
	prefixed := pool.prefixKey(key)
	trx.batch.Delete(prefixed)
	trx.pending = append(trx.pending, pendingWrite{
		op:  dbDelete,
		key: string(prefixed),
	})
}

// Commit - atomically apply all queued writes
func (trx *Transaction) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("transaction.Commit nil database")
		return nil
	}

	err := poolData.db.Write(trx.batch, nil)
	if nil != err {
		return err
	}

	// bring the cache in line with the committed state
	for _, w := range trx.pending {
		poolData.cache.Set(w.op, w.key, w.value)
	}
	return nil
}
