// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/ledger"
	"github.com/fundpool/treasuryd/storage"
)

// Factory - creates and reattaches hosted token instances
type Factory struct {
	log      *logger.L
	balances *storage.PoolHandle
	meta     *storage.PoolHandle
}

// NewFactory - a factory writing to the supplied pools
func NewFactory(balances *storage.PoolHandle, meta *storage.PoolHandle) *Factory {
	return &Factory{
		log:      logger.New("token"),
		balances: balances,
		meta:     meta,
	}
}

// Create - mint a brand new token with an empty book
func (f *Factory) Create(entity uint64, name string, symbol string) (ledger.Token, error) {

	key := entityKey(entity)
	if f.meta.Has(key) {
		return nil, fault.AlreadyIssued
	}
	f.meta.Put(key, packDescriptor(name, symbol))

	f.log.Infof("create: entity: %d  name: %q  symbol: %q", entity, name, symbol)

	return &Token{
		entity:   entity,
		name:     name,
		symbol:   symbol,
		balances: f.balances,
		meta:     f.meta,
	}, nil
}

// Load - reattach a previously created token
//
// the stored descriptor must agree with the issue record, otherwise
// the database has been tampered with
func (f *Factory) Load(entity uint64, name string, symbol string) (ledger.Token, error) {

	packed := f.meta.Get(entityKey(entity))
	if nil == packed {
		return nil, fault.NotIssued
	}
	storedName, storedSymbol, err := unpackDescriptor(packed)
	if nil != err {
		return nil, err
	}
	if storedName != name || storedSymbol != symbol {
		f.log.Criticalf("load: entity: %d  descriptor mismatch: %q/%q != %q/%q",
			entity, storedName, storedSymbol, name, symbol)
		return nil, fault.InvalidItem
	}

	return &Token{
		entity:   entity,
		name:     name,
		symbol:   symbol,
		balances: f.balances,
		meta:     f.meta,
	}, nil
}
