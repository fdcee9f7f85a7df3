// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"
	"sync"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/storage"
	"github.com/fundpool/treasuryd/util"
)

// meta record key suffixes inside the meta pool
const (
	supplySuffix = 'S'
	ownerSuffix  = 'O'
)

// Token - one hosted fungible token
//
// safe for concurrent use; every mutation commits as one batch
type Token struct {
	sync.Mutex
	entity   uint64
	name     string
	symbol   string
	balances *storage.PoolHandle
	meta     *storage.PoolHandle
}

func entityKey(entity uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, entity)
	return key
}

func metaKey(entity uint64, suffix byte) []byte {
	return append(entityKey(entity), suffix)
}

func balanceKey(entity uint64, holder *account.Account) []byte {
	key := make([]byte, 8, 8+account.AccountBytesLength)
	binary.BigEndian.PutUint64(key, entity)
	return append(key, holder.Bytes()...)
}

// the stored descriptor: length prefixed name and symbol
func packDescriptor(name string, symbol string) []byte {
	buffer := util.ToVarint64(uint64(len(name)))
	buffer = append(buffer, name...)
	buffer = append(buffer, util.ToVarint64(uint64(len(symbol)))...)
	return append(buffer, symbol...)
}

func unpackDescriptor(buffer []byte) (string, string, error) {
	nameLength, count := util.FromVarint64(buffer)
	if 0 == count {
		return "", "", fault.InvalidItem
	}
	offset := count
	if nameLength > uint64(len(buffer)-offset) {
		return "", "", fault.InvalidItem
	}
	name := string(buffer[offset : offset+int(nameLength)])
	offset += int(nameLength)

	symbolLength, count := util.FromVarint64(buffer[offset:])
	if 0 == count {
		return "", "", fault.InvalidItem
	}
	offset += count
	if uint64(len(buffer)-offset) != symbolLength {
		return "", "", fault.InvalidItem
	}
	return name, string(buffer[offset:]), nil
}

// Name - the token's display name
func (t *Token) Name() string {
	return t.name
}

// Symbol - the token's ticker symbol
func (t *Token) Symbol() string {
	return t.symbol
}

// Mint - create amount for a holder
func (t *Token) Mint(holder *account.Account, amount uint64) error {

	if nil == holder {
		return fault.InvalidItem
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	t.Lock()
	defer t.Unlock()

	balance, _ := t.balances.GetN(balanceKey(t.entity, holder))
	supply, _ := t.meta.GetN(metaKey(t.entity, supplySuffix))

	trx := storage.NewTransaction()
	trx.PutN(t.balances, balanceKey(t.entity, holder), balance+amount)
	trx.PutN(t.meta, metaKey(t.entity, supplySuffix), supply+amount)
	return trx.Commit()
}

// Burn - destroy amount of a holder's balance
func (t *Token) Burn(holder *account.Account, amount uint64) error {

	if nil == holder {
		return fault.InvalidItem
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	t.Lock()
	defer t.Unlock()

	key := balanceKey(t.entity, holder)
	balance, _ := t.balances.GetN(key)
	if balance < amount {
		return fault.InsufficientFunds
	}
	supply, _ := t.meta.GetN(metaKey(t.entity, supplySuffix))

	trx := storage.NewTransaction()
	if balance == amount {
		trx.Delete(t.balances, key)
	} else {
		trx.PutN(t.balances, key, balance-amount)
	}
	trx.PutN(t.meta, metaKey(t.entity, supplySuffix), supply-amount)
	return trx.Commit()
}

// Transfer - move balance between two holders
//
// not part of the ledger's contract; exposed for direct holders of
// the claimed representation
func (t *Token) Transfer(from *account.Account, to *account.Account, amount uint64) error {

	if nil == from {
		return fault.InvalidItem
	}
	if nil == to {
		return fault.ZeroAddress
	}
	if to.SameAs(from) {
		return fault.SelfTransfer
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	t.Lock()
	defer t.Unlock()

	fromKey := balanceKey(t.entity, from)
	balance, _ := t.balances.GetN(fromKey)
	if balance < amount {
		return fault.InsufficientFunds
	}
	toKey := balanceKey(t.entity, to)
	received, _ := t.balances.GetN(toKey)

	trx := storage.NewTransaction()
	if balance == amount {
		trx.Delete(t.balances, fromKey)
	} else {
		trx.PutN(t.balances, fromKey, balance-amount)
	}
	trx.PutN(t.balances, toKey, received+amount)
	return trx.Commit()
}

// BalanceOf - a holder's balance
func (t *Token) BalanceOf(holder *account.Account) (uint64, error) {
	if nil == holder {
		return 0, fault.InvalidItem
	}
	balance, _ := t.balances.GetN(balanceKey(t.entity, holder))
	return balance, nil
}

// TotalSupply - the sum of all balances
func (t *Token) TotalSupply() (uint64, error) {
	supply, _ := t.meta.GetN(metaKey(t.entity, supplySuffix))
	return supply, nil
}

// Owner - the current administrative owner, nil when never set
func (t *Token) Owner() (*account.Account, error) {
	packed := t.meta.Get(metaKey(t.entity, ownerSuffix))
	if nil == packed {
		return nil, nil
	}
	return account.AccountFromBytes(packed)
}

// TransferOwnership - hand the administrative role to another account
func (t *Token) TransferOwnership(newOwner *account.Account) error {
	if nil == newOwner {
		return fault.ZeroAddress
	}
	t.Lock()
	defer t.Unlock()
	t.meta.Put(metaKey(t.entity, ownerSuffix), newOwner.Bytes())
	return nil
}
