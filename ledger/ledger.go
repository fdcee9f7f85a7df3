// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/capability"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/messagebus"
	"github.com/fundpool/treasuryd/storage"
)

// representation markers carried in mint notifications
const (
	representationUnclaimed = 0x00
	representationClaimed   = 0x01
)

func entityKey(entity uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, entity)
	return key
}

// unclaimed balance key: entity ++ holder
func holderKey(entity uint64, holder *account.Account) []byte {
	key := make([]byte, 8, 8+account.AccountBytesLength)
	binary.BigEndian.PutUint64(key, entity)
	return append(key, holder.Bytes()...)
}

func amountBytes(amount uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, amount)
	return buffer
}

// read helpers; missing records read as zero
func unclaimedBalance(entity uint64, holder *account.Account) uint64 {
	n, _ := globalData.pools.Unclaimed.GetN(holderKey(entity, holder))
	return n
}

func unclaimedTotal(entity uint64) uint64 {
	n, _ := globalData.pools.UnclaimedTotal.GetN(entityKey(entity))
	return n
}

// store a balance, deleting the record when it reaches zero
func putBalance(trx *storage.Transaction, pool *storage.PoolHandle, key []byte, balance uint64) {
	if 0 == balance {
		trx.Delete(pool, key)
	} else {
		trx.PutN(pool, key, balance)
	}
}

// a token interaction failing after the ledger records are committed
// leaves the two representations out of step; nothing can repair that
// so the daemon halts
func interact(operation string, entity uint64, err error) {
	if nil != err {
		globalData.log.Criticalf("%s: entity: %d  post-commit token failure: %s", operation, entity, err)
		logger.Panicf("%s: representations diverged for entity: %d", operation, entity)
	}
}

// Issue - attach a freshly created external token to an entity
//
// the caller must be the entity's owner or hold its issue capability;
// an entity can only ever hold one external token at a time
func Issue(caller *account.Account, entity uint64, name string, symbol string) (Token, error) {

	if nil == caller {
		return nil, fault.InvalidItem
	}
	if "" == name {
		return nil, fault.EmptyName
	}
	if "" == symbol {
		return nil, fault.EmptySymbol
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	owner, err := globalData.directory.OwnerOf(entity)
	if nil != err {
		return nil, err
	}
	err = capability.Require(caller, owner, entity, capability.Issue)
	if nil != err {
		return nil, err
	}

	if _, ok := globalData.tokens[entity]; ok {
		return nil, fault.AlreadyIssued
	}

	token, err := globalData.factory.Create(entity, name, symbol)
	if nil != err {
		return nil, err
	}

	globalData.pools.Tokens.Put(entityKey(entity), packTokenRecord(name, symbol))
	globalData.tokens[entity] = token

	globalData.log.Infof("issue: entity: %d  name: %q  symbol: %q", entity, name, symbol)

	messagebus.Bus.Broadcast.Send("issue",
		entityKey(entity),
		[]byte(name),
		[]byte(symbol),
		caller.Bytes(),
	)

	return token, nil
}

// ChangeToken - swap the entity's external token reference
//
// the previous instance keeps its balances; when newOwner is supplied
// the previous instance's administrative ownership is handed to it,
// which cannot be undone. a nil newToken detaches the entity from any
// external representation
func ChangeToken(caller *account.Account, entity uint64, newToken Token, newOwner *account.Account) error {

	if nil == caller {
		return fault.InvalidItem
	}

	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	owner, err := globalData.directory.OwnerOf(entity)
	if nil != err {
		globalData.Unlock()
		return err
	}
	err = capability.Require(caller, owner, entity, capability.ChangeToken)
	if nil != err {
		globalData.Unlock()
		return err
	}

	previous := globalData.tokens[entity]

	name := []byte(nil)
	symbol := []byte(nil)
	if nil == newToken {
		globalData.pools.Tokens.Delete(entityKey(entity))
		delete(globalData.tokens, entity)
	} else {
		name = []byte(newToken.Name())
		symbol = []byte(newToken.Symbol())
		globalData.pools.Tokens.Put(entityKey(entity), packTokenRecord(string(name), string(symbol)))
		globalData.tokens[entity] = newToken
	}

	globalData.log.Infof("swap: entity: %d  name: %q  symbol: %q", entity, name, symbol)

	messagebus.Bus.Broadcast.Send("swap",
		entityKey(entity),
		name,
		symbol,
		caller.Bytes(),
	)
	globalData.Unlock()

	if nil != newOwner && nil != previous {
		interact("swap", entity, previous.TransferOwnership(newOwner))
	}
	return nil
}

// Mint - create amount new tokens for a holder
//
// controller only. the external representation is used when a token
// exists and either the entity requires claimed balances or the
// controller asked for it; otherwise the unclaimed pool grows
func Mint(caller *account.Account, holder *account.Account, entity uint64, amount uint64, preferClaimed bool) error {

	if nil == caller || nil == holder {
		return fault.InvalidItem
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	ok, err := globalData.directory.IsController(entity, caller)
	if nil != err {
		globalData.Unlock()
		return err
	}
	if !ok {
		globalData.Unlock()
		return fault.Unauthorized
	}

	token := globalData.tokens[entity]
	requireClaim := globalData.pools.RequireClaim.Has(entityKey(entity))

	claimed := nil != token && (requireClaim || preferClaimed)
	representation := byte(representationUnclaimed)

	if claimed {
		representation = representationClaimed
	} else {
		trx := storage.NewTransaction()
		putBalance(trx, globalData.pools.Unclaimed, holderKey(entity, holder),
			unclaimedBalance(entity, holder)+amount)
		putBalance(trx, globalData.pools.UnclaimedTotal, entityKey(entity),
			unclaimedTotal(entity)+amount)
		if err := trx.Commit(); nil != err {
			globalData.Unlock()
			return err
		}
	}

	globalData.log.Infof("mint: entity: %d  holder: %s  amount: %d  claimed: %t",
		entity, holder, amount, claimed)

	messagebus.Bus.Broadcast.Send("mint",
		entityKey(entity),
		holder.Bytes(),
		amountBytes(amount),
		[]byte{representation},
		caller.Bytes(),
	)
	globalData.Unlock()

	if claimed {
		interact("mint", entity, token.Mint(holder, amount))
	}
	return nil
}

// Burn - destroy amount of a holder's tokens
//
// controller only. the amount may straddle both representations; the
// claimed share is zero when the external balance is empty, the whole
// external balance up to amount when the controller prefers claimed,
// and otherwise only the excess the unclaimed pool cannot cover
func Burn(caller *account.Account, holder *account.Account, entity uint64, amount uint64, preferClaimed bool) error {

	if nil == caller || nil == holder {
		return fault.InvalidItem
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	ok, err := globalData.directory.IsController(entity, caller)
	if nil != err {
		globalData.Unlock()
		return err
	}
	if !ok {
		globalData.Unlock()
		return fault.Unauthorized
	}

	token := globalData.tokens[entity]
	claimed := uint64(0)
	if nil != token {
		claimed, err = token.BalanceOf(holder)
		if nil != err {
			globalData.Unlock()
			return err
		}
	}
	unclaimed := unclaimedBalance(entity, holder)

	// feasibility without overflowing claimed + unclaimed
	if !(amount <= claimed || amount <= unclaimed || amount-claimed <= unclaimed) {
		globalData.Unlock()
		return fault.InsufficientFunds
	}

	claimedShare := uint64(0)
	if 0 != claimed {
		if preferClaimed {
			claimedShare = amount
			if claimed < amount {
				claimedShare = claimed
			}
		} else if amount > unclaimed {
			claimedShare = amount - unclaimed
		}
	}
	unclaimedShare := amount - claimedShare

	if 0 != unclaimedShare {
		trx := storage.NewTransaction()
		putBalance(trx, globalData.pools.Unclaimed, holderKey(entity, holder),
			unclaimed-unclaimedShare)
		putBalance(trx, globalData.pools.UnclaimedTotal, entityKey(entity),
			unclaimedTotal(entity)-unclaimedShare)
		if err := trx.Commit(); nil != err {
			globalData.Unlock()
			return err
		}
	}

	globalData.log.Infof("burn: entity: %d  holder: %s  claimed: %d  unclaimed: %d",
		entity, holder, claimedShare, unclaimedShare)

	messagebus.Bus.Broadcast.Send("burn",
		entityKey(entity),
		holder.Bytes(),
		amountBytes(claimedShare),
		amountBytes(unclaimedShare),
		caller.Bytes(),
	)
	globalData.Unlock()

	if 0 != claimedShare {
		interact("burn", entity, token.Burn(holder, claimedShare))
	}
	return nil
}

// Claim - convert a holder's unclaimed balance into the external
// representation
//
// open to any caller: claiming only ever benefits the holder, so no
// authorization applies. net zero to every observable aggregate
func Claim(caller *account.Account, holder *account.Account, entity uint64, amount uint64) error {

	if nil == caller || nil == holder {
		return fault.InvalidItem
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	globalData.Lock()

	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}

	token := globalData.tokens[entity]
	if nil == token {
		globalData.Unlock()
		return fault.NotIssued
	}

	unclaimed := unclaimedBalance(entity, holder)
	if unclaimed < amount {
		globalData.Unlock()
		return fault.InsufficientFunds
	}

	trx := storage.NewTransaction()
	putBalance(trx, globalData.pools.Unclaimed, holderKey(entity, holder), unclaimed-amount)
	putBalance(trx, globalData.pools.UnclaimedTotal, entityKey(entity), unclaimedTotal(entity)-amount)
	if err := trx.Commit(); nil != err {
		globalData.Unlock()
		return err
	}

	globalData.log.Infof("claim: entity: %d  holder: %s  amount: %d", entity, holder, amount)

	messagebus.Bus.Broadcast.Send("claim",
		entityKey(entity),
		holder.Bytes(),
		amountBytes(amount),
		caller.Bytes(),
	)
	globalData.Unlock()

	interact("claim", entity, token.Mint(holder, amount))
	return nil
}

// TransferUnclaimed - move unclaimed balance between holders
//
// the caller must be the holder or hold its transfer capability; the
// unclaimed total is untouched
func TransferUnclaimed(caller *account.Account, recipient *account.Account, holder *account.Account, entity uint64, amount uint64) error {

	if nil == caller || nil == holder {
		return fault.InvalidItem
	}
	if nil == recipient {
		return fault.ZeroAddress
	}
	if recipient.SameAs(holder) {
		return fault.SelfTransfer
	}
	if 0 == amount {
		return fault.ZeroAmount
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	err := capability.Require(caller, holder, entity, capability.Transfer)
	if nil != err {
		return err
	}

	balance := unclaimedBalance(entity, holder)
	if balance < amount {
		return fault.InsufficientFunds
	}

	trx := storage.NewTransaction()
	putBalance(trx, globalData.pools.Unclaimed, holderKey(entity, holder), balance-amount)
	putBalance(trx, globalData.pools.Unclaimed, holderKey(entity, recipient),
		unclaimedBalance(entity, recipient)+amount)
	if err := trx.Commit(); nil != err {
		return err
	}

	globalData.log.Infof("transfer: entity: %d  holder: %s  recipient: %s  amount: %d",
		entity, holder, recipient, amount)

	messagebus.Bus.Broadcast.Send("transfer",
		entityKey(entity),
		holder.Bytes(),
		recipient.Bytes(),
		amountBytes(amount),
		caller.Bytes(),
	)
	return nil
}

// SetRequireClaim - flip the per-entity flag forcing mints into the
// external representation
func SetRequireClaim(caller *account.Account, entity uint64, flag bool) error {

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
	err = capability.Require(caller, owner, entity, capability.RequireClaim)
	if nil != err {
		return err
	}

	if flag {
		globalData.pools.RequireClaim.Put(entityKey(entity), []byte{0x01})
	} else {
		globalData.pools.RequireClaim.Delete(entityKey(entity))
	}

	globalData.log.Infof("require claim: entity: %d  flag: %t", entity, flag)

	value := byte(0x00)
	if flag {
		value = 0x01
	}
	messagebus.Bus.Broadcast.Send("require-claim",
		entityKey(entity),
		[]byte{value},
		caller.Bytes(),
	)
	return nil
}

// TotalSupply - unclaimed total plus the external token's supply
func TotalSupply(entity uint64) (uint64, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	total := unclaimedTotal(entity)
	if token, ok := globalData.tokens[entity]; ok {
		external, err := token.TotalSupply()
		if nil != err {
			return 0, err
		}
		total += external
	}
	return total, nil
}

// BalanceOf - a holder's unclaimed balance plus their external token
// balance
func BalanceOf(holder *account.Account, entity uint64) (uint64, error) {

	if nil == holder {
		return 0, fault.InvalidItem
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	balance := unclaimedBalance(entity, holder)
	if token, ok := globalData.tokens[entity]; ok {
		external, err := token.BalanceOf(holder)
		if nil != err {
			return 0, err
		}
		balance += external
	}
	return balance, nil
}

// UnclaimedBalanceOf - the internally tracked part only
func UnclaimedBalanceOf(holder *account.Account, entity uint64) (uint64, error) {

	if nil == holder {
		return 0, fault.InvalidItem
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}

	return unclaimedBalance(entity, holder), nil
}

// IsIssued - check whether the entity has an external token attached
func IsIssued(entity uint64) (bool, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	_, ok := globalData.tokens[entity]
	return ok, nil
}

// RequiresClaim - read the per-entity requireClaim flag
func RequiresClaim(entity uint64) (bool, error) {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	return globalData.pools.RequireClaim.Has(entityKey(entity)), nil
}
