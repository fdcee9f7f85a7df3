// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/util"
)

// Token - minimal contract of an external fungible token instance
//
// the ledger treats the instance as opaque: it calls it only as the
// final step of a mutation, after its own records are committed
type Token interface {
	Mint(holder *account.Account, amount uint64) error
	Burn(holder *account.Account, amount uint64) error
	BalanceOf(holder *account.Account) (uint64, error)
	TotalSupply() (uint64, error)
	TransferOwnership(newOwner *account.Account) error
	Name() string
	Symbol() string
}

// TokenFactory - issuance hook creating and reattaching external
// token instances
//
// Create is called once per Issue; Load reattaches the instances
// recorded in the database when the daemon restarts
type TokenFactory interface {
	Create(entity uint64, name string, symbol string) (Token, error)
	Load(entity uint64, name string, symbol string) (Token, error)
}

// issue record stored in the Tokens pool: length prefixed name and
// symbol, both Varint64
func packTokenRecord(name string, symbol string) []byte {
	buffer := util.ToVarint64(uint64(len(name)))
	buffer = append(buffer, name...)
	buffer = append(buffer, util.ToVarint64(uint64(len(symbol)))...)
	return append(buffer, symbol...)
}

func unpackString(buffer []byte, offset int) (string, int, error) {
	length, count := util.FromVarint64(buffer[offset:])
	if 0 == count {
		return "", 0, fault.InvalidItem
	}
	offset += count
	if length > uint64(len(buffer)-offset) {
		return "", 0, fault.InvalidItem
	}
	end := offset + int(length)
	return string(buffer[offset:end]), end, nil
}

func unpackTokenRecord(buffer []byte) (string, string, error) {
	name, offset, err := unpackString(buffer, 0)
	if nil != err {
		return "", "", err
	}
	symbol, offset, err := unpackString(buffer, offset)
	if nil != err {
		return "", "", err
	}
	if offset != len(buffer) {
		return "", "", fault.InvalidItem
	}
	return name, symbol, nil
}
