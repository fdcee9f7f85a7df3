// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/storage"
	"github.com/fundpool/treasuryd/token"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func setup(t *testing.T) *token.Factory {
	removeFiles()
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		t.Fatalf("logger setup failed: %s", err)
	}

	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("storage setup failed: %s", err)
	}

	return token.NewFactory(storage.Pool.TokenBalances, storage.Pool.TokenMeta)
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func makeAccount(t *testing.T) *account.Account {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return &account.Account{
		Test:      true,
		PublicKey: []byte(publicKey),
	}
}

func TestMintBurn(t *testing.T) {
	factory := setup(t)
	defer teardown(t)

	holder := makeAccount(t)

	instance, err := factory.Create(1, "Fund Token", "FT")
	assert.Nil(t, err, "create error")
	assert.Equal(t, "Fund Token", instance.Name(), "wrong name")
	assert.Equal(t, "FT", instance.Symbol(), "wrong symbol")

	assert.Equal(t, fault.ZeroAmount, instance.Mint(holder, 0), "zero mint accepted")
	assert.Nil(t, instance.Mint(holder, 100), "mint error")

	balance, err := instance.BalanceOf(holder)
	assert.Nil(t, err, "balance error")
	assert.Equal(t, uint64(100), balance, "wrong balance")

	supply, err := instance.TotalSupply()
	assert.Nil(t, err, "supply error")
	assert.Equal(t, uint64(100), supply, "wrong supply")

	assert.Equal(t, fault.InsufficientFunds, instance.Burn(holder, 101), "overdrawn burn accepted")
	assert.Nil(t, instance.Burn(holder, 40), "burn error")

	balance, _ = instance.BalanceOf(holder)
	supply, _ = instance.TotalSupply()
	assert.Equal(t, uint64(60), balance, "wrong balance after burn")
	assert.Equal(t, uint64(60), supply, "wrong supply after burn")
}

func TestTransfer(t *testing.T) {
	factory := setup(t)
	defer teardown(t)

	from := makeAccount(t)
	to := makeAccount(t)

	instance, err := factory.Create(1, "Fund Token", "FT")
	assert.Nil(t, err, "create error")
	assert.Nil(t, instance.Mint(from, 100), "mint error")

	hosted := instance.(*token.Token)
	assert.Equal(t, fault.ZeroAddress, hosted.Transfer(from, nil, 10), "nil recipient accepted")
	assert.Equal(t, fault.SelfTransfer, hosted.Transfer(from, from, 10), "self transfer accepted")
	assert.Equal(t, fault.InsufficientFunds, hosted.Transfer(from, to, 101), "overdrawn transfer accepted")

	assert.Nil(t, hosted.Transfer(from, to, 30), "transfer error")

	sent, _ := instance.BalanceOf(from)
	received, _ := instance.BalanceOf(to)
	supply, _ := instance.TotalSupply()
	assert.Equal(t, uint64(70), sent, "wrong sender balance")
	assert.Equal(t, uint64(30), received, "wrong recipient balance")
	assert.Equal(t, uint64(100), supply, "transfer changed the supply")
}

func TestOwnership(t *testing.T) {
	factory := setup(t)
	defer teardown(t)

	newOwner := makeAccount(t)

	instance, err := factory.Create(1, "Fund Token", "FT")
	assert.Nil(t, err, "create error")

	hosted := instance.(*token.Token)
	owner, err := hosted.Owner()
	assert.Nil(t, err, "owner error")
	assert.Nil(t, owner, "fresh token already owned")

	assert.Equal(t, fault.ZeroAddress, instance.TransferOwnership(nil), "nil owner accepted")
	assert.Nil(t, instance.TransferOwnership(newOwner), "transfer error")

	owner, err = hosted.Owner()
	assert.Nil(t, err, "owner error")
	assert.True(t, newOwner.SameAs(owner), "wrong owner")
}

func TestFactoryReload(t *testing.T) {
	factory := setup(t)
	defer teardown(t)

	holder := makeAccount(t)

	_, err := factory.Load(1, "Fund Token", "FT")
	assert.Equal(t, fault.NotIssued, err, "load before create accepted")

	instance, err := factory.Create(1, "Fund Token", "FT")
	assert.Nil(t, err, "create error")
	assert.Nil(t, instance.Mint(holder, 55), "mint error")

	_, err = factory.Create(1, "Other", "OT")
	assert.Equal(t, fault.AlreadyIssued, err, "duplicate create accepted")

	_, err = factory.Load(1, "Wrong", "FT")
	assert.NotNil(t, err, "descriptor mismatch accepted")

	reloaded, err := factory.Load(1, "Fund Token", "FT")
	assert.Nil(t, err, "load error")

	balance, _ := reloaded.BalanceOf(holder)
	assert.Equal(t, uint64(55), balance, "balance lost across reload")

	// instances are isolated per entity
	other, err := factory.Create(2, "Second", "S2")
	assert.Nil(t, err, "create error")
	balance, _ = other.BalanceOf(holder)
	assert.Equal(t, uint64(0), balance, "balance leaked between entities")
}
