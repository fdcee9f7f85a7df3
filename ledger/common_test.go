// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/ed25519"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/capability"
	"github.com/fundpool/treasuryd/directory"
	"github.com/fundpool/treasuryd/ledger"
	"github.com/fundpool/treasuryd/mocks"
	"github.com/fundpool/treasuryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func setup(t *testing.T, dir directory.Directory, factory ledger.TokenFactory) {
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

	if err := capability.Initialise(storage.Pool.Grants); nil != err {
		t.Fatalf("capability setup failed: %s", err)
	}

	if err := ledger.Initialise(handles(), dir, factory); nil != err {
		t.Fatalf("ledger setup failed: %s", err)
	}
}

func handles() ledger.Handles {
	return ledger.Handles{
		Unclaimed:      storage.Pool.Unclaimed,
		UnclaimedTotal: storage.Pool.UnclaimedTotal,
		Tokens:         storage.Pool.Tokens,
		RequireClaim:   storage.Pool.RequireClaim,
	}
}

func teardown(t *testing.T) {
	if err := ledger.Finalise(); nil != err {
		t.Errorf("ledger finalise failed: %s", err)
	}
	if err := capability.Finalise(); nil != err {
		t.Errorf("capability finalise failed: %s", err)
	}
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

// a directory mock answering every lookup for one entity
func makeDirectory(ctl *gomock.Controller, entity uint64, owner *account.Account, controller *account.Account) *mocks.MockDirectory {
	dir := mocks.NewMockDirectory(ctl)
	dir.EXPECT().OwnerOf(entity).Return(owner, nil).AnyTimes()
	dir.EXPECT().TerminalOf(entity).Return(nil, nil).AnyTimes()
	dir.EXPECT().IsController(entity, gomock.Any()).DoAndReturn(
		func(_ uint64, caller *account.Account) (bool, error) {
			return nil != controller && controller.SameAs(caller), nil
		}).AnyTimes()
	return dir
}

// a factory mock that never issues
func emptyFactory(ctl *gomock.Controller) *mocks.MockTokenFactory {
	return mocks.NewMockTokenFactory(ctl)
}
