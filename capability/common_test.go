// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability_test

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/capability"
	"github.com/fundpool/treasuryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

func setup(t *testing.T) {
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
}

func teardown(t *testing.T) {
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

// create a random testing account
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
