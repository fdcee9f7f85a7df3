// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

// common test setup: logging and a fresh database
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
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)")) // overwrite

	if !p.Has([]byte("key-one")) {
		t.Error("key-one missing")
	}
	if p.Has([]byte("key-remove-me")) {
		t.Error("deleted key still present")
	}

	value := p.Get([]byte("key-one"))
	if "data-one(NEW)" != string(value) {
		t.Errorf("key-one: %q  expected: %q", value, "data-one(NEW)")
	}
	if nil != p.Get([]byte("key-missing")) {
		t.Error("missing key returned data")
	}
}

// uint64 records
func TestPoolN(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	if _, ok := p.GetN([]byte("counter")); ok {
		t.Error("unset record was found")
	}

	p.PutN([]byte("counter"), 42)
	n, ok := p.GetN([]byte("counter"))
	if !ok || 42 != n {
		t.Errorf("counter: %d, %v  expected: 42, true", n, ok)
	}
}

// cursor paging across a pool
func TestCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	items := []string{"a", "b", "c", "d", "e"}
	for _, item := range items {
		p.Put([]byte(item), []byte("data-"+item))
	}

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(3)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 3 != len(first) {
		t.Fatalf("fetched: %d  expected: 3", len(first))
	}

	rest, err := cursor.Fetch(10)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if 2 != len(rest) {
		t.Fatalf("fetched: %d  expected: 2", len(rest))
	}

	all := append(first, rest...)
	for i, item := range items {
		if item != string(all[i].Key) {
			t.Errorf("%d: key: %q  expected: %q", i, all[i].Key, item)
		}
		if "data-"+item != string(all[i].Value) {
			t.Errorf("%d: value: %q  expected: %q", i, all[i].Value, "data-"+item)
		}
	}
}

// transactions commit all-or-nothing and update later reads
func TestTransaction(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	p.Put([]byte("stale"), []byte("before"))

	trx := storage.NewTransaction()
	trx.Put(p, []byte("alpha"), []byte("data-alpha"))
	trx.PutN(p, []byte("beta"), 7)
	trx.Delete(p, []byte("stale"))

	// nothing visible before commit
	if nil != p.Get([]byte("alpha")) {
		t.Error("uncommitted write visible")
	}

	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	if "data-alpha" != string(p.Get([]byte("alpha"))) {
		t.Error("alpha not committed")
	}
	if n, ok := p.GetN([]byte("beta")); !ok || 7 != n {
		t.Errorf("beta: %d, %v  expected: 7, true", n, ok)
	}
	if p.Has([]byte("stale")) {
		t.Error("stale not deleted")
	}
}

// data survives a database close and reopen
func TestPersistence(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("durable"), []byte("data"))

	storage.Finalise()
	if err := storage.Initialise(databaseFileName); nil != err {
		t.Fatalf("reopen error: %s", err)
	}

	if "data" != string(storage.Pool.TestData.Get([]byte("durable"))) {
		t.Error("data lost across restart")
	}
}
