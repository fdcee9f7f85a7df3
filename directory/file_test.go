// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory_test

import (
	"crypto/rand"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/background"
	"github.com/fundpool/treasuryd/directory"
	"github.com/fundpool/treasuryd/fault"
)

const testingDirName = "testing"

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
}

func teardown(t *testing.T) {
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

type record struct {
	Owner      string `json:"owner,omitempty"`
	Terminal   string `json:"terminal,omitempty"`
	Controller string `json:"controller,omitempty"`
}

func writeDirectoryFile(t *testing.T, records map[string]record) string {
	data, err := json.Marshal(records)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	filename := filepath.Join(testingDirName, "directory.json")
	if err := ioutil.WriteFile(filename, data, 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return filename
}

func TestLookups(t *testing.T) {
	setup(t)
	defer teardown(t)

	owner := makeAccount(t)
	terminal := makeAccount(t)
	controller := makeAccount(t)
	stranger := makeAccount(t)

	filename := writeDirectoryFile(t, map[string]record{
		"1": {Owner: owner.String(), Terminal: terminal.String(), Controller: controller.String()},
		"2": {Owner: owner.String()},
	})

	d, err := directory.NewFileDirectory(filename)
	assert.Nil(t, err, "load error")

	got, err := d.OwnerOf(1)
	assert.Nil(t, err, "owner lookup error")
	assert.True(t, owner.SameAs(got), "wrong owner")

	got, err = d.TerminalOf(1)
	assert.Nil(t, err, "terminal lookup error")
	assert.True(t, terminal.SameAs(got), "wrong terminal")

	ok, err := d.IsController(1, controller)
	assert.Nil(t, err, "controller check error")
	assert.True(t, ok, "controller refused")

	ok, err = d.IsController(1, stranger)
	assert.Nil(t, err, "controller check error")
	assert.False(t, ok, "stranger accepted as controller")

	// entity 2 has neither terminal nor controller
	got, err = d.TerminalOf(2)
	assert.Nil(t, err, "terminal lookup error")
	assert.Nil(t, got, "terminal for terminal-less entity")

	ok, err = d.IsController(2, owner)
	assert.Nil(t, err, "controller check error")
	assert.False(t, ok, "owner accepted as controller")

	_, err = d.OwnerOf(99)
	assert.Equal(t, fault.EntityNotFound, err, "unknown entity accepted")
	_, err = d.TerminalOf(99)
	assert.Equal(t, fault.EntityNotFound, err, "unknown entity accepted")
	_, err = d.IsController(99, owner)
	assert.Equal(t, fault.EntityNotFound, err, "unknown entity accepted")
}

func TestRejectBadFile(t *testing.T) {
	setup(t)
	defer teardown(t)

	filename := filepath.Join(testingDirName, "directory.json")
	if err := ioutil.WriteFile(filename, []byte("not json"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	_, err := directory.NewFileDirectory(filename)
	assert.NotNil(t, err, "unparsable file accepted")

	// owner is mandatory
	filename = writeDirectoryFile(t, map[string]record{
		"1": {Terminal: makeAccount(t).String()},
	})
	_, err = directory.NewFileDirectory(filename)
	assert.NotNil(t, err, "ownerless record accepted")

	// entity ids must be decimal
	filename = writeDirectoryFile(t, map[string]record{
		"not-a-number": {Owner: makeAccount(t).String()},
	})
	_, err = directory.NewFileDirectory(filename)
	assert.NotNil(t, err, "non-numeric entity id accepted")
}

func TestHotReload(t *testing.T) {
	setup(t)
	defer teardown(t)

	firstOwner := makeAccount(t)
	secondOwner := makeAccount(t)

	filename := writeDirectoryFile(t, map[string]record{
		"7": {Owner: firstOwner.String()},
	})

	d, err := directory.NewFileDirectory(filename)
	assert.Nil(t, err, "load error")

	processes := background.Processes{d}
	watcher := background.Start(processes, nil)
	defer watcher.Stop()

	writeDirectoryFile(t, map[string]record{
		"7": {Owner: secondOwner.String()},
		"8": {Owner: firstOwner.String()},
	})

	// the watcher delivers asynchronously
	deadline := time.Now().Add(5 * time.Second)
	for {
		got, err := d.OwnerOf(7)
		if nil == err && secondOwner.SameAs(got) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("reload not observed")
		}
		time.Sleep(50 * time.Millisecond)
	}

	_, err = d.OwnerOf(8)
	assert.Nil(t, err, "new entity missing after reload")
}
