// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/mode"
)

const testingDirName = "testing"

func setup(t *testing.T, networkName string) {

	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir: %s", err)
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
		t.Fatalf("logger: %s", err)
	}

	if err := mode.Initialise(networkName); nil != err {
		t.Fatalf("mode: %s", err)
	}
}

func teardown() {
	mode.Finalise()
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func TestStartsInStarting(t *testing.T) {
	setup(t, "testing")
	defer teardown()

	assert.True(t, mode.Is(mode.Starting), "not in starting mode")
	assert.True(t, mode.IsNot(mode.Normal), "unexpected normal mode")
	assert.Equal(t, "Starting", mode.String(), "wrong mode name")
}

func TestSetNormal(t *testing.T) {
	setup(t, "testing")
	defer teardown()

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "not in normal mode")
	assert.Equal(t, "Normal", mode.String(), "wrong mode name")
}

func TestNetworkFlags(t *testing.T) {
	setup(t, "testing")
	defer teardown()

	assert.True(t, mode.IsTesting(), "not a testing network")
	assert.Equal(t, "testing", mode.NetworkName(), "wrong network name")
}

func TestLiveNetwork(t *testing.T) {
	setup(t, "live")
	defer teardown()

	assert.False(t, mode.IsTesting(), "live network marked testing")
}

func TestInvalidNetwork(t *testing.T) {
	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir: %s", err)
	}
	defer os.RemoveAll(testingDirName)

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
		t.Fatalf("logger: %s", err)
	}
	defer logger.Finalise()

	err := mode.Initialise("no-such-network")
	assert.Equal(t, fault.InvalidItem, err, "wrong error")
}
