// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundpool/treasuryd/configuration"
	"github.com/fundpool/treasuryd/fault"
)

type testConfiguration struct {
	DataDirectory string   `gluamapper:"data_directory"`
	Network       string   `gluamapper:"network"`
	Listen        []string `gluamapper:"listen"`
	Maximum       int      `gluamapper:"maximum"`
}

const luaScript = `
local M = {}

M.data_directory = arg[0] .. ".data"
M.network = "testing"
M.listen = {
    "127.0.0.1:2135",
    "[::1]:2135",
}
M.maximum = 10 + 6

return M
`

func TestParseConfigurationFile(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "treasuryd.conf")
	err = ioutil.WriteFile(fileName, []byte(luaScript), 0600)
	assert.Nil(t, err, "write error")

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	// the script sees its own path through arg[0]
	assert.Equal(t, fileName+".data", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "testing", config.Network, "wrong network")
	assert.Equal(t, []string{"127.0.0.1:2135", "[::1]:2135"}, config.Listen, "wrong listen list")
	assert.Equal(t, 16, config.Maximum, "computed value wrong")

	// a broken script must error, not panic
	err = ioutil.WriteFile(fileName, []byte("this is not lua"), 0600)
	assert.Nil(t, err, "write error")
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.NotNil(t, err, "broken script accepted")

	// only pointers to structs are acceptable targets
	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.InvalidStructPointer, err, "non-pointer accepted")
}
