// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splits

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/directory"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/storage"
)

// globals
type globalDataType struct {
	sync.RWMutex
	log       *logger.L
	splits    *storage.PoolHandle
	directory directory.Directory

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - connect the registry to its storage pool and the role
// directory
func Initialise(splitsPool *storage.PoolHandle, dir directory.Directory) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("splits")
	globalData.log.Info("starting…")

	globalData.splits = splitsPool
	globalData.directory = dir

	globalData.initialised = true
	return nil
}

// Finalise - shut down the registry
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}
