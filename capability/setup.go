// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/storage"
)

// globals
type globalDataType struct {
	sync.RWMutex
	log    *logger.L
	grants *storage.PoolHandle

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// Initialise - connect the registry to its storage pool
func Initialise(grants *storage.PoolHandle) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("capability")
	globalData.log.Info("starting…")

	globalData.grants = grants

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
