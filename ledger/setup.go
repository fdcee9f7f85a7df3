// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/directory"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/storage"
)

// Handles - the storage pools the ledger writes
type Handles struct {
	Unclaimed      *storage.PoolHandle
	UnclaimedTotal *storage.PoolHandle
	Tokens         *storage.PoolHandle
	RequireClaim   *storage.PoolHandle
}

// globals
type globalDataType struct {
	sync.RWMutex
	log       *logger.L
	pools     Handles
	directory directory.Directory
	factory   TokenFactory

	// live external token instances, reattached on restart
	tokens map[uint64]Token

	// set once during initialise
	initialised bool
}

// global data
var globalData globalDataType

// number of issue records to load per fetch
const loadBatchSize = 100

// Initialise - connect the ledger to its pools and collaborators
//
// every issue record in the database is reattached to a live token
// instance through the factory before the ledger accepts operations
func Initialise(pools Handles, dir directory.Directory, factory TokenFactory) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.pools = pools
	globalData.directory = dir
	globalData.factory = factory
	globalData.tokens = make(map[uint64]Token)

	cursor := pools.Tokens.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(loadBatchSize)
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			break
		}
		for _, element := range elements {
			if 8 != len(element.Key) {
				globalData.log.Criticalf("corrupt issue record key: %x", element.Key)
				return fault.InvalidItem
			}
			entity := binary.BigEndian.Uint64(element.Key)
			name, symbol, err := unpackTokenRecord(element.Value)
			if nil != err {
				globalData.log.Criticalf("corrupt issue record: entity: %d", entity)
				return err
			}
			token, err := factory.Load(entity, name, symbol)
			if nil != err {
				globalData.log.Criticalf("cannot reattach token: entity: %d  name: %q  error: %s",
					entity, name, err)
				return err
			}
			globalData.tokens[entity] = token
		}
	}
	globalData.log.Infof("reattached tokens: %d", len(globalData.tokens))

	globalData.initialised = true
	return nil
}

// Finalise - shut down the ledger
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.tokens = nil
	globalData.initialised = false
	return nil
}
