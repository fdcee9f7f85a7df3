// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/splits"
)

// Splits - distribution table calls
type Splits struct {
	log     *logger.L
	limiter *rate.Limiter
}

// maximum entries accepted in a single Set call
const maximumSplitEntries = 100

// Replace a table
// ---------------

// SplitsSetArguments - arguments for replacing one distribution table
//
// the caller must be the entity's owner or terminal, or hold an
// operator grant from one of them
type SplitsSetArguments struct {
	Caller    *account.Account  `json:"caller"` // base58
	Entity    uint64            `json:"entity"`
	Namespace uint64            `json:"namespace"`
	Group     uint64            `json:"group"`
	Entries   []splits.Entry    `json:"entries"`
	Signature account.Signature `json:"signature"`
}

// SplitsSetReply - result of replacing a table
type SplitsSetReply struct {
	Count int `json:"count"`
}

// Set - replace a distribution table, an empty table clears it
func (s *Splits) Set(arguments *SplitsSetArguments, reply *SplitsSetReply) error {

	if nil == arguments {
		return fault.InvalidItem
	}

	count := len(arguments.Entries)
	if 0 == count {
		count = 1 // clearing still costs one request
	}
	if err := rateLimitN(s.limiter, count, maximumSplitEntries); nil != err {
		return err
	}

	log := s.log

	log.Infof("Splits.Set: %+v", arguments)

	err := verifyRequest(arguments.Caller, arguments.Signature, "Splits.Set",
		uint64Bytes(arguments.Entity),
		uint64Bytes(arguments.Namespace),
		uint64Bytes(arguments.Group),
		splits.Pack(arguments.Entries),
	)
	if nil != err {
		return err
	}

	err = splits.Set(arguments.Caller, arguments.Entity, arguments.Namespace, arguments.Group, arguments.Entries)
	if nil != err {
		return err
	}

	reply.Count = len(arguments.Entries)
	return nil
}

// Read a table
// ------------

// SplitsGetArguments - arguments for reading one distribution table
type SplitsGetArguments struct {
	Entity    uint64 `json:"entity"`
	Namespace uint64 `json:"namespace"`
	Group     uint64 `json:"group"`
}

// SplitsGetReply - the stored table, empty if never set
type SplitsGetReply struct {
	Entries []splits.Entry `json:"entries"`
}

// Get - read a stored distribution table
func (s *Splits) Get(arguments *SplitsGetArguments, reply *SplitsGetReply) error {

	if err := rateLimit(s.limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.InvalidItem
	}

	entries, err := splits.Get(arguments.Entity, arguments.Namespace, arguments.Group)
	if nil != err {
		return err
	}
	reply.Entries = entries
	return nil
}
