// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/capability"
	"github.com/fundpool/treasuryd/fault"
)

// Capability - permission registry calls
type Capability struct {
	log     *logger.L
	limiter *rate.Limiter
}

// Set a grant
// -----------

// CapabilitySetArguments - arguments for setting a grant
//
// the grantor signs; grants are strictly self-service
type CapabilitySetArguments struct {
	Grantor   *account.Account  `json:"grantor"` // base58
	Grantee   *account.Account  `json:"grantee"` // base58
	Namespace uint64            `json:"namespace"`
	Mask      capability.Mask   `json:"mask"` // hex
	Signature account.Signature `json:"signature"`
}

// CapabilitySetReply - result of setting a grant
type CapabilitySetReply struct {
	Removed bool `json:"removed"`
}

// Set - overwrite the grant from the signing account to the grantee
func (c *Capability) Set(arguments *CapabilitySetArguments, reply *CapabilitySetReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	log := c.log

	log.Infof("Capability.Set: %+v", arguments)

	if nil == arguments || nil == arguments.Grantor || nil == arguments.Grantee {
		return fault.InvalidItem
	}

	if arguments.Grantee.IsTesting() != arguments.Grantor.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	err := verifyRequest(arguments.Grantor, arguments.Signature, "Capability.Set",
		arguments.Grantee.Bytes(),
		uint64Bytes(arguments.Namespace),
		arguments.Mask.Bytes(),
	)
	if nil != err {
		return err
	}

	err = capability.Set(arguments.Grantor, arguments.Grantee, arguments.Namespace, arguments.Mask)
	if nil != err {
		return err
	}

	reply.Removed = arguments.Mask.IsZero()
	return nil
}

// Read a grant
// ------------

// CapabilityGetArguments - arguments for reading one stored grant
type CapabilityGetArguments struct {
	Grantor   *account.Account `json:"grantor"` // base58
	Grantee   *account.Account `json:"grantee"` // base58
	Namespace uint64           `json:"namespace"`
}

// CapabilityGetReply - the stored mask
type CapabilityGetReply struct {
	Mask capability.Mask `json:"mask"` // hex
}

// Get - read the exact stored grant, without wildcard fallback
func (c *Capability) Get(arguments *CapabilityGetArguments, reply *CapabilityGetReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Grantor || nil == arguments.Grantee {
		return fault.InvalidItem
	}

	mask, err := capability.Get(arguments.Grantor, arguments.Grantee, arguments.Namespace)
	if nil != err {
		return err
	}
	reply.Mask = mask
	return nil
}

// Check a capability
// ------------------

// CapabilityHasArguments - arguments for an authorisation probe
type CapabilityHasArguments struct {
	Grantee   *account.Account `json:"grantee"` // base58
	Grantor   *account.Account `json:"grantor"` // base58
	Namespace uint64           `json:"namespace"`
	Indices   []int            `json:"indices"`
}

// CapabilityHasReply - result of the probe
type CapabilityHasReply struct {
	Has bool `json:"has"`
}

// Has - check a set of capability indices all at once
func (c *Capability) Has(arguments *CapabilityHasArguments, reply *CapabilityHasReply) error {

	if err := rateLimit(c.limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Grantee || nil == arguments.Grantor {
		return fault.InvalidItem
	}
	if 0 == len(arguments.Indices) {
		return fault.MissingParameters
	}

	has, err := capability.HasAll(arguments.Grantee, arguments.Grantor, arguments.Namespace, arguments.Indices)
	if nil != err {
		return err
	}
	reply.Has = has
	return nil
}
