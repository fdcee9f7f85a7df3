// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"encoding/binary"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/messagebus"
)

// WildcardNamespace - grants stored under this namespace apply under
// every namespace
const WildcardNamespace = 0

// storage key: grantor ++ grantee ++ namespace
func grantKey(grantor *account.Account, grantee *account.Account, namespace uint64) []byte {
	key := make([]byte, 0, 2*account.AccountBytesLength+8)
	key = append(key, grantor.Bytes()...)
	key = append(key, grantee.Bytes()...)
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, namespace)
	return append(key, buffer...)
}

// Set - overwrite the grant from grantor to grantee under a namespace
//
// the whole mask is replaced, not merged; the empty mask removes the
// record entirely; the caller identity is the grantor so no further
// authorisation applies (grants are strictly self-service)
func Set(grantor *account.Account, grantee *account.Account, namespace uint64, mask Mask) error {

	if nil == grantor || nil == grantee {
		return fault.InvalidItem
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	key := grantKey(grantor, grantee, namespace)
	if mask.IsZero() {
		globalData.grants.Delete(key)
	} else {
		globalData.grants.Put(key, mask.Bytes())
	}

	globalData.log.Infof("set: grantor: %s  grantee: %s  namespace: %d  mask: %x",
		grantor, grantee, namespace, mask.Bytes())

	namespaceBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(namespaceBytes, namespace)
	messagebus.Bus.Broadcast.Send("grant",
		grantor.Bytes(),
		grantee.Bytes(),
		namespaceBytes,
		mask.Bytes(),
	)

	return nil
}

// read a stored mask; the zero mask results for missing records
func storedMask(grantor *account.Account, grantee *account.Account, namespace uint64) Mask {
	packed := globalData.grants.Get(grantKey(grantor, grantee, namespace))
	if nil == packed {
		return Mask{}
	}
	mask, err := MaskFromBytes(packed)
	if nil != err {
		globalData.log.Criticalf("corrupt grant record: grantor: %s  grantee: %s  namespace: %d",
			grantor, grantee, namespace)
		return Mask{}
	}
	return mask
}

// Get - the stored mask for an exact (grantor, grantee, namespace) key
//
// no wildcard fallback is applied; use Has for authorisation checks
func Get(grantor *account.Account, grantee *account.Account, namespace uint64) (Mask, error) {

	if nil == grantor || nil == grantee {
		return Mask{}, fault.InvalidItem
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Mask{}, fault.NotInitialised
	}

	return storedMask(grantor, grantee, namespace), nil
}

// Has - check if grantor has delegated one capability to grantee
//
// true iff the index bit is set in the grant stored under the supplied
// namespace or in the grant stored under the wildcard namespace
func Has(grantee *account.Account, grantor *account.Account, namespace uint64, index int) (bool, error) {

	if index < 0 || index >= IndexLimit {
		return false, fault.CapabilityOutOfRange
	}
	if nil == grantee || nil == grantor {
		return false, nil
	}

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.NotInitialised
	}

	if storedMask(grantor, grantee, namespace).Has(index) {
		return true, nil
	}
	if WildcardNamespace == namespace {
		return false, nil
	}
	return storedMask(grantor, grantee, WildcardNamespace).Has(index), nil
}

// HasAll - check a set of capabilities all at once
//
// true iff every index individually satisfies Has
func HasAll(grantee *account.Account, grantor *account.Account, namespace uint64, indices []int) (bool, error) {

	for _, index := range indices {
		ok, err := Has(grantee, grantor, namespace, index)
		if nil != err {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
