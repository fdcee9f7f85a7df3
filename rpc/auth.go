// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
	"github.com/fundpool/treasuryd/mode"
)

// build the canonical digest a mutating call must sign: the method
// name followed by every argument in wire order, hashed with SHA3-256
func requestDigest(method string, components ...[]byte) []byte {
	digest := sha3.New256()
	digest.Write([]byte(method))
	for _, component := range components {
		digest.Write(component)
	}
	return digest.Sum(nil)
}

func uint64Bytes(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}

func boolByte(flag bool) []byte {
	if flag {
		return []byte{0x01}
	}
	return []byte{0x00}
}

// verify a mutating request: the daemon must be fully started, the
// caller present, on the right network, and the signature good
func verifyRequest(caller *account.Account, signature account.Signature, method string, components ...[]byte) error {

	if mode.IsNot(mode.Normal) {
		return fault.NotAvailableDuringStart
	}
	if nil == caller {
		return fault.MissingParameters
	}
	if caller.IsTesting() != mode.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}
	return caller.CheckSignature(requestDigest(method, components...), signature)
}
