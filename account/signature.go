// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/fundpool/treasuryd/fault"
)

// Signature - the raw byte form of an ed25519 signature
type Signature []byte

// MarshalText - for JSON encoding
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - for JSON decoding
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return fault.InvalidSignature
	}
	*signature = sig[:byteCount]
	return nil
}
