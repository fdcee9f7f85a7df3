// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account identifiers
//
// an account is an ed25519 public key prefixed by a key variant byte;
// its text form is Base58 with a four byte SHA3 checksum appended
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/fundpool/treasuryd/fault"
)

// supported key algorithms
const (
	ED25519 = 1

	// end of list (one greater than last item)
	algorithmLimit = 2
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key variant starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift to get algorithm

	// AccountBytesLength - length of the packed binary form
	AccountBytesLength = 1 + ed25519.PublicKeySize
)

// Account - an account identifier
type Account struct {
	Test      bool
	PublicKey []byte
}

// keyVariant - compute the variant byte for the account
func (account *Account) keyVariant() byte {
	variant := byte(publicKeyCode | ED25519<<algorithmShift)
	if account.Test {
		variant |= testKeyCode
	}
	return variant
}

// Bytes - the packed binary form: variant byte followed by the public key
func (account *Account) Bytes() []byte {
	buffer := make([]byte, 0, AccountBytesLength)
	buffer = append(buffer, account.keyVariant())
	return append(buffer, account.PublicKey...)
}

// String - Base58 encoded binary form with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - for JSON encoding
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - for JSON decoding
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {

	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.CannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - convert the packed binary form to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	if 0 == len(accountBytes) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant := accountBytes[0]

	if keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm != ED25519 {
		return nil, fault.InvalidKeyType
	}

	publicKey := accountBytes[1:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// CheckSignature - verify an ed25519 signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(ed25519.PublicKey(account.PublicKey), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// SameAs - compare two accounts
//
// nil accounts never match anything
func (account *Account) SameAs(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - true if the account belongs to a testing network
func (account *Account) IsTesting() bool {
	return account.Test
}
