// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors

// AccessError - failures of an authorisation check
type AccessError GenericError

// ExistsError - errors due to duplicate items
type ExistsError GenericError

// InvalidError - errors for invalid inputs
type InvalidError GenericError

// NotFoundError - errors for missing items
type NotFoundError GenericError

// ProcessError - errors for operational failures
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = ExistsError("already initialised")
	AlreadyIssued            = ExistsError("token already issued")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	CapabilityOutOfRange     = InvalidError("capability index out of range")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ChecksumMismatch         = InvalidError("checksum mismatch")
	EmptyName                = InvalidError("token name is empty")
	EmptySymbol              = InvalidError("token symbol is empty")
	EntityNotFound           = NotFoundError("entity not found")
	InsufficientFunds        = InvalidError("insufficient funds")
	InvalidCount             = InvalidError("invalid count")
	InvalidEntity            = InvalidError("invalid entity")
	InvalidItem              = InvalidError("invalid item")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	KeyFileExists            = ExistsError("key file already exists")
	LockedEntryOmitted       = InvalidError("locked split entry omitted or shortened")
	MissingParameters        = InvalidError("missing parameters")
	NoRecipient              = InvalidError("split entry has no beneficiary or allocator")
	NotAvailableDuringStart  = ProcessError("not available during start up")
	NotInitialised           = NotFoundError("not initialised")
	NotIssued                = NotFoundError("token not issued")
	NotPublicKey             = InvalidError("not a public key")
	PercentOverflow          = InvalidError("split percents exceed the scale")
	RateLimiting             = ProcessError("rate limiting active")
	SelfTransfer             = InvalidError("recipient is the holder")
	TokenNotRegistered       = NotFoundError("token instance not registered")
	Unauthorized             = AccessError("unauthorized")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
	ZeroAddress              = InvalidError("recipient account is zero")
	ZeroAmount               = InvalidError("amount is zero")
	ZeroPercent              = InvalidError("split entry percent is zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrAccess - determine if an access class error
func IsErrAccess(e error) bool { _, ok := e.(AccessError); return ok }

// IsErrExists - determine if an exists class error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if an invalid class error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if a not found class error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if a process class error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
