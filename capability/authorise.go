// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package capability

import (
	"github.com/fundpool/treasuryd/account"
	"github.com/fundpool/treasuryd/fault"
)

// the authorisation combinators
//
// these are evaluated by every mutating operation before any state is
// touched; they read the grant store and nothing else

// Require - basic check
//
// authorised iff the caller is the designated account itself, or the
// account has delegated the required capability to the caller
func Require(caller *account.Account, designated *account.Account, namespace uint64, index int) error {

	if caller.SameAs(designated) {
		return nil
	}

	ok, err := Has(caller, designated, namespace, index)
	if nil != err {
		return err
	}
	if !ok {
		return fault.Unauthorized
	}
	return nil
}

// RequireWithAlternate - basic check plus one extra allowed caller
//
// used when a non-owner operational role, e.g. the entity's active
// terminal, must also be allowed through
func RequireWithAlternate(caller *account.Account, designated *account.Account, alternate *account.Account, namespace uint64, index int) error {

	if caller.SameAs(alternate) {
		return nil
	}
	return Require(caller, designated, namespace, index)
}

// RequireWildcard - basic check accepting a wildcard namespace grant
// for any concrete namespace
//
// used for cross-namespace administrative capabilities
func RequireWildcard(caller *account.Account, designated *account.Account, namespace uint64, index int) error {

	if caller.SameAs(designated) {
		return nil
	}

	ok, err := Has(caller, designated, namespace, index)
	if nil != err {
		return err
	}
	if ok {
		return nil
	}

	ok, err = Has(caller, designated, WildcardNamespace, index)
	if nil != err {
		return err
	}
	if !ok {
		return fault.Unauthorized
	}
	return nil
}
