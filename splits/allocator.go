// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splits

import (
	"github.com/fundpool/treasuryd/account"
)

// Allocator - contract for an external fund-routing handler
//
// distribution logic, which lives outside this daemon, forwards an
// entry's share here when the entry carries an allocator address; the
// registry itself never calls it, but the contract fixes the fields an
// entry must be able to supply
type Allocator interface {
	Receive(entity uint64, beneficiary *account.Account, preferClaimed bool, redirect uint64, amount uint64, metadata []byte) error
}
