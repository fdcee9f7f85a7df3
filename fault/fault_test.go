// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/fundpool/treasuryd/fault"
)

// test that the classification predicates only match their own class
func TestErrorClassification(t *testing.T) {

	items := []struct {
		err      error
		access   bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{fault.Unauthorized, true, false, false, false, false},
		{fault.AlreadyIssued, false, true, false, false, false},
		{fault.PercentOverflow, false, false, true, false, false},
		{fault.NotIssued, false, false, false, true, false},
		{fault.RateLimiting, false, false, false, false, true},
	}

	for i, item := range items {
		if fault.IsErrAccess(item.err) != item.access {
			t.Errorf("%d: access classification wrong for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists classification wrong for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid classification wrong for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found classification wrong for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process classification wrong for: %v", i, item.err)
		}
	}
}

// ensure error text is stable
func TestErrorText(t *testing.T) {
	if fault.Unauthorized.Error() != "unauthorized" {
		t.Errorf("unexpected error text: %q", fault.Unauthorized.Error())
	}
	if fault.InsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("unexpected error text: %q", fault.InsufficientFunds.Error())
	}
}
