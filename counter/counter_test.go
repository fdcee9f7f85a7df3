// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Fundpool Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/fundpool/treasuryd/counter"
)

// simple increment/decrement checks
func TestCounter(t *testing.T) {
	var c counter.Counter

	if !c.IsZero() {
		t.Fatal("new counter is not zero")
	}

	if 1 != c.Increment() {
		t.Error("increment did not return 1")
	}
	c.Increment()
	c.Increment()
	if 3 != c.Uint64() {
		t.Errorf("counter: %d  expected: 3", c.Uint64())
	}
	if 2 != c.Decrement() {
		t.Error("decrement did not return 2")
	}
}

// concurrent increments must not lose updates
func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const goroutines = 10
	const loops = 1000

	for i := 0; i < goroutines; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if goroutines*loops != c.Uint64() {
		t.Errorf("counter: %d  expected: %d", c.Uint64(), goroutines*loops)
	}
}
