// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"
	"math/rand"
	"sync"
	"testing"
)

// TestConcurrentFormat hammers AppendFloat/Format from many goroutines
// on disjoint buffers, matching this package's concurrency contract
// (no shared mutable state, safe to call from any number of goroutines
// with no synchronization). Run with -race to catch data races in the
// package-level power-of-ten and digit-pair tables.
func TestConcurrentFormat(t *testing.T) {
	const goroutines = 32
	const perGoroutine = 5000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			buf := make([]byte, 0, 32)
			for i := 0; i < perGoroutine; i++ {
				v := math.Float64frombits(rng.Uint64())
				buf = AppendFloat(buf[:0], v)
				_ = Format(v)
				_ = Decompose(v)
			}
		}(int64(g))
	}
	wg.Wait()
}
