// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

import "testing"

func TestPow10TableRange(t *testing.T) {
	if len(pow10Table) != kMax-kMin+1 {
		t.Fatalf("len(pow10Table) = %d, want %d", len(pow10Table), kMax-kMin+1)
	}
}

func TestPow10TableNonZero(t *testing.T) {
	for i, e := range pow10Table {
		if e.hi == 0 && e.lo == 0 {
			t.Fatalf("pow10Table[%d] (k=%d) is zero", i, i+kMin)
		}
	}
}

// TestPow10TableNormalized checks that every entry's high word falls in
// [2^62, 2^63), the expected range once 10^-k is scaled by 2^Q for
// Q = 125 - pow10BinExp(k) and split at the 2^63 boundary (g1 = G>>63):
// a cheap sanity check that the table wasn't shuffled, truncated, or
// mis-scaled relative to the Q each entry was derived with.
func TestPow10TableNormalized(t *testing.T) {
	const lo, hi = uint64(1) << 62, uint64(1) << 63
	for i, e := range pow10Table {
		if e.hi < lo || e.hi >= hi {
			t.Fatalf("pow10Table[%d] (k=%d): hi = 0x%016x, want in [0x%016x, 0x%016x)",
				i, i+kMin, e.hi, lo, hi)
		}
	}
}
