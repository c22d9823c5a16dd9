// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"
	"math/rand"
	"testing"
)

// TestDebugBranchAgreesWithDecompose checks that Debug's reported (sign,
// significand, exponent) matches Decompose's for the same value, and
// that a claimed "shorter-candidate" branch is internally consistent:
// by construction (Schubfach step 8) that branch only ever returns a
// significand that is a multiple of ten.
func TestDebugBranchAgreesWithDecompose(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20000; i++ {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) || v == 0 {
			continue
		}
		trace := Debug(v)
		d := Decompose(v)

		if trace.Sign != d.Sign || trace.Significand != d.Significand || trace.Exponent != d.Exponent {
			t.Fatalf("Debug(%v) Decimal = %+v, Decompose(%v) = %+v, want agreement", v, trace.Decimal, v, d)
		}

		switch trace.Branch {
		case "special":
			if d.Special == SpecialNone {
				t.Fatalf("Debug(%v) reported branch=special but Decompose has Special=none", v)
			}
		case "shorter-candidate":
			if trace.Significand%10 != 0 {
				t.Fatalf("Debug(%v) claimed shorter-candidate but significand %d is not a multiple of ten",
					v, trace.Significand)
			}
		case "fast-integer", "s-lo", "s-hi":
			// No additional structural invariant to check here.
		default:
			t.Fatalf("Debug(%v) reported unknown branch %q", v, trace.Branch)
		}
	}
}
