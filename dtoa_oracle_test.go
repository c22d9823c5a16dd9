// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ericlagergren/decimal"
)

// exactRoundTrip reports whether sig*10^exp, computed exactly with
// math/big, rounds to want under round-to-nearest-even float64
// conversion. Used as a fallback ground truth when the decimal oracle
// declines to produce a float64 result.
func exactRoundTrip(sig uint64, exp int32, want float64) bool {
	v := new(big.Float).SetPrec(200).SetUint64(sig)
	p := new(big.Float).SetPrec(200).SetInt64(10)
	if exp >= 0 {
		for i := int32(0); i < exp; i++ {
			v.Mul(v, p)
		}
	} else {
		for i := int32(0); i < -exp; i++ {
			v.Quo(v, p)
		}
	}
	back, _ := v.Float64()
	return back == want
}

// TestDecomposeAgainstDecimalOracle checks Decompose's (significand,
// exponent) pair against a second, independent arbitrary-precision
// decimal library rather than just this package's own math/big-based
// test (see internal/schubfach/decompose_test.go). sig*10^exp is
// constructed exactly via decimal.Big.SetMantScale and converted back
// to float64; it must reproduce the original bit pattern.
func TestDecomposeAgainstDecimalOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		d := Decompose(v)
		if d.Special != SpecialNone {
			continue
		}

		big := new(decimal.Big).SetMantScale(int64(d.Significand), -int(d.Exponent))
		back, ok := big.Float64()
		want := math.Abs(v)
		// decimal.Big.Float64 reports ok=false for some large-exponent
		// values even when its own returned float is a correct or
		// near-correct round-trip target; treat that as "oracle declined"
		// rather than "decompose is wrong", and confirm against math/big
		// at high precision instead.
		if !ok {
			if !exactRoundTrip(d.Significand, d.Exponent, want) {
				t.Fatalf("decompose(%v) = (sig=%d, exp=%d); decimal oracle declined and math/big round-trip disagrees",
					v, d.Significand, d.Exponent)
			}
			continue
		}
		if back != want {
			t.Fatalf("decompose(%v) = (sig=%d, exp=%d); decimal oracle round-trips to %v, want %v",
				v, d.Significand, d.Exponent, back, want)
		}
	}
}
