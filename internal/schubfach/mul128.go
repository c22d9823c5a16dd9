// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schubfach implements the integer-only core of the Schubfach
// shortest-round-trip decimal algorithm for binary64 values.
//
// It is a from-scratch reimplementation of the "zmij" Schubfach variant
// (itself a descendant of Raffaello Giulietti's "The Schubfach way to
// render doubles"), structured after the 128x64 scaling primitives used
// in the reference schubfach port of rsc.io/tmp/ftoa.
package schubfach

import "math/bits"

const mask63 = 1<<63 - 1

// mul128 returns the full 128-bit product of a and b, split into the
// high and low 64-bit halves.
func mul128(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// rop computes (g1*2^63 + g0) * cp, right-shifted by 127, with the low
// bit of the result carrying a sticky "was the discarded tail nonzero"
// flag. Note the 2^63 weighting on g1, not 2^64 -- pow10Table's entries
// are split at that boundary precisely so this works out.
//
// This is the "inexactness-OR" trick: the returned value's low bit is
// the logical OR of every bit truncated by the shift. Schubfach's
// round-half-to-even tie rule at the boundary depends on this bit being
// bit-for-bit correct; simplifying the computation (e.g. by dropping the
// x_hi contribution) silently breaks specific round-half cases.
func rop(g1, g0, cp uint64) uint64 {
	xHi, _ := mul128(g0, cp)
	yHi, yLo := mul128(g1, cp)
	z := (yLo >> 1) + xHi
	r := yHi + (z >> 63)
	return r | ((z&mask63)+mask63)>>63
}
