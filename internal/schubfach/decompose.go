// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

// This file is adapted from the reference Schubfach port in rsc.io/tmp/ftoa
// (originally a translation of DoubleToDecimal.java implementing the
// algorithm skeleton of figure 4 / figure 7 of Giulietti's "The Schubfach
// way to render doubles"). That port's toDecimal/rop shape is kept, but
// the scaling constants, rounding-interval construction and table lookup
// are replaced to match the "zmij" Schubfach variant this package targets:
// integer log2/log10 linear approximations driving a single table lookup
// per call, rather than per-call float log computations.

const (
	numSigBits  = 52
	expBias     = 1023
	expMask     = 0x7ff
	implicitBit = uint64(1) << numSigBits
	sigMask     = implicitBit - 1

	log10_2Sig      = 315653
	log10_2Exp      = 20
	log10_3over4Sig = -131008
	log2_pow10Sig   = 217707
	log2_pow10Exp   = 16
)

// pow10BinExp returns floor(log2(10^(-decExp))), computed via the same
// integer linear approximation used at runtime in Decompose, so table
// construction and lookup stay consistent (see pow10.go).
func pow10BinExp(decExp int) int {
	return int((-int64(decExp) * log2_pow10Sig) >> log2_pow10Exp)
}

// Decompose implements steps 1-9 of the Schubfach decomposer for a
// finite, nonzero float64 given as its raw IEEE-754 bit pattern. Callers
// (the dtoa package) are responsible for routing ±0, ±Inf and NaN
// elsewhere; Decompose assumes bits encodes a finite nonzero value.
//
// It returns the decimal significand sig and decimal exponent exp such
// that sig * 10^exp is the shortest decimal that round-trips to the
// input. sig may still carry trailing zeros; trimming is the formatter's
// job (see the dtoa package's digit emitter).
func Decompose(bitsVal uint64) (sig uint64, exp int32) {
	sig, exp, _ = decomposeTraced(bitsVal)
	return sig, exp
}

// decomposeTraced is the shared implementation behind Decompose and the
// diagnostic DecomposeTraced (see debug.go). It additionally reports
// which arm of the algorithm produced the result; Decompose discards
// that branch so the hot path pays nothing beyond an extra register
// return.
func decomposeTraced(bitsVal uint64) (sig uint64, exp int32, branch Branch) {
	binExp := int((bitsVal >> numSigBits) & expMask)
	binSig := bitsVal & sigMask
	regular := binSig != 0

	if binExp == 0 {
		// Subnormal: no implicit bit, minimum exponent. The XOR here
		// cancels the unconditional one below, leaving binSig as the
		// raw fraction -- subnormals have no implicit leading one to
		// fold in.
		binSig ^= implicitBit
		binExp = 1
		regular = true
	}
	binSig ^= implicitBit
	binExp -= numSigBits + expBias

	// Small-integer fast path: v is exactly representable as an integer
	// with no fractional decimal digits.
	if binExp < 0 && binExp >= -numSigBits {
		shift := uint(-binExp)
		f := binSig >> shift
		if f<<shift == binSig {
			return f, 0, BranchFastInteger
		}
	}

	m := binSig << 2
	var lower uint64
	if regular {
		lower = m - 2
	} else {
		lower = m - 1
	}
	upper := m + 2

	correction := 0
	if !regular {
		correction = log10_3over4Sig
	}
	decExp := int((int64(binExp)*log10_2Sig + int64(correction)) >> log10_2Exp)

	pbe := pow10BinExp(decExp)
	shift := binExp + pbe + 2
	entry := pow10Table[decExp-kMin]

	parity := binSig & 1

	l := rop(entry.hi, entry.lo, shiftLeft(lower, shift)) + parity
	u := rop(entry.hi, entry.lo, shiftLeft(upper, shift)) - parity

	t := 10 * ((u >> 2) / 10)
	if (t << 2) >= l {
		return t, int32(decExp), BranchShorterCandidate
	}

	s := rop(entry.hi, entry.lo, shiftLeft(m, shift))
	sLo := s >> 2
	sHi := sLo + 1
	cmp := int64(s) - int64((sLo+sHi)<<1)
	underCloser := cmp < 0 || (cmp == 0 && sLo&1 == 0)
	underIn := (sLo << 2) >= l
	if underCloser && underIn {
		return sLo, int32(decExp), BranchLower
	}
	return sHi, int32(decExp), BranchUpper
}

// shiftLeft performs a left shift by a possibly-negative amount; a
// negative shift count means a right shift. The reachable shift range is
// small (bounded by the rounding-interval arithmetic in Decompose), so
// this never needs to reason about shifting by more than 63 in the
// negative direction.
func shiftLeft(x uint64, n int) uint64 {
	if n >= 0 {
		return x << uint(n)
	}
	return x >> uint(-n)
}
