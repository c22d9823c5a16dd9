// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtoa converts float64 values to the shortest decimal string
// that round-trips back to the same value, using the Schubfach
// algorithm. It is adapted from the fixed-precision ftoa implementation
// in rsc.io/tmp/ftoa and its Schubfach reference port, generalized to
// the "zmij" Schubfach variant: an integer-only pipeline driven by a
// precomputed table of 128-bit decimal-power approximations.
//
// The conversion is a pure function of its input: no allocation, no
// locks, no shared mutable state. Callers may call AppendFloat, Format
// or Decompose concurrently from any number of goroutines.
package dtoa

import (
	"math"

	"rsc.io/dtoa/internal/schubfach"
)

// Special classifies non-ordinary float64 values.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialInf
	SpecialNaN
	SpecialZero
)

// Decimal is the decomposed form of a float64: sign, a decimal
// significand with no required trailing-zero trimming, and the decimal
// exponent k such that the value equals Significand * 10^Exponent.
//
// When Special is nonzero, Significand and Exponent are meaningless and
// Append writes the corresponding token ("inf", "nan", "0") instead.
type Decimal struct {
	Sign        bool
	Significand uint64
	Exponent    int32
	Special     Special
}

const (
	numSigBits = 52
	expMask    = 0x7ff
	sigMask    = 1<<numSigBits - 1
)

// Decompose decomposes v into its shortest round-tripping decimal form.
// It is the secondary entry point described by this package's
// specification: Format(v) == string(Decompose(v).Append(nil)) for every
// float64 v.
func Decompose(v float64) Decimal {
	b := math.Float64bits(v)
	sign := b>>63 != 0
	binExp := (b >> numSigBits) & expMask
	binSig := b & sigMask

	switch {
	case binExp == expMask:
		if binSig == 0 {
			return Decimal{Sign: sign, Special: SpecialInf}
		}
		return Decimal{Sign: sign, Special: SpecialNaN}
	case binExp == 0 && binSig == 0:
		return Decimal{Sign: sign, Special: SpecialZero}
	}

	sig, exp := schubfach.Decompose(b)
	return Decimal{Sign: sign, Significand: sig, Exponent: exp}
}

// AppendFloat appends the shortest round-tripping decimal text of v to
// dst, growing it as needed, and returns the extended slice. The output
// grammar is:
//
//	-? ( "inf" | "nan" | integer | integer "." fraction |
//	     integer "." fraction? "e" ("+"|"-") exp2or3 )
//
// NaN is always rendered as "nan" (never by payload); the sign bit, if
// set, is still prepended, so "-nan" is possible. Zero is rendered as
// "0" or "-0".
func AppendFloat(dst []byte, v float64) []byte {
	// Fast paths for the two most common nontrivial values, matching
	// the cheap-equality shortcut of rsc.io/tmp/ftoa's fixed-precision
	// Ftoa ahead of the general algorithm.
	if v == 1.0 {
		return append(dst, '1')
	}
	if v == -1.0 {
		return append(dst, '-', '1')
	}
	return Decompose(v).Append(dst)
}

// Format returns the shortest round-tripping decimal text of v.
func Format(v float64) string {
	var buf [32]byte
	return string(AppendFloat(buf[:0], v))
}

// Append renders d, appending to dst and returning the extended slice.
func (d Decimal) Append(dst []byte) []byte {
	if d.Sign {
		dst = append(dst, '-')
	}
	switch d.Special {
	case SpecialInf:
		return append(dst, 'i', 'n', 'f')
	case SpecialNaN:
		return append(dst, 'n', 'a', 'n')
	case SpecialZero:
		return append(dst, '0')
	}
	return appendNotation(dst, d.Significand, d.Exponent)
}
