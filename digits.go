// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

// digitPairs holds the ASCII of "00".."99" back to back, so writing two
// decimal digits is a single 2-byte copy indexed by the pair's value.
const digitPairs = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendPair appends the two ASCII digits of v (0 <= v < 100) to dst.
func appendPair(dst []byte, v uint64) []byte {
	return append(dst, digitPairs[v*2], digitPairs[v*2+1])
}

// appendFixed8 appends exactly 8 decimal digits of v (0 <= v < 1e8) to
// dst, zero-padded on the left.
func appendFixed8(dst []byte, v uint32) []byte {
	a := v / 1000000
	v -= a * 1000000
	b := v / 10000
	v -= b * 10000
	c := v / 100
	d := v - c*100
	dst = appendPair(dst, uint64(a))
	dst = appendPair(dst, uint64(b))
	dst = appendPair(dst, uint64(c))
	dst = appendPair(dst, uint64(d))
	return dst
}

// appendFull appends all decimal digits of v (v != 0, up to 17 digits),
// with no leading zeros, to dst. It splits the value the way the
// reference implementation's digit emitter does: an up-to-9-digit high
// half and a zero-padded 8-digit low half, v = hi*1e8 + lo. The high
// half is only ever recursed into when nonzero -- a zero high half
// means v has no more than 8 digits, and appendUnpadded renders those
// without the forced zero-padding appendFixed8 would otherwise add.
func appendFull(dst []byte, v uint64) []byte {
	if v < 100000000 {
		return appendUnpadded(dst, uint32(v))
	}
	hi := v / 100000000
	lo := uint32(v - hi*100000000)
	dst = appendFull(dst, hi)
	return appendFixed8(dst, lo)
}

// appendUnpadded appends the decimal digits of v (0 < v < 1e8) to dst
// with no leading zeros, using the same pair-at-a-time split as
// appendFixed8 but skipping leading zero pairs (and, within the first
// nonzero pair, a leading zero digit).
func appendUnpadded(dst []byte, v uint32) []byte {
	a := v / 1000000
	v -= a * 1000000
	b := v / 10000
	v -= b * 10000
	c := v / 100
	d := v - c*100

	groups := [4]uint64{uint64(a), uint64(b), uint64(c), uint64(d)}
	i := 0
	for i < 3 && groups[i] == 0 {
		i++
	}
	if groups[i] < 10 {
		dst = append(dst, byte('0'+groups[i]))
	} else {
		dst = appendPair(dst, groups[i])
	}
	for i++; i < 4; i++ {
		dst = appendPair(dst, groups[i])
	}
	return dst
}

// appendTrimmed appends the decimal digits of v (v != 0) to dst with
// trailing zeros removed, and returns the extended slice along with the
// count of digits trimmed. The caller (notation.go) must add that count
// to the decimal exponent to keep significand*10^exponent unchanged.
func appendTrimmed(dst []byte, v uint64) (out []byte, trimmed int) {
	start := len(dst)
	dst = appendFull(dst, v)
	end := len(dst)
	for end > start+1 && dst[end-1] == '0' {
		end--
		trimmed++
	}
	return dst[:end], trimmed
}
