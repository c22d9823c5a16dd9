// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schubfach

// Branch identifies which arm of the decomposer produced a result.
// It exists purely for diagnostics (cmd/dtoabench's -debug flag and
// this package's own tests); nothing on the hot path inspects it.
type Branch uint8

const (
	// BranchFastInteger means v was small enough to be an exact integer
	// and skipped the scaling machinery entirely (step 3).
	BranchFastInteger Branch = iota
	// BranchShorterCandidate means the "single shorter candidate"
	// optimization fired: a multiple of ten inside the rounding
	// interval yielded one fewer digit (step 8).
	BranchShorterCandidate
	// BranchLower means the two-candidate selection (step 9) chose the
	// smaller of the two neighboring significands, s_lo.
	BranchLower
	// BranchUpper means step 9 chose s_hi.
	BranchUpper
)

func (b Branch) String() string {
	switch b {
	case BranchFastInteger:
		return "fast-integer"
	case BranchShorterCandidate:
		return "shorter-candidate"
	case BranchLower:
		return "s-lo"
	case BranchUpper:
		return "s-hi"
	default:
		return "unknown"
	}
}

// DecomposeTraced behaves exactly like Decompose but additionally
// reports which branch of the algorithm produced the result. It exists
// for diagnostics only and must never be called from AppendFloat or
// Format, which get their result from a single Decompose call.
func DecomposeTraced(bitsVal uint64) (sig uint64, exp int32, branch Branch) {
	return decomposeTraced(bitsVal)
}
