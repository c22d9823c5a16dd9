// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"

	"rsc.io/dtoa/internal/schubfach"
)

// DecisionTrace reports which branch of the Schubfach decomposer
// produced a value's shortest decimal, for use by tests and
// cmd/dtoabench's -debug flag. It is never produced on the hot path:
// AppendFloat and Format do not call Debug.
type DecisionTrace struct {
	Decimal
	Branch string
}

// Debug re-runs the decomposer for v with branch tracing enabled and
// returns the decision it made alongside the resulting Decimal. Special
// values (±0, ±Inf, NaN) report a Branch of "special" since they never
// reach the decomposer.
func Debug(v float64) DecisionTrace {
	d := Decompose(v)
	if d.Special != SpecialNone {
		return DecisionTrace{Decimal: d, Branch: "special"}
	}
	sig, exp, branch := schubfach.DecomposeTraced(math.Float64bits(math.Abs(v)))
	return DecisionTrace{
		Decimal: Decimal{Sign: d.Sign, Significand: sig, Exponent: exp},
		Branch:  branch.String(),
	}
}
