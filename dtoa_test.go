// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

// Scenarios mirror this package's specification's concrete scenario
// table, the same style as the teacher's own table-driven ftoa_test.go.
var scenarios = []struct {
	name string
	v    float64
	want string
}{
	{"zero", 0.0, "0"},
	{"neg-zero", math.Copysign(0, -1), "-0"},
	{"one", 1.0, "1"},
	{"neg-one", -1.0, "-1"},
	{"tenth", 0.1, "0.1"},
	{"pi", 3.141592653589793, "3.141592653589793"},
	{"max", math.MaxFloat64, "1.7976931348623157e+308"},
	{"smallest-subnormal", math.SmallestNonzeroFloat64, "5e-324"},
	{"inf", math.Inf(1), "inf"},
	{"neg-inf", math.Inf(-1), "-inf"},
	{"nan", math.NaN(), "nan"},
	{"sci-threshold-up", 1e20, "1e+20"},
	{"million", 1e6, "1000000"},
	{"sci-threshold-e7", 1e7, "1e+07"},
	{"dbl-min", 2.2250738585072014e-308, "2.2250738585072014e-308"},
	{"sixteen-digit", 9007199254740994.0, "9.007199254740994e+15"},
	{"mid-length-hundred", 100.0, "100"},
	{"mid-length-five-digit", 12345.0, "12345"},
	{"mid-length-fraction", 0.001234, "0.001234"},
	{"mid-length-decimal", 12345.6789, "12345.6789"},
	{"just-below-1.3", 1.2999999999999998, "1.2999999999999998"},
	{"pow10-table-split-convention", 4.3699887110387807e-17, "4.3699887110387807e-17"},
}

func TestFormat(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			got := Format(s.v)
			if math.IsNaN(s.v) {
				if got != "nan" && got != "-nan" {
					t.Fatalf("Format(NaN) = %q, want nan or -nan", got)
				}
				return
			}
			if got != s.want {
				t.Fatalf("Format(%v) = %q, want %q", s.v, got, s.want)
			}
		})
	}
}

func TestDecomposeFormatAgreement(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			d := Decompose(s.v)
			got := string(d.Append(nil))
			want := Format(s.v)
			if got != want {
				t.Fatalf("Decompose(%v).Append = %q, Format = %q, want agreement", s.v, got, want)
			}
		})
	}
}

func TestSignPreservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		v := randFloat(rng)
		if v == 0 || math.IsNaN(v) {
			continue
		}
		s := Format(v)
		neg := math.Signbit(v)
		gotNeg := len(s) > 0 && s[0] == '-'
		if gotNeg != neg {
			t.Fatalf("Format(%v) = %q, sign mismatch (signbit=%v)", v, s, neg)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20000; i++ {
		v := randFloat(rng)
		if math.IsNaN(v) {
			continue
		}
		s := Format(v)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error: %v (from %v)", s, err, v)
		}
		if back != v && !(v == 0 && back == 0) {
			t.Fatalf("round-trip failed: Format(%v) = %q, ParseFloat back = %v", v, s, back)
		}
	}
}

func TestShortness(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20000; i++ {
		v := randFloat(rng)
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ours := Format(v)
		// strconv's shortest-round-trip formatter is the independent
		// oracle for digit count.
		oracle := strconv.FormatFloat(v, 'g', -1, 64)
		if digitCount(ours) != digitCount(oracle) {
			t.Fatalf("digit count mismatch for %v: ours=%q (%d digits) oracle=%q (%d digits)",
				v, ours, digitCount(ours), oracle, digitCount(oracle))
		}
	}
}

func digitCount(s string) int {
	n := 0
	for _, c := range s {
		if c >= '0' && c <= '9' {
			n++
		}
	}
	// Strip exponent digits: walk back from 'e' if present.
	if i := indexByte(s, 'e'); i >= 0 {
		expDigits := 0
		for _, c := range s[i+1:] {
			if c >= '0' && c <= '9' {
				expDigits++
			}
		}
		n -= expDigits
	}
	return n
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func randFloat(rng *rand.Rand) float64 {
	bits := rng.Uint64()
	return math.Float64frombits(bits)
}

func BenchmarkFormat(b *testing.B) {
	values := []float64{1.0, 3.141592653589793, 1.7976931348623157e+308, 5e-324, 123456789.123456}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Format(values[i%len(values)])
	}
}

func BenchmarkAppendFloat(b *testing.B) {
	var buf [32]byte
	values := []float64{1.0, 3.141592653589793, 1.7976931348623157e+308, 5e-324, 123456789.123456}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AppendFloat(buf[:0], values[i%len(values)])
	}
}
