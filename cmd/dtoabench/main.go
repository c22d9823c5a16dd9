// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dtoabench benchmarks and sanity-checks rsc.io/dtoa against the
// standard library's shortest-round-trip formatter. It is an ambient
// tool around the package's core, not part of it: see the core's own
// doc comment for the allocation- and lock-free contract this command
// does not need to honor.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rsc.io/dtoa"
)

// countDigits counts the significant decimal digits in s, ignoring the
// sign, decimal point, and any exponent suffix -- the same notion of
// "digit count" SPEC_FULL.md's shortness property compares against.
// strconv and this package pick different notation thresholds (see
// §4.5), so comparing rendered strings directly would flag spurious
// mismatches; digit count is the part of the output both formatters
// must agree on.
func countDigits(s string) int {
	n, zeros := 0, 0
	for _, c := range s {
		if c == 'e' {
			break
		}
		if c < '0' || c > '9' {
			continue
		}
		if c == '0' {
			if n > 0 {
				zeros++
			}
			continue
		}
		n += zeros + 1
		zeros = 0
	}
	return n
}

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("dtoabench failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dtoabench",
		Short: "Benchmark and cross-check rsc.io/dtoa against strconv",
	}
	root.AddCommand(newCompareCmd(), newFormatCmd())
	return root
}

func newCompareCmd() *cobra.Command {
	var count int64
	var seed int64
	var debug bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare AppendFloat against strconv over random doubles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(count, seed, debug)
		},
	}
	cmd.Flags().Int64Var(&count, "count", 1_000_000, "number of random doubles to sample")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed")
	cmd.Flags().BoolVar(&debug, "debug", false, "log the decomposer branch for every mismatch")
	return cmd
}

func runCompare(count, seed int64, debug bool) error {
	rng := rand.New(rand.NewSource(seed))
	var mismatches int64
	buf := make([]byte, 0, 32)

	start := time.Now()
	for i := int64(0); i < count; i++ {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) {
			continue
		}

		buf = dtoa.AppendFloat(buf[:0], v)
		got := string(buf)

		back, err := strconv.ParseFloat(got, 64)
		roundTrips := err == nil && (back == v || (v == 0 && back == 0))
		wantDigits := countDigits(strconv.FormatFloat(v, 'e', -1, 64))
		gotDigits := countDigits(got)

		if !roundTrips || gotDigits != wantDigits {
			mismatches++
			ev := log.Error().Float64("value", v).Str("got", got).
				Bool("round_trips", roundTrips).
				Int("got_digits", gotDigits).Int("want_digits", wantDigits)
			if debug {
				trace := dtoa.Debug(v)
				ev = ev.Str("branch", trace.Branch)
			}
			ev.Msg("mismatch against strconv oracle")
		}
	}
	elapsed := time.Since(start)

	log.Info().
		Int64("count", count).
		Int64("mismatches", mismatches).
		Dur("elapsed", elapsed).
		Float64("ns_per_op", float64(elapsed.Nanoseconds())/float64(count)).
		Msg("compare finished")

	if mismatches > 0 {
		return fmt.Errorf("%d mismatches against strconv oracle", mismatches)
	}
	return nil
}

func newFormatCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:   "format <float>...",
		Short: "Format one or more float64 literals and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				fmt.Println(dtoa.Format(v))
				if debug {
					trace := dtoa.Debug(v)
					log.Debug().Str("input", arg).Str("branch", trace.Branch).Msg("decomposer branch")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "log which decomposer branch fired")
	return cmd
}
