// Package testutil provides shared assertion helpers for qec and its plugin
// packages' tests.
package testutil

import (
	"math"
	"testing"
)

// AssertRelClose fails the test if got is not within relTol of want, relative to
// the larger magnitude of the two.
func AssertRelClose(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// ExpectedBitFlipFailureRate is the logical failure rate of a distance-3
// repetition code under independent bit-flips with probability p: two or three
// flips out of three defeat majority decoding.
func ExpectedBitFlipFailureRate(p float64) float64 {
	return 3*(1-p)*p*p + p*p*p
}
