// Package testutil provides reusable test helper functions for temporal filter tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-12
	SymmetryTolerance = 1e-9
	GainTolerance     = 1e-6
	ResponseTolerance = 1e-9
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%g != s[%d]=%g", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertOddLength verifies that a slice has an odd length.
func AssertOddLength(t *testing.T, s []float64) bool {
	t.Helper()
	return assert.Equal(t, 1, len(s)%halfDivisor, "slice length %d is not odd", len(s))
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance. Falls back to absolute comparison when the
// expected value is zero.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertAllNear verifies that every element is within delta of want.
func AssertAllNear(t *testing.T, s []float64, want, delta float64) bool {
	t.Helper()
	for i, v := range s {
		if math.Abs(v-want) > delta {
			return assert.Fail(t, "element out of tolerance",
				"s[%d]=%g, want %g ± %g", i, v, want, delta)
		}
	}
	return true
}

// AssertSlicesNear verifies element-wise equality of two slices within delta.
func AssertSlicesNear(t *testing.T, want, got []float64, delta float64) bool {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), "slice length mismatch") {
		return false
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > delta {
			return assert.Fail(t, "element mismatch",
				"index %d: got %g, want %g ± %g", i, got[i], want[i], delta)
		}
	}
	return true
}

// MaxAbs returns the largest absolute value in the slice.
func MaxAbs(s []float64) float64 {
	var m float64
	for _, v := range s {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
