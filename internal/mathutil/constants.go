package mathutil

import "math"

// Blackman window coefficients (classic a0/a1/a2 form).
// From Blackman & Tukey, "The Measurement of Power Spectra". The "exact
// Blackman" variants differ in the fourth decimal; the reference
// magnification filter uses the classic truncated values.
const (
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08
)

// Numerical stability thresholds
const (
	// sincZeroThreshold is the |x| below which sin(x)/x evaluates to its limit
	sincZeroThreshold = 1e-10
)

// Common angle constants
const (
	twoPi = 2.0 * math.Pi
)
