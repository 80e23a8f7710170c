// Package mathutil provides mathematical functions for temporal filter design.
package mathutil

import (
	"math"
)

// BlackmanWindow generates a Blackman window of the specified length.
//
// The Blackman window offers strong sidelobe suppression (~-58 dB) at the
// cost of a wider main lobe, which suits the short temporal filters used
// for video magnification where spectral leakage would smear the narrow
// pass-band into neighbouring frequencies.
//
// Parameters:
//
//	length: Number of samples in the window (should be odd for symmetric FIR)
//
// Returns:
//
//	Window coefficients in [0, 1]
//
// The window is symmetric: w[i] == w[length-1-i]
func BlackmanWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}

	window := make([]float64, length)

	// Special case for length 1
	if length == 1 {
		window[0] = blackmanA0
		return window
	}

	// Classic Blackman formula:
	// w[n] = a0 - a1*cos(2πn/M) + a2*cos(4πn/M), M = length-1
	order := float64(length - 1)
	for n := range length {
		phase := twoPi * float64(n) / order
		window[n] = blackmanA0 - blackmanA1*math.Cos(phase) + blackmanA2*math.Cos(2*phase)
	}

	return window
}

// BlackmanAt evaluates a single Blackman window coefficient without
// materializing the whole window. Index n must be in [0, order] where
// order is the filter order (tap count minus one).
//
// Used by the band-pass designer, which windows taps as it generates them.
func BlackmanAt(n int, order int) float64 {
	phase := twoPi * float64(n) / float64(order)
	return blackmanA0 - blackmanA1*math.Cos(phase) + blackmanA2*math.Cos(2*phase)
}

// Sinc computes the unnormalized sampling function sin(x)/x with the
// removable singularity at zero handled explicitly.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1.0
	}
	return math.Sin(x) / x
}

// IsOdd reports whether n is odd. Symmetric linear-phase FIR filters
// require an odd tap count so the group delay lands on a whole sample.
func IsOdd(n int) bool {
	return n%2 == 1
}
