package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Frequency response constants.
const (
	// defaultResponsePoints is the default evaluation grid size.
	defaultResponsePoints = 512

	// minResponseFFTSize keeps the FFT grid fine enough for short filters.
	minResponseFFTSize = 256

	// fftHermitianDivisor is used to calculate unique frequency bins in a
	// real FFT. Due to Hermitian symmetry, a real FFT of size N has
	// N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)

// Response holds the frequency response of a FIR filter.
type Response struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// ComputeResponse calculates the frequency response of a FIR filter.
//
// Uses the discrete-time Fourier transform (DTFT) to evaluate the filter's
// frequency response at the specified number of points.
//
// Parameters:
//
//	taps: Filter coefficients
//	numPoints: Number of frequency points to evaluate (default: 512)
//
// Returns:
//
//	Frequency response data
func ComputeResponse(taps []float64, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := Response{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	// Evaluate frequency response at numPoints frequencies from 0 to Nyquist
	for k := range numPoints {
		// Normalized frequency (0 to 0.5)
		freq := float64(k) / float64(fftHermitianDivisor*numPoints)
		response.Frequencies[k] = freq

		// Compute H(e^jω) = Σ h[n]·e^(-jωn)
		// Split into real and imaginary parts
		var realPart, imagPart float64
		omega := 2 * math.Pi * freq

		for n, h := range taps {
			angle := omega * float64(n)
			realPart += h * math.Cos(angle)
			imagPart -= h * math.Sin(angle)
		}

		response.Magnitude[k] = math.Sqrt(realPart*realPart + imagPart*imagPart)
		response.Phase[k] = math.Atan2(imagPart, realPart)
	}

	return response
}

// ComputeResponseFFT calculates the magnitude response on a power-of-2 grid
// using a zero-padded real FFT. This is an independent cross-check of
// ComputeResponse: the two agree at shared grid points within floating-point
// tolerance.
//
// The returned Response has fftSize/2 + 1 points covering 0 to Nyquist
// inclusive.
func ComputeResponseFFT(taps []float64, fftSize int) Response {
	if fftSize < minResponseFFTSize {
		fftSize = minResponseFFTSize
	}
	// Round up to power of 2 for FFT efficiency
	size := 1
	for size < fftSize {
		size <<= 1
	}

	padded := make([]float64, size)
	copy(padded, taps)

	fft := fourier.NewFFT(size)
	coeffs := fft.Coefficients(nil, padded)

	numBins := size/fftHermitianDivisor + 1
	response := Response{
		Frequencies: make([]float64, numBins),
		Magnitude:   make([]float64, numBins),
		Phase:       make([]float64, numBins),
	}

	for k := range numBins {
		response.Frequencies[k] = float64(k) / float64(size)
		response.Magnitude[k] = cmplx.Abs(coeffs[k])
		response.Phase[k] = cmplx.Phase(coeffs[k])
	}

	return response
}

// MagnitudeAt evaluates the DTFT magnitude at a single normalized frequency
// (0 to 0.5). Useful for spot checks of pass-band and stop-band gain.
func MagnitudeAt(taps []float64, freq float64) float64 {
	var realPart, imagPart float64
	omega := 2 * math.Pi * freq

	for n, h := range taps {
		angle := omega * float64(n)
		realPart += h * math.Cos(angle)
		imagPart -= h * math.Sin(angle)
	}

	return math.Sqrt(realPart*realPart + imagPart*imagPart)
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0  // 20*log10 for magnitude
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
