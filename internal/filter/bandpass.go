// Package filter provides FIR filter design functions for temporal video filtering.
package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-video-magnify/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

const (
	// Filter design constants
	minFilterTaps = 3
	maxFilterTaps = 8191

	// Nyquist is half the sample rate
	nyquistDivisor = 2.0

	// Symmetry verification tolerance (relative)
	symmetryTolerance = 1e-9
)

// ErrInvalidParams indicates invalid band-pass design parameters.
// Violations are reported at design time and never silently clamped.
var ErrInvalidParams = errors.New("invalid band-pass filter parameters")

// BandPassParams holds parameters for temporal band-pass filter design.
//
// Frequencies are expressed in Hz against the frame rate of the video,
// e.g. a 30 fps clip has a Nyquist limit of 15 Hz.
type BandPassParams struct {
	// LowCutoff is the lower corner frequency in Hz. Must be below Nyquist.
	LowCutoff float64

	// HighCutoff is the upper corner frequency in Hz. Must not exceed Nyquist.
	HighCutoff float64

	// SampleRate is the temporal sample rate in Hz (video frame rate).
	SampleRate float64

	// NumTaps is the filter length (number of coefficients).
	// Must be odd so the symmetric linear-phase FIR has a whole-sample delay.
	NumTaps int
}

// Validate checks if band-pass design parameters are valid.
func (p *BandPassParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("%w: filter too short: %d taps (minimum %d)", ErrInvalidParams, p.NumTaps, minFilterTaps)
	}

	if p.NumTaps > maxFilterTaps {
		return fmt.Errorf("%w: filter too long: %d taps (maximum %d)", ErrInvalidParams, p.NumTaps, maxFilterTaps)
	}

	if !mathutil.IsOdd(p.NumTaps) {
		return fmt.Errorf("%w: tap count must be odd, got %d", ErrInvalidParams, p.NumTaps)
	}

	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %f", ErrInvalidParams, p.SampleRate)
	}

	nyquist := p.SampleRate / nyquistDivisor

	if p.LowCutoff < 0 {
		return fmt.Errorf("%w: low cutoff must be non-negative, got %f", ErrInvalidParams, p.LowCutoff)
	}

	if p.LowCutoff >= nyquist {
		return fmt.Errorf("%w: low cutoff %f Hz must be below Nyquist (%f Hz)", ErrInvalidParams, p.LowCutoff, nyquist)
	}

	if p.HighCutoff > nyquist {
		return fmt.Errorf("%w: high cutoff %f Hz exceeds Nyquist (%f Hz)", ErrInvalidParams, p.HighCutoff, nyquist)
	}

	if p.LowCutoff > p.HighCutoff {
		return fmt.Errorf("%w: low cutoff %f Hz above high cutoff %f Hz", ErrInvalidParams, p.LowCutoff, p.HighCutoff)
	}

	return nil
}

// DesignBandPass designs a windowed-sinc band-pass FIR filter.
//
// The impulse response is the difference of two normalized sinc low-pass
// responses (cutoffs HighCutoff and LowCutoff), shaped by a Blackman window
// to suppress spectral leakage:
//
//	h[n] = 2·fh·sinc(2·fh·t) − 2·fl·sinc(2·fl·t),  t = π(n − M/2)
//
// where fh and fl are the cutoffs normalized to the sample rate and M is
// the filter order (NumTaps−1). The center tap reduces to 2(fh − fl).
//
// The construction is symmetric about the center tap (linear phase), which
// is verified as a post-condition rather than assumed.
//
// All computation is performed in float64 regardless of the precision the
// caller later processes frames at; narrow the returned coefficients only
// at the point of use.
//
// A degenerate band with LowCutoff == HighCutoff is mathematically
// well-defined (the response collapses toward zero) and is not an error.
//
// Parameters:
//
//	params: Band-pass design parameters
//
// Returns:
//
//	Filter coefficients (length = params.NumTaps)
//	Error if parameters are invalid
func DesignBandPass(params BandPassParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Filter order M is one less than the tap count. NumTaps is odd,
	// so M is even and M/2 is an exact integer center index.
	order := params.NumTaps - 1
	center := order / 2

	taps := make([]float64, params.NumTaps)

	hi := params.HighCutoff / params.SampleRate
	lo := params.LowCutoff / params.SampleRate

	for n := range params.NumTaps {
		t := math.Pi * float64(n-center)
		taps[n] = nyquistDivisor*hi*mathutil.Sinc(nyquistDivisor*hi*t) -
			nyquistDivisor*lo*mathutil.Sinc(nyquistDivisor*lo*t)
		taps[n] *= mathutil.BlackmanAt(n, order)
	}

	if err := VerifySymmetry(taps); err != nil {
		return nil, err
	}

	return taps, nil
}

// VerifySymmetry checks the linear-phase post-condition taps[i] == taps[N-1-i]
// within a relative tolerance. The tolerance is scaled by the largest tap
// magnitude: near-zero edge taps sit at the floor of the Blackman window,
// where a pairwise relative comparison would be meaningless. A violation
// indicates a design defect, not a caller error.
func VerifySymmetry(taps []float64) error {
	var scale float64
	for _, t := range taps {
		if a := math.Abs(t); a > scale {
			scale = a
		}
	}

	n := len(taps)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if diff := math.Abs(taps[i] - taps[j]); diff > symmetryTolerance*scale {
			return fmt.Errorf("filter not symmetric at tap %d: %g != %g", i, taps[i], taps[j])
		}
	}
	return nil
}

// DCGain returns the filter's response to a constant input, i.e. the sum of
// the coefficients. A band-pass filter whose pass-band excludes 0 Hz has a
// DC gain near zero.
func DCGain(taps []float64) float64 {
	return f64.Sum(taps)
}
