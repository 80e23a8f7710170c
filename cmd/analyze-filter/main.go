// Command analyze-filter prints the designed temporal band-pass taps and
// their frequency response for a given pass-band and frame rate.
//
// Usage:
//
//	analyze-filter -low 0.83 -high 1.0 -fps 30 -taps 31
//	analyze-filter -low 0.4 -high 3 -fps 60 -taps 61 -points 64
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tphakala/go-video-magnify/internal/filter"
)

const (
	// CLI defaults (pulse preset at NTSC rate)
	defaultLowCutoff  = 0.8333
	defaultHighCutoff = 1.0
	defaultFrameRate  = 30.0
	defaultTapCount   = 31

	// Response table defaults
	defaultTablePoints = 32
	responseFFTSize    = 1024
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	low := flag.Float64("low", defaultLowCutoff, "Lower corner frequency in Hz")
	high := flag.Float64("high", defaultHighCutoff, "Upper corner frequency in Hz")
	fps := flag.Float64("fps", defaultFrameRate, "Video frame rate in Hz")
	taps := flag.Int("taps", defaultTapCount, "Filter length (odd)")
	points := flag.Int("points", defaultTablePoints, "Response table rows")
	showTaps := flag.Bool("coeffs", false, "Print individual coefficients")
	flag.Parse()

	params := filter.BandPassParams{
		LowCutoff:  *low,
		HighCutoff: *high,
		SampleRate: *fps,
		NumTaps:    *taps,
	}

	coeffs, err := filter.DesignBandPass(params)
	if err != nil {
		return err
	}

	fmt.Printf("Band-pass filter: %.4f-%.4f Hz @ %.2f fps, %d taps\n",
		*low, *high, *fps, *taps)
	fmt.Printf("DC gain: %.6e (%.2f dB)\n",
		filter.DCGain(coeffs), filter.MagnitudeDB(filter.DCGain(coeffs)))
	fmt.Printf("Center tap: %.6e\n", coeffs[len(coeffs)/2])

	if *showTaps {
		fmt.Println("\nCoefficients:")
		for i, c := range coeffs {
			fmt.Printf("  h[%3d] = %+.10e\n", i, c)
		}
	}

	// Direct DTFT response with an FFT cross-check on the shared grid.
	resp := filter.ComputeResponse(coeffs, responseFFTSize/2)
	respFFT := filter.ComputeResponseFFT(coeffs, responseFFTSize)

	fmt.Println("\n  freq (Hz)   magnitude        dB      fft check")
	step := len(resp.Frequencies) / *points
	if step < 1 {
		step = 1
	}
	for k := 0; k < len(resp.Frequencies); k += step {
		freqHz := resp.Frequencies[k] * *fps
		fmt.Printf("  %9.4f   %.6e  %8.2f  %.6e\n",
			freqHz, resp.Magnitude[k],
			filter.MagnitudeDB(resp.Magnitude[k]),
			respFFT.Magnitude[k])
	}

	return nil
}
