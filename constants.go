package magnify

// DefaultTapCount is a reasonable filter length for typical frame rates:
// long enough for useful band selectivity at 30 fps, short enough that the
// warm-up and memory cost stay modest.
const DefaultTapCount = 31

// Defaults matching the reference magnification filter.
const (
	// DefaultAlpha is the default magnification factor.
	DefaultAlpha = 50.0

	// DefaultChromaAttenuation applies no extra chroma damping.
	DefaultChromaAttenuation = 1.0
)

// Pulse preset: amplifies the blood-flow color signal. The band brackets
// resting heart rates (50-60 bpm).
const (
	PulseLowCutoff  = 0.8333 // Hz, 50 bpm
	PulseHighCutoff = 1.0    // Hz, 60 bpm
	PulseAlpha      = 50.0
	PulseChroma     = 1.0
)

// Motion preset: amplifies subtle mechanical motion. Chroma is damped hard
// because amplified chroma noise shows up as color blotches long before
// luminance noise becomes visible.
const (
	MotionLowCutoff  = 0.4 // Hz
	MotionHighCutoff = 3.0 // Hz
	MotionAlpha      = 10.0
	MotionChroma     = 0.1
)

// Common video frame rates for convenience.
const (
	// RateFilm is the cinema frame rate.
	RateFilm = 24.0

	// RatePAL is the PAL/SECAM broadcast frame rate.
	RatePAL = 25.0

	// RateNTSC is the NTSC broadcast frame rate (approximated as 30).
	RateNTSC = 30.0

	// RateHFR is the common high-frame-rate capture rate.
	RateHFR = 60.0
)
