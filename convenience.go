package magnify

// NewPulseMagnifier creates a magnifier tuned for heart-rate color
// amplification: a narrow band around 0.83-1 Hz (50-60 bpm) with strong
// gain and undamped chroma, since the pulse signal lives largely in the
// color planes.
//
// fps is the video frame rate in Hz.
func NewPulseMagnifier(fps float64) (*Magnifier, error) {
	return New(&Config{
		LowCutoff:         PulseLowCutoff,
		HighCutoff:        PulseHighCutoff,
		SampleRate:        fps,
		TapCount:          DefaultTapCount,
		Alpha:             PulseAlpha,
		ChromaAttenuation: PulseChroma,
	})
}

// NewMotionMagnifier creates a magnifier tuned for subtle mechanical
// motion: a wide 0.4-3 Hz band with moderate gain and heavily damped
// chroma.
//
// fps is the video frame rate in Hz.
func NewMotionMagnifier(fps float64) (*Magnifier, error) {
	return New(&Config{
		LowCutoff:         MotionLowCutoff,
		HighCutoff:        MotionHighCutoff,
		SampleRate:        fps,
		TapCount:          DefaultTapCount,
		Alpha:             MotionAlpha,
		ChromaAttenuation: MotionChroma,
	})
}

// NewSimple creates a magnifier for an arbitrary pass-band with default
// gain, chroma handling, and filter length.
func NewSimple(lowCutoff, highCutoff, fps float64) (*Magnifier, error) {
	return New(&Config{
		LowCutoff:         lowCutoff,
		HighCutoff:        highCutoff,
		SampleRate:        fps,
		TapCount:          DefaultTapCount,
		Alpha:             DefaultAlpha,
		ChromaAttenuation: DefaultChromaAttenuation,
	})
}
