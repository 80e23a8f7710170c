package magnify

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-video-magnify/internal/engine"
	"github.com/tphakala/go-video-magnify/internal/filter"
)

// Common errors returned by the magnifier.
var (
	// ErrInvalidSpec indicates invalid filter specification parameters.
	// Raised at construction, before any frame is processed.
	ErrInvalidSpec = errors.New("invalid magnification spec")

	// ErrShapeMismatch indicates a frame whose dimensions deviate from the
	// shape established by the first processed frame. The offending frame
	// is rejected and the magnifier's state is left unchanged.
	ErrShapeMismatch = engine.ErrShapeMismatch
)

// Config holds temporal magnification configuration.
type Config struct {
	// LowCutoff is the lower corner frequency of the pass-band in Hz.
	// Must be below the Nyquist limit (SampleRate/2).
	LowCutoff float64

	// HighCutoff is the upper corner frequency of the pass-band in Hz.
	// Must not exceed the Nyquist limit.
	HighCutoff float64

	// SampleRate is the temporal sample rate in Hz, i.e. the video frame
	// rate the input was captured at.
	SampleRate float64

	// TapCount is the FIR filter length. Must be odd and at least 3.
	// Longer filters select the band more sharply at the cost of a longer
	// warm-up and a larger frame history.
	TapCount int

	// Alpha is the magnification factor applied to the filtered signal
	// before recombination. Must be positive.
	Alpha float64

	// ChromaAttenuation scales the chrominance planes relative to
	// luminance (net chroma gain is Alpha*ChromaAttenuation). Human vision
	// is less sensitive to chroma variation, and over-amplified chroma
	// noise produces visible color artifacts. Must be non-negative.
	ChromaAttenuation float64

	// EnableParallel processes the three planes on separate goroutines.
	// Output values are unaffected; the per-pixel reduction order is fixed.
	EnableParallel bool
}

// bandParams maps the config onto the filter designer's parameters.
func (c *Config) bandParams() filter.BandPassParams {
	return filter.BandPassParams{
		LowCutoff:  c.LowCutoff,
		HighCutoff: c.HighCutoff,
		SampleRate: c.SampleRate,
		NumTaps:    c.TapCount,
	}
}

// Validate checks if the configuration is valid. Violations are reported,
// never silently clamped.
func (c *Config) Validate() error {
	params := c.bandParams()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	if c.Alpha <= 0 {
		return fmt.Errorf("%w: magnification factor must be positive, got %f", ErrInvalidSpec, c.Alpha)
	}

	if c.ChromaAttenuation < 0 {
		return fmt.Errorf("%w: chroma attenuation must be non-negative, got %f", ErrInvalidSpec, c.ChromaAttenuation)
	}

	return nil
}

// State enumerates the magnifier's observable phases.
type State int

const (
	// StateWarmingUp means the frame history has not yet reached capacity;
	// Process buffers input and reports no output.
	StateWarmingUp State = iota

	// StateSteady means every further Process call yields one output frame.
	// There is no transition back to StateWarmingUp except via Reset.
	StateSteady
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWarmingUp:
		return "warming-up"
	case StateSteady:
		return "steady"
	default:
		return "unknown"
	}
}

// Magnifier applies a temporal band-pass filter with magnification to a
// stream of video frames. Construct with New or one of the preset
// constructors; feed frames one at a time through Process.
type Magnifier struct {
	config Config
	engine *engine.TemporalFilter[float64]
}

// New creates a magnifier from the given configuration. The band-pass
// filter is designed once at construction; coefficients, magnification
// factor, and chroma attenuation are immutable afterwards.
func New(config *Config) (*Magnifier, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidSpec)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	eng, err := engine.NewTemporalFilter[float64](
		config.bandParams(), config.Alpha, config.ChromaAttenuation, config.EnableParallel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	return &Magnifier{
		config: *config,
		engine: eng,
	}, nil
}

// Process consumes one frame and, once the history is full, returns the
// band-passed, amplified frame of the same shape.
//
// The boolean result distinguishes warm-up from steady state: ok=false with
// a nil error means the magnifier is still accumulating history, which
// happens for exactly the first TapCount-1 calls. The input frame is copied
// on ingestion; ownership of the returned frame passes to the caller.
func (m *Magnifier) Process(frame *Frame) (*Frame, bool, error) {
	if frame == nil {
		return nil, false, fmt.Errorf("%w: nil frame", ErrShapeMismatch)
	}

	in := engine.Frame[float64]{
		Width:  frame.Width,
		Height: frame.Height,
		Planes: [engine.NumChannels][]float64{frame.Y, frame.Cb, frame.Cr},
	}

	out, ok, err := m.engine.Ingest(in)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	return &Frame{
		Width:  out.Width,
		Height: out.Height,
		Y:      out.Planes[engine.ChannelLuma],
		Cb:     out.Planes[engine.ChannelChromaB],
		Cr:     out.Planes[engine.ChannelChromaR],
	}, true, nil
}

// State returns the magnifier's observable phase.
func (m *Magnifier) State() State {
	if m.engine.Ready() {
		return StateSteady
	}
	return StateWarmingUp
}

// Latency returns the fixed signal latency in frames (TapCount-1).
func (m *Magnifier) Latency() int {
	return m.engine.Latency()
}

// TapCount returns the designed filter length.
func (m *Magnifier) TapCount() int {
	return m.engine.TapCount()
}

// Taps returns a copy of the designed filter coefficients.
func (m *Magnifier) Taps() []float64 {
	return m.engine.Taps()
}

// Reset empties the frame history, returning the magnifier to warm-up.
// Coefficients and configuration are retained.
func (m *Magnifier) Reset() {
	m.engine.Reset()
}

// Info describes a magnifier's filter and resource usage.
type Info struct {
	// TapCount is the FIR filter length.
	TapCount int

	// Latency is the signal latency in frames.
	Latency int

	// FramesIn and FramesOut count processed frames since construction
	// or the last Reset.
	FramesIn  int64
	FramesOut int64

	// MemoryUsage is the approximate frame-history footprint in bytes.
	MemoryUsage int64

	// Parallel indicates per-plane goroutine fan-out.
	Parallel bool
}

// GetInfo returns information about the magnifier.
func (m *Magnifier) GetInfo() Info {
	return Info{
		TapCount:    m.engine.TapCount(),
		Latency:     m.engine.Latency(),
		FramesIn:    m.engine.FramesIn(),
		FramesOut:   m.engine.FramesOut(),
		MemoryUsage: m.engine.MemoryUsage(),
		Parallel:    m.config.EnableParallel,
	}
}
