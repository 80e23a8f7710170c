// Package engine implements the temporal FIR band-pass filter at the core of
// Eulerian video magnification.
//
// The filter convolves each pixel's value across a bounded history of frames
// with symmetric band-pass coefficients, attenuates the chrominance planes,
// and scales the result by the magnification factor. Output is causal with a
// fixed latency equal to the history depth.
//
// Type parameter F must be float32 or float64, controlling the precision of
// per-pixel arithmetic. Filter design always runs in float64; coefficients
// are narrowed to F only when the engine is instantiated at float32.
package engine

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-video-magnify/internal/filter"
	"github.com/tphakala/go-video-magnify/internal/simdops"
)

// bytesPerSample sizes for memory accounting.
const (
	bytesPerFloat32 = 4
	bytesPerFloat64 = 8
)

// TemporalFilter applies a temporal band-pass FIR filter with magnification
// to a stream of planar video frames.
//
// The filter is fed one frame at a time through Ingest. The first
// tapCount-1 calls accumulate history and report no output (warming up);
// every call after that produces exactly one filtered frame (steady state).
// There is no transition back to warming up except via Reset.
//
// Ingest is the only mutating operation and must not be called concurrently
// on the same instance. The per-plane arithmetic may run on internal worker
// goroutines when parallel is enabled; plane outputs are disjoint and the
// per-pixel reduction order is fixed, so results are bit-identical either way.
type TemporalFilter[F simdops.Float] struct {
	// Coefficients at processing precision, plus the float64 originals
	// for introspection.
	taps   []F
	taps64 []float64

	alpha       F
	chromaAtten F
	parallel    bool

	// Frame shape established by the first ingested frame.
	width  int
	height int

	hist *history[F]

	// steady flips once, on the ingest that first fills the history.
	steady bool

	// SIMD operations for type F
	ops *simdops.Ops[F]

	// Statistics
	framesIn  int64
	framesOut int64
}

// NewTemporalFilter designs the band-pass filter once and retains the
// coefficients, magnification factor, and chroma attenuation for the
// lifetime of the engine. All three are immutable after construction.
//
// Parameters:
//   - params: band-pass design parameters (validated, never clamped)
//   - alpha: magnification factor applied to every channel (> 0)
//   - chromaAttenuation: extra gain on the chrominance planes (>= 0);
//     the net chroma gain is alpha*chromaAttenuation
//   - parallel: process the three planes on separate goroutines
func NewTemporalFilter[F simdops.Float](params filter.BandPassParams, alpha, chromaAttenuation float64, parallel bool) (*TemporalFilter[F], error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("%w: magnification factor must be positive, got %f", filter.ErrInvalidParams, alpha)
	}
	if chromaAttenuation < 0 {
		return nil, fmt.Errorf("%w: chroma attenuation must be non-negative, got %f", filter.ErrInvalidParams, chromaAttenuation)
	}

	taps64, err := filter.DesignBandPass(params)
	if err != nil {
		return nil, err
	}

	taps := make([]F, len(taps64))
	for i, t := range taps64 {
		taps[i] = F(t)
	}

	return &TemporalFilter[F]{
		taps:        taps,
		taps64:      taps64,
		alpha:       F(alpha),
		chromaAtten: F(chromaAttenuation),
		parallel:    parallel,
		ops:         simdops.For[F](),
	}, nil
}

// Ingest consumes one frame and, once enough history has accumulated,
// produces one filtered-and-amplified frame.
//
// The frame is copied on entry; the caller keeps ownership of its own
// storage and may overwrite it before the next call. The returned frame is
// owned by the caller.
//
// Returns ok=false while the engine is warming up (exactly the first
// tapCount-1 calls). A frame whose shape deviates from the first ingested
// frame fails with ErrShapeMismatch and leaves the history unchanged.
func (tf *TemporalFilter[F]) Ingest(frame Frame[F]) (Frame[F], bool, error) {
	if err := frame.CheckShape(); err != nil {
		return Frame[F]{}, false, err
	}

	if tf.hist == nil {
		// First frame establishes the shape and sizes the arena.
		tf.width = frame.Width
		tf.height = frame.Height
		tf.hist = newHistory[F](len(tf.taps), tf.width, tf.height)
	} else if frame.Width != tf.width || frame.Height != tf.height {
		return Frame[F]{}, false, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrShapeMismatch, frame.Width, frame.Height, tf.width, tf.height)
	}

	tf.framesIn++
	tf.hist.push(frame)

	if !tf.hist.full() {
		return Frame[F]{}, false, nil
	}
	tf.steady = true

	out := NewFrame[F](tf.width, tf.height)

	if tf.parallel {
		var wg sync.WaitGroup
		for c := range NumChannels {
			wg.Add(1)
			go func(channel int) {
				defer wg.Done()
				tf.convolvePlane(out.Planes[channel], channel)
			}(c)
		}
		wg.Wait()
	} else {
		for c := range NumChannels {
			tf.convolvePlane(out.Planes[c], c)
		}
	}

	tf.hist.evict()
	tf.framesOut++

	return out, true, nil
}

// convolvePlane computes one output plane as the weighted sum of the
// corresponding plane across the full history, newest first, then applies
// the magnification gain.
//
// The summation runs in ascending tap order so the floating-point reduction
// order is fixed and outputs are reproducible.
func (tf *TemporalFilter[F]) convolvePlane(dst []F, channel int) {
	chromaScale := F(1)
	if channel != ChannelLuma {
		chromaScale = tf.chromaAtten
	}

	// Seed the accumulator with the newest frame's contribution.
	tf.ops.Scale(dst, tf.hist.at(0).Planes[channel], tf.taps[0]*chromaScale)

	for n := 1; n < len(tf.taps); n++ {
		src := tf.hist.at(n).Planes[channel]
		w := tf.taps[n] * chromaScale
		for i := range dst {
			dst[i] += w * src[i]
		}
	}

	// Amplify. Applied after chroma attenuation, so the net chroma gain is
	// alpha*chromaAttenuation and the net luminance gain is alpha.
	tf.ops.Scale(dst, dst, tf.alpha)
}

// Ready reports whether the history has reached capacity at least once,
// i.e. the engine is in steady state and every further Ingest yields an
// output frame.
func (tf *TemporalFilter[F]) Ready() bool {
	return tf.steady
}

// HistoryLen returns the number of frames currently retained.
func (tf *TemporalFilter[F]) HistoryLen() int {
	if tf.hist == nil {
		return 0
	}
	return tf.hist.len()
}

// TapCount returns the filter length.
func (tf *TemporalFilter[F]) TapCount() int {
	return len(tf.taps)
}

// Latency returns the fixed per-frame latency in frames: output frame k
// reflects input frames k-tapCount+1 through k.
func (tf *TemporalFilter[F]) Latency() int {
	return len(tf.taps) - 1
}

// Taps returns a copy of the filter coefficients at design precision.
func (tf *TemporalFilter[F]) Taps() []float64 {
	out := make([]float64, len(tf.taps64))
	copy(out, tf.taps64)
	return out
}

// FramesIn returns the number of frames ingested since construction or Reset.
func (tf *TemporalFilter[F]) FramesIn() int64 {
	return tf.framesIn
}

// FramesOut returns the number of frames produced since construction or Reset.
func (tf *TemporalFilter[F]) FramesOut() int64 {
	return tf.framesOut
}

// MemoryUsage returns the approximate history arena footprint in bytes.
func (tf *TemporalFilter[F]) MemoryUsage() int64 {
	if tf.hist == nil {
		return 0
	}
	var zero F
	bytes := int64(bytesPerFloat64)
	if _, ok := any(zero).(float32); ok {
		bytes = bytesPerFloat32
	}
	planeBytes := int64(tf.width) * int64(tf.height) * bytes
	return int64(len(tf.hist.frames)) * int64(NumChannels) * planeBytes
}

// Reset empties the frame history, returning the engine to the warming-up
// state. The established frame shape and coefficients are retained.
func (tf *TemporalFilter[F]) Reset() {
	if tf.hist != nil {
		tf.hist.reset()
	}
	tf.steady = false
	tf.framesIn = 0
	tf.framesOut = 0
}
