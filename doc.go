// Package magnify provides temporal video magnification in pure Go.
//
// The library amplifies small periodic signals hidden in a video stream,
// such as the color variation of skin with each heartbeat or sub-pixel
// mechanical vibration, by band-pass filtering each pixel's value across
// time and adding the amplified result back to the original signal. It
// implements the temporal filtering core of Eulerian Video Magnification
// (Wu et al., SIGGRAPH 2012).
//
// # Features
//
//   - Windowed-sinc FIR band-pass design (difference of sincs under a
//     Blackman window) with verified linear phase
//   - Bounded frame-history ring with O(1) push/evict and no steady-state
//     allocation
//   - Independent luminance/chrominance treatment with configurable chroma
//     attenuation
//   - Optional per-plane parallelism with bit-identical output
//   - float64 public API with a float32 engine available for speed
//     (see internal engine usage in cmd/magnify-raw)
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
//	m, err := magnify.NewPulseMagnifier(30) // 30 fps input
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for frame := range frames { // planar Y'CbCr, spatially downsampled
//	    out, ok, err := m.Process(frame)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if !ok {
//	        continue // warming up: the first TapCount-1 frames yield no output
//	    }
//	    recombine(out) // add onto the upsampled original
//	}
//
// # Pipeline Position
//
// The magnifier is the numerical core of a larger pipeline and deliberately
// excludes its collaborators: video decoding and encoding, RGB↔Y'CbCr
// conversion, and spatial pyramid down/upsampling all happen outside. Frames
// enter as planar floating-point Y'CbCr, already downsampled; the returned
// band-passed, amplified frame is added back onto the original by the caller.
//
// # Warm-up and Latency
//
// A magnifier with N taps buffers the first N-1 frames without producing
// output, then emits one frame per input. Output frame k is a weighted sum
// of input frames k-N+1 through k, so the signal latency is N-1 frames.
// Once input ends, the trailing N-1 frames never produce output; there is
// no drain operation.
//
// # Thread Safety
//
// A Magnifier instance is designed for single-threaded, one-frame-at-a-time
// use: Process must not be called concurrently on the same instance. The
// per-plane arithmetic may fan out to internal goroutines when
// Config.EnableParallel is set; this never changes output values.
package magnify
