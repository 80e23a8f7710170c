package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-video-magnify/internal/simdops"
)

// Channel layout constants. The engine is specialized to one luminance-like
// plane and two chrominance-like planes.
const (
	// NumChannels is the fixed per-pixel channel count.
	NumChannels = 3

	// ChannelLuma is the index of the luminance-like plane.
	ChannelLuma = 0

	// ChannelChromaB and ChannelChromaR are the chrominance plane indices.
	ChannelChromaB = 1
	ChannelChromaR = 2
)

// ErrShapeMismatch indicates a frame whose dimensions or plane layout
// deviate from the shape established by the first ingested frame.
var ErrShapeMismatch = errors.New("frame shape mismatch")

// Frame is a planar three-channel video frame at precision F.
//
// Planes are stored row-major, one slice per channel, each of length
// Width*Height. Channel 0 is luminance-like, channels 1-2 chrominance-like.
type Frame[F simdops.Float] struct {
	Width  int
	Height int
	Planes [NumChannels][]F
}

// NewFrame allocates a zero-valued frame of the given dimensions.
func NewFrame[F simdops.Float](width, height int) Frame[F] {
	f := Frame[F]{Width: width, Height: height}
	n := width * height
	for c := range f.Planes {
		f.Planes[c] = make([]F, n)
	}
	return f
}

// Clone returns a deep copy of the frame. The engine clones every ingested
// frame so callers may reuse or overwrite their own frame buffers between
// calls without corrupting the history.
func (f Frame[F]) Clone() Frame[F] {
	out := Frame[F]{Width: f.Width, Height: f.Height}
	for c := range f.Planes {
		out.Planes[c] = make([]F, len(f.Planes[c]))
		copy(out.Planes[c], f.Planes[c])
	}
	return out
}

// copyFrom copies src's pixel data into f without allocating.
// Both frames must have identical shape.
func (f *Frame[F]) copyFrom(src Frame[F]) {
	for c := range f.Planes {
		copy(f.Planes[c], src.Planes[c])
	}
}

// PixelCount returns the number of pixels per plane.
func (f Frame[F]) PixelCount() int {
	return f.Width * f.Height
}

// PlaneRMS returns the root-mean-square amplitude of the given plane,
// a cheap signal strength measure for progress reporting.
func (f Frame[F]) PlaneRMS(channel int) float64 {
	n := f.PixelCount()
	if n == 0 {
		return 0
	}
	plane := f.Planes[channel]
	energy := float64(simdops.For[F]().DotProductUnsafe(plane, plane))
	return math.Sqrt(energy / float64(n))
}

// SameShape reports whether two frames share dimensions.
func (f Frame[F]) SameShape(other Frame[F]) bool {
	return f.Width == other.Width && f.Height == other.Height
}

// CheckShape validates the frame's internal consistency: positive
// dimensions and plane lengths matching Width*Height.
func (f Frame[F]) CheckShape() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrShapeMismatch, f.Width, f.Height)
	}
	n := f.PixelCount()
	for c := range f.Planes {
		if len(f.Planes[c]) != n {
			return fmt.Errorf("%w: plane %d has %d samples, want %d", ErrShapeMismatch, c, len(f.Planes[c]), n)
		}
	}
	return nil
}
