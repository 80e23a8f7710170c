package magnify

import "github.com/tphakala/go-video-magnify/internal/engine"

// Frame is a planar three-channel video frame in a luminance/chrominance
// representation (Y' plus two color-difference planes), stored as float64
// to avoid quantization loss across repeated filtering.
//
// Planes are row-major slices of length Width*Height. Frames passed to
// Process remain owned by the caller: the magnifier copies pixel data on
// ingestion, so the caller may reuse its buffers between calls.
type Frame struct {
	Width  int
	Height int

	// Y is the luminance-like plane.
	Y []float64

	// Cb and Cr are the chrominance-like planes.
	Cb []float64
	Cr []float64
}

// NewFrame allocates a zero-valued frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	n := width * height
	return &Frame{
		Width:  width,
		Height: height,
		Y:      make([]float64, n),
		Cb:     make([]float64, n),
		Cr:     make([]float64, n),
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := NewFrame(f.Width, f.Height)
	copy(out.Y, f.Y)
	copy(out.Cb, f.Cb)
	copy(out.Cr, f.Cr)
	return out
}

// Index returns the plane offset of pixel (x, y).
func (f *Frame) Index(x, y int) int {
	return y*f.Width + x
}

// PixelCount returns the number of pixels per plane.
func (f *Frame) PixelCount() int {
	return f.Width * f.Height
}

// LumaRMS returns the root-mean-square amplitude of the luminance plane.
// On a magnified output frame this measures the amplified band-pass signal.
func (f *Frame) LumaRMS() float64 {
	in := engine.Frame[float64]{
		Width:  f.Width,
		Height: f.Height,
		Planes: [engine.NumChannels][]float64{f.Y, f.Cb, f.Cr},
	}
	return in.PlaneRMS(engine.ChannelLuma)
}
