package main

import (
	"encoding/binary"
	"fmt"
	"io"

	magnify "github.com/tphakala/go-video-magnify"
	"github.com/tphakala/go-video-magnify/internal/engine"
)

// Raw stream layout: frames are stored back to back, each frame as three
// planar little-endian float32 planes (Y, then Cb, then Cr), row-major,
// width*height samples per plane. There is no header; dimensions come from
// the command line.

// readPlane fills dst with little-endian float32 samples.
func readPlane(r io.Reader, dst []float32) error {
	return binary.Read(r, binary.LittleEndian, dst)
}

// writePlane writes src as little-endian float32 samples.
func writePlane(w io.Writer, src []float32) error {
	return binary.Write(w, binary.LittleEndian, src)
}

// readFrame32 reads one frame at float32 precision. Returns io.EOF when the
// stream ends cleanly on a frame boundary, io.ErrUnexpectedEOF when it ends
// mid-frame.
func readFrame32(r io.Reader, width, height int) (engine.Frame[float32], error) {
	frame := engine.NewFrame[float32](width, height)
	for c := range frame.Planes {
		if err := readPlane(r, frame.Planes[c]); err != nil {
			if c > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return engine.Frame[float32]{}, err
		}
	}
	return frame, nil
}

// writeFrame32 writes one float32 frame.
func writeFrame32(w io.Writer, frame engine.Frame[float32]) error {
	for c := range frame.Planes {
		if err := writePlane(w, frame.Planes[c]); err != nil {
			return fmt.Errorf("write plane %d: %w", c, err)
		}
	}
	return nil
}

// readFrame reads one frame, widening to the float64 public API type.
func readFrame(r io.Reader, width, height int, scratch []float32) (*magnify.Frame, error) {
	frame := magnify.NewFrame(width, height)
	planes := [][]float64{frame.Y, frame.Cb, frame.Cr}
	for c, plane := range planes {
		if err := readPlane(r, scratch); err != nil {
			if c > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		for i, v := range scratch {
			plane[i] = float64(v)
		}
	}
	return frame, nil
}

// writeFrame narrows a float64 frame back to the float32 stream format.
func writeFrame(w io.Writer, frame *magnify.Frame, scratch []float32) error {
	planes := [][]float64{frame.Y, frame.Cb, frame.Cr}
	for c, plane := range planes {
		for i, v := range plane {
			scratch[i] = float32(v)
		}
		if err := writePlane(w, scratch); err != nil {
			return fmt.Errorf("write plane %d: %w", c, err)
		}
	}
	return nil
}
