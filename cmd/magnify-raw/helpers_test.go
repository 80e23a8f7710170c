package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-video-magnify/internal/engine"
)

const (
	testWidth  = 4
	testHeight = 3
)

// patternFrame32 fills a frame with distinct per-plane, per-pixel values.
func patternFrame32(offset float32) engine.Frame[float32] {
	f := engine.NewFrame[float32](testWidth, testHeight)
	for c := range f.Planes {
		for i := range f.Planes[c] {
			f.Planes[c][i] = offset + float32(c)*100 + float32(i)
		}
	}
	return f
}

// TestFrame32RoundTrip writes frames to a buffer and reads them back.
func TestFrame32RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	first := patternFrame32(0.5)
	second := patternFrame32(-7.25)
	require.NoError(t, writeFrame32(&buf, first))
	require.NoError(t, writeFrame32(&buf, second))

	got, err := readFrame32(&buf, testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, first.Planes, got.Planes)

	got, err = readFrame32(&buf, testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, second.Planes, got.Planes)
}

// TestFrame64RoundTrip runs the widening reader against the narrowing
// writer. Values representable in float32 survive exactly.
func TestFrame64RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	scratch := make([]float32, testWidth*testHeight)

	src := patternFrame32(3)
	require.NoError(t, writeFrame32(&buf, src))

	frame, err := readFrame(&buf, testWidth, testHeight, scratch)
	require.NoError(t, err)
	assert.Equal(t, testWidth, frame.Width)
	for i, v := range src.Planes[0] {
		assert.Equal(t, float64(v), frame.Y[i], "Y pixel %d", i)
	}
	for i, v := range src.Planes[1] {
		assert.Equal(t, float64(v), frame.Cb[i], "Cb pixel %d", i)
	}
	for i, v := range src.Planes[2] {
		assert.Equal(t, float64(v), frame.Cr[i], "Cr pixel %d", i)
	}

	var out bytes.Buffer
	require.NoError(t, writeFrame(&out, frame, scratch))

	back, err := readFrame32(&out, testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, src.Planes, back.Planes)
}

// TestReadFrame_CleanEOF distinguishes a stream ending on a frame boundary
// (io.EOF) from one truncated mid-frame (io.ErrUnexpectedEOF).
func TestReadFrame_CleanEOF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeFrame32(&buf, patternFrame32(1)))

	_, err := readFrame32(&buf, testWidth, testHeight)
	require.NoError(t, err)

	_, err = readFrame32(&buf, testWidth, testHeight)
	assert.Equal(t, io.EOF, err, "boundary EOF must stay io.EOF")
}

// TestReadFrame_TruncatedFrame reports truncation inside a frame.
func TestReadFrame_TruncatedFrame(t *testing.T) {
	var full bytes.Buffer
	require.NoError(t, writeFrame32(&full, patternFrame32(1)))

	tests := []struct {
		name string
		keep int
	}{
		{"cut_mid_first_plane", testWidth*testHeight*4 - 2},
		{"cut_between_planes", testWidth * testHeight * 4},
		{"cut_mid_last_plane", 2*testWidth*testHeight*4 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(full.Bytes()[:tt.keep])
			_, err := readFrame32(r, testWidth, testHeight)
			assert.Equal(t, io.ErrUnexpectedEOF, err)

			scratch := make([]float32, testWidth*testHeight)
			r = bytes.NewReader(full.Bytes()[:tt.keep])
			_, err = readFrame(r, testWidth, testHeight, scratch)
			assert.Equal(t, io.ErrUnexpectedEOF, err)
		})
	}
}
