package magnify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTaps   = 5
	testWidth  = 8
	testHeight = 6
)

// validConfig returns a small, fast configuration used across the tests.
func validConfig() *Config {
	return &Config{
		LowCutoff:         PulseLowCutoff,
		HighCutoff:        PulseHighCutoff,
		SampleRate:        RateNTSC,
		TapCount:          testTaps,
		Alpha:             DefaultAlpha,
		ChromaAttenuation: DefaultChromaAttenuation,
	}
}

// testFrame builds a frame with a deterministic per-plane pattern.
func testFrame(phase float64) *Frame {
	f := NewFrame(testWidth, testHeight)
	for i := range f.Y {
		f.Y[i] = math.Sin(phase + 0.37*float64(i))
		f.Cb[i] = math.Sin(phase + 0.37*float64(i) + 1.1)
		f.Cr[i] = math.Sin(phase + 0.37*float64(i) + 2.2)
	}
	return f
}

// TestConfig_Validate exercises the precondition table, including the
// Nyquist rejection scenario high=25 at 30 fps.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero_width_band", func(c *Config) { c.LowCutoff = c.HighCutoff }, false},
		{"high_above_nyquist", func(c *Config) { c.LowCutoff, c.HighCutoff = 20, 25 }, true},
		{"low_above_high", func(c *Config) { c.LowCutoff, c.HighCutoff = 2, 1 }, true},
		{"negative_low", func(c *Config) { c.LowCutoff = -1 }, true},
		{"even_taps", func(c *Config) { c.TapCount = 4 }, true},
		{"too_few_taps", func(c *Config) { c.TapCount = 1 }, true},
		{"zero_sample_rate", func(c *Config) { c.SampleRate = 0 }, true},
		{"zero_alpha", func(c *Config) { c.Alpha = 0 }, true},
		{"negative_alpha", func(c *Config) { c.Alpha = -10 }, true},
		{"negative_chroma", func(c *Config) { c.ChromaAttenuation = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpec)

				m, newErr := New(config)
				assert.Nil(t, m)
				assert.ErrorIs(t, newErr, ErrInvalidSpec)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestNew_NilConfig rejects a nil configuration.
func TestNew_NilConfig(t *testing.T) {
	m, err := New(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

// TestProcess_WarmUpThenSteady verifies the full lifecycle through the
// public API: exactly TapCount-1 buffered calls, then one output per call,
// with the state reflecting each phase.
func TestProcess_WarmUpThenSteady(t *testing.T) {
	m, err := New(validConfig())
	require.NoError(t, err)

	assert.Equal(t, StateWarmingUp, m.State())
	assert.Equal(t, testTaps-1, m.Latency())
	assert.Equal(t, testTaps, m.TapCount())

	for i := range testTaps - 1 {
		out, ok, err := m.Process(testFrame(float64(i)))
		require.NoError(t, err)
		assert.False(t, ok, "call %d should buffer", i)
		assert.Nil(t, out)
		assert.Equal(t, StateWarmingUp, m.State())
	}

	for i := testTaps - 1; i < testTaps+5; i++ {
		out, ok, err := m.Process(testFrame(float64(i)))
		require.NoError(t, err)
		assert.True(t, ok, "call %d should produce output", i)
		require.NotNil(t, out)
		assert.Equal(t, testWidth, out.Width)
		assert.Equal(t, testHeight, out.Height)
		assert.Len(t, out.Y, out.PixelCount())
		assert.Equal(t, StateSteady, m.State())
	}
}

// TestProcess_NilFrame rejects nil input without disturbing state.
func TestProcess_NilFrame(t *testing.T) {
	m, err := New(validConfig())
	require.NoError(t, err)

	out, ok, err := m.Process(nil)
	assert.Nil(t, out)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, StateWarmingUp, m.State())
}

// TestProcess_ShapeMismatch verifies a deviating frame is rejected and the
// stream continues as if the bad frame had never been offered.
func TestProcess_ShapeMismatch(t *testing.T) {
	m, err := New(validConfig())
	require.NoError(t, err)

	_, _, err = m.Process(testFrame(0))
	require.NoError(t, err)

	bad := NewFrame(testWidth+2, testHeight)
	_, ok, err := m.Process(bad)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.False(t, ok)

	info := m.GetInfo()
	assert.Equal(t, int64(1), info.FramesIn, "rejected frame must not count")

	// Warm-up completes with the remaining good frames
	for i := 1; i < testTaps-1; i++ {
		_, ok, err := m.Process(testFrame(float64(i)))
		require.NoError(t, err)
		assert.False(t, ok)
	}
	_, ok, err = m.Process(testFrame(99))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestProcess_CallerKeepsOwnership verifies the input frame is copied: the
// caller may overwrite its buffer after Process returns.
func TestProcess_CallerKeepsOwnership(t *testing.T) {
	reusing, err := New(validConfig())
	require.NoError(t, err)
	fresh, err := New(validConfig())
	require.NoError(t, err)

	buf := NewFrame(testWidth, testHeight)
	for i := range testTaps + 2 {
		src := testFrame(float64(i))

		copy(buf.Y, src.Y)
		copy(buf.Cb, src.Cb)
		copy(buf.Cr, src.Cr)
		outReused, _, err := reusing.Process(buf)
		require.NoError(t, err)

		outFresh, ok, err := fresh.Process(src)
		require.NoError(t, err)
		if ok {
			assert.Equal(t, outFresh.Y, outReused.Y)
			assert.Equal(t, outFresh.Cb, outReused.Cb)
			assert.Equal(t, outFresh.Cr, outReused.Cr)
		}
	}
}

// TestMagnifier_Reset returns the magnifier to warm-up and restarts the
// counters while keeping the coefficients.
func TestMagnifier_Reset(t *testing.T) {
	m, err := New(validConfig())
	require.NoError(t, err)

	for i := range testTaps + 3 {
		_, _, err := m.Process(testFrame(float64(i)))
		require.NoError(t, err)
	}
	require.Equal(t, StateSteady, m.State())
	tapsBefore := m.Taps()

	m.Reset()

	assert.Equal(t, StateWarmingUp, m.State())
	info := m.GetInfo()
	assert.Equal(t, int64(0), info.FramesIn)
	assert.Equal(t, int64(0), info.FramesOut)
	assert.Equal(t, tapsBefore, m.Taps())

	_, ok, err := m.Process(testFrame(0))
	require.NoError(t, err)
	assert.False(t, ok, "warm-up must run again after Reset")
}

// TestMagnifier_Taps returns an independent copy of symmetric coefficients.
func TestMagnifier_Taps(t *testing.T) {
	m, err := New(validConfig())
	require.NoError(t, err)

	taps := m.Taps()
	require.Len(t, taps, testTaps)
	for i := range len(taps) / 2 {
		assert.InDelta(t, taps[i], taps[len(taps)-1-i], 1e-12, "tap %d", i)
	}

	taps[0] = 42
	assert.NotEqual(t, 42.0, m.Taps()[0], "Taps must return a copy")
}

// TestGetInfo covers the introspection surface across the lifecycle.
func TestGetInfo(t *testing.T) {
	config := validConfig()
	config.EnableParallel = true
	m, err := New(config)
	require.NoError(t, err)

	info := m.GetInfo()
	assert.Equal(t, testTaps, info.TapCount)
	assert.Equal(t, testTaps-1, info.Latency)
	assert.True(t, info.Parallel)
	assert.Equal(t, int64(0), info.MemoryUsage, "no history before the first frame")

	for i := range testTaps + 1 {
		_, _, err := m.Process(testFrame(float64(i)))
		require.NoError(t, err)
	}

	info = m.GetInfo()
	assert.Equal(t, int64(testTaps+1), info.FramesIn)
	assert.Equal(t, int64(2), info.FramesOut)
	assert.Equal(t, int64(testTaps*3*testWidth*testHeight*8), info.MemoryUsage)
}

// TestStateString covers the state names used in logs.
func TestStateString(t *testing.T) {
	assert.Equal(t, "warming-up", StateWarmingUp.String())
	assert.Equal(t, "steady", StateSteady.String())
	assert.Equal(t, "unknown", State(99).String())
}

// TestPresetConstructors verifies each convenience constructor yields a
// working magnifier with its documented band.
func TestPresetConstructors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Magnifier, error)
	}{
		{"pulse", func() (*Magnifier, error) { return NewPulseMagnifier(RateNTSC) }},
		{"motion", func() (*Magnifier, error) { return NewMotionMagnifier(RateNTSC) }},
		{"simple", func() (*Magnifier, error) { return NewSimple(1, 3, RateNTSC) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, DefaultTapCount, m.TapCount())

			for i := range DefaultTapCount {
				_, ok, err := m.Process(testFrame(float64(i)))
				require.NoError(t, err)
				assert.Equal(t, i == DefaultTapCount-1, ok)
			}
		})
	}
}

// TestPresetConstructors_InvalidRate verifies presets propagate design
// failures: a pulse band cannot fit under the Nyquist limit of 1 fps video.
func TestPresetConstructors_InvalidRate(t *testing.T) {
	m, err := NewPulseMagnifier(1)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}
