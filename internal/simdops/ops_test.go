package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFor_Dispatch verifies instantiation-time dispatch returns the shared
// per-type instances.
func TestFor_Dispatch(t *testing.T) {
	assert.Same(t, Float32Ops(), For[float32]())
	assert.Same(t, Float64Ops(), For[float64]())
}

// TestOps_Scale checks elementwise scaling for both precisions.
func TestOps_Scale(t *testing.T) {
	in := []float64{1, -2, 0.5, 0}
	out := make([]float64, len(in))
	For[float64]().Scale(out, in, 4)
	assert.Equal(t, []float64{4, -8, 2, 0}, out)

	in32 := []float32{1, -2, 0.5, 0}
	out32 := make([]float32, len(in32))
	For[float32]().Scale(out32, in32, 4)
	assert.Equal(t, []float32{4, -8, 2, 0}, out32)
}

// TestOps_SumAndDot checks the reductions on exactly representable values.
func TestOps_SumAndDot(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ops := For[float64]()

	require.InDelta(t, 36.0, ops.Sum(a), 1e-12)
	require.InDelta(t, 204.0, ops.DotProductUnsafe(a, a), 1e-12)
}
