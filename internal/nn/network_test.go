package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workedExample returns the sequential-integer parameters used throughout
// the worked example: W1=[[0,1],[2,3]], B1=[4,5], W2=[[6,7]], B2=[8].
func workedExample() *Parameters {
	return &Parameters{
		W1: [][]float32{{0, 1}, {2, 3}},
		B1: []float32{4, 5},
		W2: [][]float32{{6, 7}},
		B2: []float32{8},
	}
}

// TestForward_WorkedExample checks the hand-derived forward pass:
// in1=[5,4], a=[5,4], y_hat = 8 + 6*5 + 7*4 = 66.
func TestForward_WorkedExample(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	yHat, err := network.Forward([]float32{-2, 1})
	require.NoError(t, err)

	assert.Equal(t, float32(66), yHat)
	assert.Equal(t, []float32{5, 4}, network.cache.preHidden)
	assert.Equal(t, []float32{5, 4}, network.cache.hidden)
}

// TestForward_InvalidShape checks that malformed inputs are rejected.
func TestForward_InvalidShape(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	for _, x := range [][]float32{nil, {1}, {1, 2, 3}} {
		_, err := network.Forward(x)
		assert.ErrorIs(t, err, ErrInvalidShape, "input %v should be rejected", x)
	}
}

// TestNew_InvalidParameters checks shape validation at construction.
func TestNew_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		params *Parameters
	}{
		{"nil parameters", nil},
		{
			"W1 too few rows",
			&Parameters{
				W1: [][]float32{{0, 1}},
				B1: []float32{4, 5},
				W2: [][]float32{{6, 7}},
				B2: []float32{8},
			},
		},
		{
			"W1 ragged row",
			&Parameters{
				W1: [][]float32{{0, 1}, {2}},
				B1: []float32{4, 5},
				W2: [][]float32{{6, 7}},
				B2: []float32{8},
			},
		},
		{
			"B1 wrong length",
			&Parameters{
				W1: [][]float32{{0, 1}, {2, 3}},
				B1: []float32{4},
				W2: [][]float32{{6, 7}},
				B2: []float32{8},
			},
		},
		{
			"W2 wrong columns",
			&Parameters{
				W1: [][]float32{{0, 1}, {2, 3}},
				B1: []float32{4, 5},
				W2: [][]float32{{6}},
				B2: []float32{8},
			},
		},
		{
			"B2 wrong length",
			&Parameters{
				W1: [][]float32{{0, 1}, {2, 3}},
				B1: []float32{4, 5},
				W2: [][]float32{{6, 7}},
				B2: []float32{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

// TestLoss checks the squared error: (64 - 66)^2 = 4.
func TestLoss(t *testing.T) {
	assert.Equal(t, float32(4), Loss(66, 64))
	assert.Equal(t, float32(4), Loss(62, 64))
	assert.Equal(t, float32(0), Loss(64, 64))
}

// TestBackward_WorkedExample checks the full hand-derived gradient:
//
//	delta5 = -2(64-66) = 4
//	grad W2 = [[4*5, 4*4]] = [[20, 16]], grad B2 = [4]
//	delta1  = [4*6*1, 4*7*1] = [24, 28]
//	grad W1 = [[24*-2, 24*1], [28*-2, 28*1]] = [[-48, 24], [-56, 28]]
//	grad B1 = [24, 28]
func TestBackward_WorkedExample(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	x := []float32{-2, 1}
	_, err = network.Forward(x)
	require.NoError(t, err)

	grads, err := network.Backward(x, 64)
	require.NoError(t, err)

	assert.Equal(t, [][]float32{{20, 16}}, grads.W2)
	assert.Equal(t, []float32{4}, grads.B2)
	assert.Equal(t, [][]float32{{-48, 24}, {-56, 28}}, grads.W1)
	assert.Equal(t, []float32{24, 28}, grads.B1)
}

// TestBackward_BeforeForward checks the missing-cache error.
func TestBackward_BeforeForward(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	_, err = network.Backward([]float32{-2, 1}, 64)
	assert.ErrorIs(t, err, ErrMissingForwardCache)
}

// TestBackward_InputMismatch checks that a cached trace from a different
// input is rejected rather than silently reused.
func TestBackward_InputMismatch(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	_, err = network.Forward([]float32{-2, 1})
	require.NoError(t, err)

	_, err = network.Backward([]float32{3, 1}, 64)
	assert.ErrorIs(t, err, ErrMissingForwardCache)
}

// TestBackward_InvalidShape checks input validation on the backward path.
func TestBackward_InvalidShape(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	_, err = network.Forward([]float32{-2, 1})
	require.NoError(t, err)

	_, err = network.Backward([]float32{1, 2, 3}, 64)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

// TestForward_RefreshesCache checks that a second forward pass replaces the
// trace, so backward matches the most recent input.
func TestForward_RefreshesCache(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	_, err = network.Forward([]float32{-2, 1})
	require.NoError(t, err)

	x := []float32{1, 1}
	_, err = network.Forward(x)
	require.NoError(t, err)

	_, err = network.Backward(x, 64)
	assert.NoError(t, err)

	_, err = network.Backward([]float32{-2, 1}, 64)
	assert.ErrorIs(t, err, ErrMissingForwardCache)
}

// TestBackward_ReLUBoundary checks the subgradient convention at exactly 0:
// relu'(0) must be 1, so the error signal still reaches a unit whose
// pre-activation is 0.
func TestBackward_ReLUBoundary(t *testing.T) {
	network, err := New(&Parameters{
		W1: [][]float32{{1, 0}, {0, 1}},
		B1: []float32{0, 0},
		W2: [][]float32{{1, 1}},
		B2: []float32{0},
	})
	require.NoError(t, err)

	// in1 = [0, 5]: the first hidden unit sits exactly on the boundary.
	x := []float32{0, 5}
	yHat, err := network.Forward(x)
	require.NoError(t, err)
	require.Equal(t, float32(5), yHat)

	grads, err := network.Backward(x, 0)
	require.NoError(t, err)

	// delta5 = -2(0-5) = 10; delta1[0] = 10*1*relu'(0) = 10, not 0.
	assert.Equal(t, float32(10), grads.B1[0])
}

// TestBackward_DeadHiddenUnit checks that a unit with negative
// pre-activation contributes no gradient.
func TestBackward_DeadHiddenUnit(t *testing.T) {
	network, err := New(workedExample())
	require.NoError(t, err)

	// in1 = [4, -1]: the second hidden unit is inactive.
	x := []float32{-3, 0}
	yHat, err := network.Forward(x)
	require.NoError(t, err)
	require.Equal(t, float32(32), yHat) // 8 + 6*4 + 7*0

	grads, err := network.Backward(x, 30)
	require.NoError(t, err)

	// delta5 = -2(30-32) = 4; the dead unit blocks its error signal.
	assert.Equal(t, []float32{24, 0}, grads.B1)
	assert.Equal(t, []float32{0, 0}, grads.W1[1])
	// The live unit still receives delta1[0]*x = 24*[-3, 0].
	assert.Equal(t, []float32{-72, 0}, grads.W1[0])
}

// TestParameters_Clone checks that Clone is a deep copy.
func TestParameters_Clone(t *testing.T) {
	params := workedExample()
	clone := params.Clone()

	clone.W1[0][0] = 99
	clone.B2[0] = 99

	assert.Equal(t, float32(0), params.W1[0][0])
	assert.Equal(t, float32(8), params.B2[0])
}
