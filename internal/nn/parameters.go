package nn

import "fmt"

// Fixed network topology: 2 inputs, one hidden layer of 2 ReLU units,
// 1 linear output unit. The shapes below never change at runtime.
const (
	InputSize  = 2
	HiddenSize = 2
	OutputSize = 1
)

// Parameters holds the trainable weights and biases of the network.
//
// Layout follows the usual row-per-unit convention:
//   - W1[i][j] is the weight from input j to hidden unit i ([HiddenSize][InputSize])
//   - B1[i] is the bias of hidden unit i ([HiddenSize])
//   - W2[0][j] is the weight from hidden unit j to the output ([OutputSize][HiddenSize])
//   - B2[0] is the output bias ([OutputSize])
//
// Parameters are an explicit value owned by the Network rather than hidden
// module state, so forward, backward and the optimizer all operate on the
// same struct.
type Parameters struct {
	W1 [][]float32
	B1 []float32
	W2 [][]float32
	B2 []float32
}

// Validate checks that all four tensors match the fixed 2-2-1 topology.
//
// Returns a ShapeError (matching ErrInvalidShape) naming the first
// offending tensor.
func (p *Parameters) Validate() error {
	if err := validateMatrix("W1", p.W1, HiddenSize, InputSize); err != nil {
		return err
	}
	if len(p.B1) != HiddenSize {
		return shapeErrorf("B1", fmt.Sprint(HiddenSize), fmt.Sprint(len(p.B1)))
	}
	if err := validateMatrix("W2", p.W2, OutputSize, HiddenSize); err != nil {
		return err
	}
	if len(p.B2) != OutputSize {
		return shapeErrorf("B2", fmt.Sprint(OutputSize), fmt.Sprint(len(p.B2)))
	}
	return nil
}

// Clone returns a deep copy of the parameters.
//
// Useful for snapshotting pre-update values in tests and for perturbing a
// single weight without touching the original (finite-difference checks).
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		W1: cloneMatrix(p.W1),
		B1: cloneVector(p.B1),
		W2: cloneMatrix(p.W2),
		B2: cloneVector(p.B2),
	}
}

// Gradients holds the loss gradient for every parameter tensor.
//
// Shapes mirror Parameters exactly. A Gradients value is produced fresh by
// each Backward call and consumed by a single optimizer step; gradients are
// never accumulated across calls.
type Gradients struct {
	W1 [][]float32
	B1 []float32
	W2 [][]float32
	B2 []float32
}

// Validate checks that all gradient tensors match the fixed 2-2-1 topology.
func (g *Gradients) Validate() error {
	if err := validateMatrix("grad W1", g.W1, HiddenSize, InputSize); err != nil {
		return err
	}
	if len(g.B1) != HiddenSize {
		return shapeErrorf("grad B1", fmt.Sprint(HiddenSize), fmt.Sprint(len(g.B1)))
	}
	if err := validateMatrix("grad W2", g.W2, OutputSize, HiddenSize); err != nil {
		return err
	}
	if len(g.B2) != OutputSize {
		return shapeErrorf("grad B2", fmt.Sprint(OutputSize), fmt.Sprint(len(g.B2)))
	}
	return nil
}

// validateMatrix checks a [rows][cols] matrix.
func validateMatrix(name string, m [][]float32, rows, cols int) error {
	want := fmt.Sprintf("%dx%d", rows, cols)
	if len(m) != rows {
		return shapeErrorf(name, want, fmt.Sprintf("%d rows", len(m)))
	}
	for i, row := range m {
		if len(row) != cols {
			return shapeErrorf(name, want, fmt.Sprintf("row %d has %d columns", i, len(row)))
		}
	}
	return nil
}

func cloneMatrix(m [][]float32) [][]float32 {
	clone := make([][]float32, len(m))
	for i, row := range m {
		clone[i] = make([]float32, len(row))
		copy(clone[i], row)
	}
	return clone
}

func cloneVector(v []float32) []float32 {
	clone := make([]float32, len(v))
	copy(clone, v)
	return clone
}
