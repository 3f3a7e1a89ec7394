// Package nn implements the GradNet network evaluator.
//
// The evaluator is a single fixed-shape feedforward network:
//   - 2 inputs
//   - 1 hidden layer of 2 rectified-linear units
//   - 1 linear output unit
//
// It supports three operations over one training example:
//   - Forward: compute the prediction and cache the activation trace
//   - Loss: squared error against the target
//   - Backward: closed-form reverse-mode gradients of the loss
//
// Because the topology is fixed, backpropagation is written out as explicit
// chain-rule code rather than a general computation-graph engine. Each
// layer's local derivative is used exactly once, output to input, which is
// what keeps the backward pass linear in network size.
package nn

import "fmt"

// forwardCache is the activation trace recorded by Forward and consumed by
// Backward. It is recomputed on every forward call.
type forwardCache struct {
	x         []float32 // input the trace was computed from
	preHidden []float32 // hidden pre-activations, before ReLU
	hidden    []float32 // hidden activations, after ReLU
	preOut    float32   // output pre-activation
	output    float32   // prediction (identity output activation)
}

// Network is the evaluator over one set of parameters.
//
// A Network is not safe for concurrent use: Forward, Backward and the
// optimizer step must run sequentially for a given example, since Backward
// reads the cache left behind by the preceding Forward.
type Network struct {
	params *Parameters
	cache  *forwardCache
}

// New creates a Network that takes ownership of params.
//
// Parameters must be supplied by the caller (deterministic fixtures rather
// than random initialization). Returns a ShapeError matching
// ErrInvalidShape if any tensor does not fit the 2-2-1 topology.
func New(params *Parameters) (*Network, error) {
	if params == nil {
		return nil, fmt.Errorf("nn.New: %w", shapeErrorf("parameters", "non-nil", "nil"))
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("nn.New: %w", err)
	}
	return &Network{params: params}, nil
}

// Params returns the network's mutable parameter struct.
//
// The optimizer updates parameters through this pointer.
func (n *Network) Params() *Parameters {
	return n.params
}

// Forward computes the network prediction for input x.
//
// For hidden unit i and output:
//
//	in1[i]  = B1[i] + Σ_j W1[i][j]·x[j]
//	a[i]    = max(in1[i], 0)
//	in5     = B2[0] + Σ_j W2[0][j]·a[j]
//	y_hat   = in5
//
// Side effect: the full activation trace is cached for a subsequent
// Backward call on the same input. Returns ErrInvalidShape if x is not a
// 2-element vector.
func (n *Network) Forward(x []float32) (float32, error) {
	if len(x) != InputSize {
		return 0, fmt.Errorf("nn.Forward: %w", shapeErrorf("input", fmt.Sprint(InputSize), fmt.Sprint(len(x))))
	}

	preHidden := make([]float32, HiddenSize)
	hidden := make([]float32, HiddenSize)
	for i := 0; i < HiddenSize; i++ {
		sum := n.params.B1[i]
		for j := 0; j < InputSize; j++ {
			sum += n.params.W1[i][j] * x[j]
		}
		preHidden[i] = sum
		hidden[i] = relu(sum)
	}

	preOut := n.params.B2[0]
	for j := 0; j < HiddenSize; j++ {
		preOut += n.params.W2[0][j] * hidden[j]
	}

	n.cache = &forwardCache{
		x:         cloneVector(x),
		preHidden: preHidden,
		hidden:    hidden,
		preOut:    preOut,
		output:    preOut, // identity output activation
	}
	return n.cache.output, nil
}

// Loss computes the squared error between a prediction and the target:
//
//	L = (y − y_hat)²
//
// With a single scalar output and a single example, dividing by the element
// count (the mean-squared variant) would be a no-op, so it is omitted.
func Loss(yHat, y float32) float32 {
	diff := y - yHat
	return diff * diff
}

// Backward computes the gradient of Loss(Forward(x), y) with respect to
// every parameter, using the activation trace cached by the preceding
// Forward call.
//
// The chain rule is applied layer by layer, output to input:
//
//	dL/dy_hat = −2(y − y_hat)
//	delta5    = dL/dy_hat · 1          (identity output activation)
//	grad W2[0][j] = delta5 · a[j]
//	grad B2[0]    = delta5
//	delta1[j] = delta5 · W2[0][j] · relu'(in1[j])
//	grad W1[j][k] = delta1[j] · x[k]
//	grad B1[j]    = delta1[j]
//
// relu' uses the >= 0 convention: the subgradient at exactly 0 is 1.
//
// Returns ErrMissingForwardCache if no Forward has run, or if the cached
// trace was computed from a different input. Returns ErrInvalidShape if x
// is not a 2-element vector.
func (n *Network) Backward(x []float32, y float32) (*Gradients, error) {
	if len(x) != InputSize {
		return nil, fmt.Errorf("nn.Backward: %w", shapeErrorf("input", fmt.Sprint(InputSize), fmt.Sprint(len(x))))
	}
	if n.cache == nil {
		return nil, fmt.Errorf("nn.Backward: %w", ErrMissingForwardCache)
	}
	for j := range x {
		if n.cache.x[j] != x[j] {
			return nil, fmt.Errorf("nn.Backward: cached trace is for a different input: %w", ErrMissingForwardCache)
		}
	}

	// Output layer error signal.
	delta5 := -2 * (y - n.cache.output)

	grads := &Gradients{
		W1: make([][]float32, HiddenSize),
		B1: make([]float32, HiddenSize),
		W2: make([][]float32, OutputSize),
		B2: make([]float32, OutputSize),
	}

	grads.W2[0] = make([]float32, HiddenSize)
	for j := 0; j < HiddenSize; j++ {
		grads.W2[0][j] = delta5 * n.cache.hidden[j]
	}
	grads.B2[0] = delta5

	// Propagate the error signal into the hidden layer and take the local
	// ReLU derivative exactly once per unit.
	for j := 0; j < HiddenSize; j++ {
		delta1 := delta5 * n.params.W2[0][j] * reluDerivative(n.cache.preHidden[j])
		grads.W1[j] = make([]float32, InputSize)
		for k := 0; k < InputSize; k++ {
			grads.W1[j][k] = delta1 * x[k]
		}
		grads.B1[j] = delta1
	}

	return grads, nil
}

// relu applies the rectified linear unit: max(v, 0).
func relu(v float32) float32 {
	if v > 0 {
		return v
	}
	return 0
}

// reluDerivative is 1 for v >= 0 and 0 otherwise. The boundary case uses
// the >= 0 convention, so the subgradient at exactly 0 is 1.
func reluDerivative(v float32) float32 {
	if v >= 0 {
		return 1
	}
	return 0
}
