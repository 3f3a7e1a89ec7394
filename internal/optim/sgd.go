package optim

import (
	"fmt"

	"github.com/gradnet-ml/gradnet/internal/nn"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule, applied elementwise to every parameter tensor P with
// gradient G of identical shape:
//
//	P = P - lr * G
//
// The update is simultaneous: every new value is computed from the
// parameter and gradient values as they were before the step began.
type SGD struct {
	lr float32
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float32 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step performs a single optimization step: param -= lr * grad for every
// weight and bias.
//
// Gradients are read but never written, and each parameter update depends
// only on that parameter's own pre-step value, so no update can observe a
// partially updated parameter set. Returns an error matching
// nn.ErrInvalidShape if either argument does not fit the 2-2-1 topology.
func (s *SGD) Step(params *nn.Parameters, grads *nn.Gradients) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("optim.Step: %w", err)
	}
	if err := grads.Validate(); err != nil {
		return fmt.Errorf("optim.Step: %w", err)
	}

	for i := range params.W1 {
		for j := range params.W1[i] {
			params.W1[i][j] -= s.lr * grads.W1[i][j]
		}
	}
	for i := range params.B1 {
		params.B1[i] -= s.lr * grads.B1[i]
	}
	for i := range params.W2 {
		for j := range params.W2[i] {
			params.W2[i][j] -= s.lr * grads.W2[i][j]
		}
	}
	for i := range params.B2 {
		params.B2[i] -= s.lr * grads.B2[i]
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
