// Package optim implements gradient-descent parameter updates for the
// GradNet network evaluator.
//
// The only algorithm the evaluator needs is plain SGD: gradients are
// produced fresh per example and never accumulated, so there is no state
// for momentum or adaptive moments to live in.
//
// Example usage:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 1.0})
//
//	yHat, _ := network.Forward(x)
//	grads, _ := network.Backward(x, y)
//	_ = optimizer.Step(network.Params(), grads)
package optim

import (
	"github.com/gradnet-ml/gradnet/internal/nn"
)

// Optimizer is the base interface for parameter update rules.
//
// Step applies one update to the given parameters in place. All updates
// within a single Step read only pre-update parameter values: a gradient is
// never applied against a partially updated parameter set.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Both arguments must match the fixed 2-2-1 topology.
	Step(params *nn.Parameters, grads *nn.Gradients) error

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR updates the learning rate.
	//
	// Useful for learning rate scheduling by a driver.
	SetLR(lr float32)
}
