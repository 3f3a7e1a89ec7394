// Copyright 2025 GradNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gradnet-ml/gradnet/internal/nn"
)

// Fixed network topology.
const (
	InputSize  = nn.InputSize
	HiddenSize = nn.HiddenSize
	OutputSize = nn.OutputSize
)

// Parameters holds the trainable weights and biases of the network.
type Parameters = nn.Parameters

// Gradients holds the loss gradient for every parameter tensor.
type Gradients = nn.Gradients

// Network evaluates the fixed 2-2-1 feedforward network.
type Network = nn.Network

// ShapeError describes a tensor that does not fit the fixed topology.
type ShapeError = nn.ShapeError

// Errors surfaced by the evaluator.
var (
	ErrInvalidShape        = nn.ErrInvalidShape
	ErrMissingForwardCache = nn.ErrMissingForwardCache
)

// New creates a Network that takes ownership of params.
//
// Example:
//
//	network, err := nn.New(&nn.Parameters{
//	    W1: [][]float32{{0, 1}, {2, 3}},
//	    B1: []float32{4, 5},
//	    W2: [][]float32{{6, 7}},
//	    B2: []float32{8},
//	})
func New(params *Parameters) (*Network, error) {
	return nn.New(params)
}

// Loss computes the squared error between a prediction and the target.
func Loss(yHat, y float32) float32 {
	return nn.Loss(yHat, y)
}
