// Copyright 2025 GradNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent parameter updates for the
// GradNet network evaluator.
package optim

import (
	"github.com/gradnet-ml/gradnet/internal/optim"
)

// Optimizer is the common interface for parameter update rules.
type Optimizer = optim.Optimizer

// SGD is the plain stochastic gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 1.0})
//	grads, _ := network.Backward(x, y)
//	_ = optimizer.Step(network.Params(), grads)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
