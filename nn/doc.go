// Copyright 2025 GradNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the GradNet network evaluator: a fixed two-layer
// feedforward network (2 inputs, 2 ReLU hidden units, 1 linear output)
// with forward evaluation, squared-error loss and closed-form
// backpropagation.
//
// # Basic Usage
//
//	import (
//	    "github.com/gradnet-ml/gradnet/nn"
//	    "github.com/gradnet-ml/gradnet/optim"
//	)
//
//	func main() {
//	    network, _ := nn.New(&nn.Parameters{
//	        W1: [][]float32{{0, 1}, {2, 3}},
//	        B1: []float32{4, 5},
//	        W2: [][]float32{{6, 7}},
//	        B2: []float32{8},
//	    })
//
//	    x := []float32{-2, 1}
//	    yHat, _ := network.Forward(x)
//	    loss := nn.Loss(yHat, 64)
//	    _ = loss
//
//	    grads, _ := network.Backward(x, 64)
//	    optimizer := optim.NewSGD(optim.SGDConfig{LR: 1.0})
//	    _ = optimizer.Step(network.Params(), grads)
//	}
//
// A Network must be used sequentially: Backward consumes the activation
// trace cached by the preceding Forward on the same input.
package nn
