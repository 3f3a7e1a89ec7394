// Package main provides the gradnet demo driver.
//
// It walks one hand-checkable training example through forward evaluation,
// squared-error loss, backpropagation and a single gradient-descent update.
package main

import (
	"fmt"
	"os"

	"github.com/gradnet-ml/gradnet/internal/config"
	"github.com/gradnet-ml/gradnet/internal/nn"
	"github.com/gradnet-ml/gradnet/internal/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("gradnet %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gradnet:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Sequential-integer parameters keep every intermediate value small
	// enough to verify by hand.
	network, err := nn.New(&nn.Parameters{
		W1: [][]float32{{0, 1}, {2, 3}},
		B1: []float32{4, 5},
		W2: [][]float32{{6, 7}},
		B2: []float32{8},
	})
	if err != nil {
		return err
	}

	x := []float32{-2, 1}
	y := cfg.Target

	yHat, err := network.Forward(x)
	if err != nil {
		return err
	}

	fmt.Printf("input x    = %v\n", x)
	fmt.Printf("target y   = %g\n", y)
	fmt.Printf("prediction = %g\n", yHat)
	fmt.Printf("loss       = %g\n\n", nn.Loss(yHat, y))

	grads, err := network.Backward(x, y)
	if err != nil {
		return err
	}

	fmt.Printf("grad W1 = %v\n", grads.W1)
	fmt.Printf("grad B1 = %v\n", grads.B1)
	fmt.Printf("grad W2 = %v\n", grads.W2)
	fmt.Printf("grad B2 = %v\n\n", grads.B2)

	optimizer := optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate})
	if err := optimizer.Step(network.Params(), grads); err != nil {
		return err
	}

	params := network.Params()
	fmt.Printf("after one SGD step (lr=%g):\n", optimizer.GetLR())
	fmt.Printf("W1 = %v\n", params.W1)
	fmt.Printf("B1 = %v\n", params.B1)
	fmt.Printf("W2 = %v\n", params.W2)
	fmt.Printf("B2 = %v\n", params.B2)

	updated, err := network.Forward(x)
	if err != nil {
		return err
	}
	fmt.Printf("\nnew prediction = %g\n", updated)
	fmt.Printf("new loss       = %g\n", nn.Loss(updated, y))

	return nil
}
