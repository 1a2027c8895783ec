// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neuron, layer and multi-layer perceptron building
// blocks over scalar autodiff nodes.
//
// # Overview
//
// This package contains:
//   - Neurons and layers: Neuron, Layer, MLP
//   - Activations: Tanh, ReLU, Sigmoid, GELU
//   - Utilities: Sequential, Module interface, Parameter, ZeroGrad
//   - Initialization: UniformInit, XavierInit
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalargrad/engine"
//	    "github.com/born-ml/scalargrad/nn"
//	)
//
//	func main() {
//	    g := engine.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
//
//	    out := model.Predict([]float64{2, 3, -1})
//	    out[0].Backward()
//
//	    for _, p := range model.Parameters() {
//	        fmt.Println(p.Name(), p.Value(), p.Grad())
//	    }
//	}
//
// Every hidden layer applies the configured activation (tanh by default);
// the last layer of an MLP is linear.
//
// # Sequential Models
//
// Build models by composing layers and activation modules:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(g, 2, 8, nn.WithNonlin(false)),
//	    nn.NewReLU(),
//	    nn.NewLayer(g, 8, 1, nn.WithNonlin(false)),
//	)
//
// # Parameter Management
//
// Parameters are leaves of the graph. Reset their gradients before reusing
// a model in a new backward pass:
//
//	nn.ZeroGrad(model)
package nn
