// Package nn implements a small feed-forward network on top of the scalar engine.
//
// This package provides building blocks composed purely from engine operators:
//   - Module interface: Base interface for all NN components
//   - Parameter: Named trainable leaf node
//   - Neuron, Layer, MLP: The classic multi-layer perceptron
//   - Activations: Tanh, ReLU, Sigmoid, GELU
//   - Sequential: Container for stacking modules
//
// Every module keeps the Node operand on the left of each operator, so
// gradient flows into weights, biases and inputs alike.
package nn

import (
	"github.com/born-ml/scalargrad/internal/engine"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(g, 3, 4),
//	    nn.NewLayer(g, 4, 1, nn.WithNonlin(false)),
//	)
type Module interface {
	// Forward computes the outputs of the module for the given input nodes.
	// All inputs must belong to the graph the module was built on.
	Forward(x []engine.Node) []engine.Node

	// Parameters returns all trainable parameters of this module,
	// including those of nested modules. Activation modules return none.
	Parameters() []*Parameter
}

// ZeroGrad clears the gradient of every parameter of m.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
