// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/scalargrad/engine"
	"github.com/born-ml/scalargrad/internal/nn"
)

// Module is the common interface of every network building block.
type Module = nn.Module

// Parameter is a named trainable leaf of the graph.
type Parameter = nn.Parameter

// NewParameter wraps node n as a parameter called name.
func NewParameter(name string, n engine.Node) *Parameter {
	return nn.NewParameter(name, n)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// ErrInputSize is returned when an input vector does not match a neuron's weight count.
var ErrInputSize = nn.ErrInputSize

// Neurons and layers

// Neuron computes act(b + Σ xᵢ·wᵢ).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin weights.
//
// Example:
//
//	g := engine.NewGraph()
//	n := nn.NewNeuron(g, 2, nn.WithSeed(1))
//	out, err := n.Call(g.Leaves([]float64{1, -2}))
func NewNeuron(g *engine.Graph, nin int, opts ...Option) *Neuron {
	return nn.NewNeuron(g, nin, opts...)
}

// Layer is a row of independent neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *engine.Graph, nin, nout int, opts ...Option) *Layer {
	return nn.NewLayer(g, nin, nout, opts...)
}

// MLP is a multi-layer perceptron whose last layer is linear.
type MLP = nn.MLP

// NewMLP creates a perceptron with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	model := nn.NewMLP(g, 3, []int{4, 4, 1})
func NewMLP(g *engine.Graph, nin int, nouts []int, opts ...Option) *MLP {
	return nn.NewMLP(g, nin, nouts, opts...)
}

// Sequential chains modules, feeding each output into the next.
type Sequential = nn.Sequential

// NewSequential creates a container running modules in order.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Activations

// Activation selects a neuron nonlinearity.
type Activation = nn.Activation

// Activation kinds.
const (
	ActNone    = nn.ActNone
	ActLinear  = nn.ActLinear
	ActTanh    = nn.ActTanh
	ActReLU    = nn.ActReLU
	ActSigmoid = nn.ActSigmoid
	ActGELU    = nn.ActGELU
)

// ActivationLayer applies an activation element-wise.
type ActivationLayer = nn.ActivationLayer

// NewActivationLayer creates a parameterless module applying act.
func NewActivationLayer(act Activation) *ActivationLayer {
	return nn.NewActivationLayer(act)
}

// NewTanh creates a tanh activation module.
func NewTanh() *ActivationLayer { return nn.NewTanh() }

// NewReLU creates a ReLU activation module.
func NewReLU() *ActivationLayer { return nn.NewReLU() }

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid() *ActivationLayer { return nn.NewSigmoid() }

// NewGELU creates a GELU activation module.
func NewGELU() *ActivationLayer { return nn.NewGELU() }

// Options and initialization

// Option configures neuron, layer and MLP construction.
type Option = nn.Option

// Initializer draws one weight for a layer with the given fan-in and fan-out.
type Initializer = nn.Initializer

// WithRand sets the random source used for weights.
var WithRand = nn.WithRand

// WithSeed seeds a fresh random source, making construction reproducible.
var WithSeed = nn.WithSeed

// WithInitializer sets the weight initializer.
var WithInitializer = nn.WithInitializer

// WithActivation sets the hidden activation.
var WithActivation = nn.WithActivation

// WithNonlin switches the activation on or off.
var WithNonlin = nn.WithNonlin

// UniformInit draws weights from U(-1, 1).
var UniformInit Initializer = nn.UniformInit

// XavierInit draws weights from the Xavier uniform distribution.
var XavierInit Initializer = nn.XavierInit
