package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/internal/engine"
)

// Layer is a set of independent neurons sharing the same inputs.
//
// Forward returns one output node per neuron.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each in graph g.
func NewLayer(g *engine.Graph, nin, nout int, opts ...Option) *Layer {
	cfg := newConfig(opts)
	return newLayer(g, nin, nout, "layer", &cfg)
}

// newLayer builds a layer whose parameters are named under prefix.
func newLayer(g *engine.Graph, nin, nout int, prefix string, cfg *config) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(g, nin, nout, fmt.Sprintf("%s.neuron%d", prefix, i), cfg)
	}
	return &Layer{neurons: neurons}
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs each neuron expects.
func (l *Layer) InFeatures() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].NumInputs()
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

// Forward computes every neuron on x.
//
// Panics if len(x) does not match InFeatures.
func (l *Layer) Forward(x []engine.Node) []engine.Node {
	out := make([]engine.Node, len(l.neurons))
	for i, n := range l.neurons {
		y, err := n.Call(x)
		if err != nil {
			panic(fmt.Sprintf("Layer.Forward: neuron %d: %v", i, err))
		}
		out[i] = y
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// String describes the layer, e.g. "Layer of [TanhNeuron(3), TanhNeuron(3)]".
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return "Layer of [" + strings.Join(names, ", ") + "]"
}
