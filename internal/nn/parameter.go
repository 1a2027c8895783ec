package nn

import (
	"github.com/born-ml/scalargrad/internal/engine"
)

// Parameter represents a trainable parameter in a neural network.
//
// A parameter is a named leaf node. Its gradient is filled in by
// engine.Node.Backward on any output that depends on it.
//
// Example:
//
//	w := nn.NewParameter("layer0.neuron1.w2", g.Leaf(0.3))
//	out.Backward()
//	fmt.Println(w.Name(), w.Grad())
type Parameter struct {
	name string      // Parameter name (e.g., "layer0.neuron1.w2", "layer0.neuron1.b")
	node engine.Node // The leaf holding the parameter value
}

// NewParameter creates a new trainable parameter around a leaf node.
func NewParameter(name string, n engine.Node) *Parameter {
	return &Parameter{
		name: name,
		node: n,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the leaf node holding the parameter.
func (p *Parameter) Node() engine.Node {
	return p.node
}

// Value returns the current parameter value.
func (p *Parameter) Value() float64 {
	return p.node.Value()
}

// Grad returns the gradient accumulated by the last backward pass that reached this parameter.
func (p *Parameter) Grad() float64 {
	return p.node.Gradient()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.node.ZeroGrad()
}
