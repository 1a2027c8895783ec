package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/engine"
)

// Neuron computes act(b + Σ xᵢ·wᵢ) over scalar nodes.
//
// Weights come from the configured initializer; the bias starts at zero.
//
// Example:
//
//	g := engine.NewGraph()
//	n := nn.NewNeuron(g, 2, nn.WithSeed(1))
//	out, err := n.Call(g.Leaves([]float64{1, -2}))
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	nonlin  bool
	act     Activation
}

// NewNeuron creates a neuron with nin weights in graph g.
func NewNeuron(g *engine.Graph, nin int, opts ...Option) *Neuron {
	cfg := newConfig(opts)
	return newNeuron(g, nin, 1, "neuron", &cfg)
}

// newNeuron builds a neuron whose parameters are named under prefix.
func newNeuron(g *engine.Graph, nin, fanOut int, prefix string, cfg *config) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		w := cfg.init(cfg.rng, nin, fanOut)
		weights[i] = NewParameter(fmt.Sprintf("%s.w%d", prefix, i), g.Leaf(w))
	}
	return &Neuron{
		weights: weights,
		bias:    NewParameter(prefix+".b", g.Leaf(0)),
		nonlin:  cfg.nonlin,
		act:     cfg.activation,
	}
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Nonlin reports whether the activation is applied.
func (n *Neuron) Nonlin() bool {
	return n.nonlin
}

// Weights returns the weight parameters in input order.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// Call computes the neuron output for x.
// Returns ErrInputSize if len(x) differs from the number of weights.
func (n *Neuron) Call(x []engine.Node) (engine.Node, error) {
	if len(x) != len(n.weights) {
		return engine.Node{}, fmt.Errorf("%w: expected %d, got %d", ErrInputSize, len(n.weights), len(x))
	}

	out := n.bias.Node()
	for i, xi := range x {
		out = out.Add(xi.Mul(n.weights[i].Node()))
	}

	if !n.nonlin {
		return out, nil
	}
	return n.act.Apply(out), nil
}

// Forward returns the single neuron output. It panics on an input size mismatch.
func (n *Neuron) Forward(x []engine.Node) []engine.Node {
	out, err := n.Call(x)
	if err != nil {
		panic(fmt.Sprintf("Neuron.Forward: %v", err))
	}
	return []engine.Node{out}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// String describes the neuron, e.g. "TanhNeuron(3)" or "LinearNeuron(3)".
func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlin {
		switch n.act {
		case ActTanh:
			kind = "Tanh"
		case ActReLU:
			kind = "ReLU"
		case ActSigmoid:
			kind = "Sigmoid"
		case ActGELU:
			kind = "GELU"
		}
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.weights))
}
