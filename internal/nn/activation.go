package nn

import (
	"math"

	"github.com/born-ml/scalargrad/internal/engine"
)

// Activation selects the nonlinearity applied to a neuron's weighted sum.
type Activation int

const (
	ActNone    Activation = iota // identity
	ActLinear                    // identity, kept for parity with ActNone in configs
	ActTanh                      // tanh(x)
	ActReLU                      // max(0, x)
	ActSigmoid                   // 1 / (1 + e^-x)
	ActGELU                      // tanh approximation of x·Φ(x)
)

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case ActNone:
		return "none"
	case ActLinear:
		return "linear"
	case ActTanh:
		return "tanh"
	case ActReLU:
		return "relu"
	case ActSigmoid:
		return "sigmoid"
	case ActGELU:
		return "gelu"
	default:
		return "unknown"
	}
}

// Apply records the activation of x in x's graph.
func (a Activation) Apply(x engine.Node) engine.Node {
	switch a {
	case ActNone, ActLinear:
		return x
	case ActTanh:
		return x.Tanh()
	case ActReLU:
		return x.ReLU()
	case ActSigmoid:
		return sigmoid(x)
	case ActGELU:
		return gelu(x)
	default:
		panic("Activation.Apply: unknown activation " + a.String())
	}
}

// sigmoid computes 1 / (1 + e^-x) with x always on the left of each operator.
func sigmoid(x engine.Node) engine.Node {
	return x.Neg().Exp().AddScalar(1).Pow(-1)
}

// gelu computes 0.5·x·(1 + tanh(√(2/π)·(x + 0.044715·x³))).
func gelu(x engine.Node) engine.Node {
	sqrt2pi := math.Sqrt(2.0 / math.Pi)
	inner := x.Add(x.Pow(3).MulScalar(0.044715)).MulScalar(sqrt2pi)
	return x.Mul(inner.Tanh().AddScalar(1)).MulScalar(0.5)
}

// ActivationLayer applies an activation to every input independently.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(g, 2, 8, nn.WithNonlin(false)),
//	    nn.NewReLU(),
//	)
type ActivationLayer struct {
	act Activation
}

// NewActivationLayer creates a parameterless module applying act.
func NewActivationLayer(act Activation) *ActivationLayer {
	return &ActivationLayer{act: act}
}

// NewTanh creates a tanh activation module.
func NewTanh() *ActivationLayer { return NewActivationLayer(ActTanh) }

// NewReLU creates a ReLU activation module.
func NewReLU() *ActivationLayer { return NewActivationLayer(ActReLU) }

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid() *ActivationLayer { return NewActivationLayer(ActSigmoid) }

// NewGELU creates a GELU activation module.
func NewGELU() *ActivationLayer { return NewActivationLayer(ActGELU) }

// Activation returns the activation this module applies.
func (l *ActivationLayer) Activation() Activation {
	return l.act
}

// Forward applies the activation element-wise.
func (l *ActivationLayer) Forward(x []engine.Node) []engine.Node {
	out := make([]engine.Node, len(x))
	for i, n := range x {
		out[i] = l.act.Apply(n)
	}
	return out
}

// Parameters returns nil (activations have no trainable parameters).
func (l *ActivationLayer) Parameters() []*Parameter {
	return nil
}
