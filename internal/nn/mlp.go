package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalargrad/internal/engine"
)

// MLP is a multi-layer perceptron: layers sized [nin] + nouts, every layer
// nonlinear except the last.
//
// Example:
//
//	g := engine.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
//	out := model.Predict([]float64{2, 3, -1})
//	out[0].Backward()
type MLP struct {
	graph  *engine.Graph
	layers []*Layer
	seq    *Sequential
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(g *engine.Graph, nin int, nouts []int, opts ...Option) *MLP {
	cfg := newConfig(opts)
	sizes := append([]int{nin}, nouts...)

	layers := make([]*Layer, len(nouts))
	seq := NewSequential()
	for i := range nouts {
		layerCfg := cfg
		layerCfg.nonlin = i != len(nouts)-1
		layers[i] = newLayer(g, sizes[i], sizes[i+1], fmt.Sprintf("layer%d", i), &layerCfg)
		seq.Add(layers[i])
	}

	return &MLP{graph: g, layers: layers, seq: seq}
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Forward runs every layer on x.
func (m *MLP) Forward(x []engine.Node) []engine.Node {
	return m.seq.Forward(x)
}

// Predict records xs as input leaves and runs Forward on them.
func (m *MLP) Predict(xs []float64) []engine.Node {
	return m.Forward(m.graph.Leaves(xs))
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []*Parameter {
	return m.seq.Parameters()
}

// String describes the network layer by layer.
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return "MLP of [" + strings.Join(names, ", ") + "]"
}
