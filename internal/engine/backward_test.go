package engine_test

import (
	"math"
	"testing"

	"github.com/born-ml/scalargrad/internal/engine"
	"github.com/stretchr/testify/assert"
)

const gradTolerance = 1e-8

// TestBackward_MulAdd tests d = a*b + c.
func TestBackward_MulAdd(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)

	d := a.Mul(b).Add(c)
	d.Backward()

	assert.Equal(t, 16.0, d.Value())
	assert.Equal(t, 1.0, d.Gradient())
	assert.InDelta(t, 3.0, a.Gradient(), gradTolerance)
	assert.InDelta(t, 2.0, b.Gradient(), gradTolerance)
	assert.InDelta(t, 1.0, c.Gradient(), gradTolerance)
}

// TestBackward_NegativeLeaf tests d = a*b + c with a negative leaf b.
func TestBackward_NegativeLeaf(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(-3), g.Leaf(10)

	d := a.Mul(b).Add(c)
	d.Backward()

	assert.InDelta(t, -3.0, a.Gradient(), gradTolerance)
	assert.InDelta(t, 2.0, b.Gradient(), gradTolerance)
	assert.InDelta(t, 1.0, c.Gradient(), gradTolerance)
}

// TestBackward_Sub tests d = a*b - c.
func TestBackward_Sub(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)

	d := a.Mul(b).Sub(c)
	d.Backward()

	assert.Equal(t, -4.0, d.Value())
	assert.InDelta(t, 3.0, a.Gradient(), gradTolerance)
	assert.InDelta(t, 2.0, b.Gradient(), gradTolerance)
	assert.InDelta(t, -1.0, c.Gradient(), gradTolerance)
}

// TestBackward_Div tests d = a/b + c.
func TestBackward_Div(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(-3), g.Leaf(10)

	d := a.Div(b).Add(c)
	d.Backward()

	assert.InDelta(t, -0.3333333333333333, a.Gradient(), gradTolerance)
	assert.InDelta(t, -0.2222222222222222, b.Gradient(), gradTolerance)
	assert.InDelta(t, 1.0, c.Gradient(), gradTolerance)
}

// TestBackward_Neuron tests o = tanh(x1*w1 + x2*w2 + b).
func TestBackward_Neuron(t *testing.T) {
	g := engine.NewGraph()
	x1, x2 := g.Leaf(2), g.Leaf(0)
	w1, w2 := g.Leaf(-3), g.Leaf(1)
	b := g.Leaf(6.8813735870195432)

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b)
	o := n.Tanh()
	o.Backward()

	assert.InDelta(t, 0.7071, o.Value(), 1e-4)
	assert.InDelta(t, 0.5, n.Gradient(), 1e-6)
	assert.InDelta(t, 1.0, w1.Gradient(), 1e-6)
	assert.InDelta(t, 0.0, w2.Gradient(), 1e-6)
	assert.InDelta(t, -1.5, x1.Gradient(), 1e-6)
	assert.InDelta(t, 0.5, x2.Gradient(), 1e-6)
}

// TestBackward_SharedSubexpression tests gradient accumulation across a diamond.
func TestBackward_SharedSubexpression(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(1.5), g.Leaf(-2), g.Leaf(4)

	d := a.Mul(b)
	e := a.Mul(c)
	f := d.Add(e)
	f.Backward()

	assert.InDelta(t, b.Value()+c.Value(), a.Gradient(), gradTolerance)
	assert.InDelta(t, a.Value(), b.Gradient(), gradTolerance)
	assert.InDelta(t, a.Value(), c.Gradient(), gradTolerance)
}

// TestBackward_SameOperandTwice tests a*a, where both edges point to one node.
func TestBackward_SameOperandTwice(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(3)

	sq := a.Mul(a)
	sq.Backward()

	assert.InDelta(t, 6.0, a.Gradient(), gradTolerance)

	sum := a.Add(a)
	sum.Backward()

	assert.InDelta(t, 2.0, a.Gradient(), gradTolerance)
}

// TestBackward_UnaryRules tests the local rule of each unary operator.
func TestBackward_UnaryRules(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		build func(engine.Node) engine.Node
		want  float64
	}{
		{"neg", 2, engine.Node.Neg, -1},
		{"tanh", 0.5, engine.Node.Tanh, 1 - math.Tanh(0.5)*math.Tanh(0.5)},
		{"exp", 1.5, engine.Node.Exp, math.Exp(1.5)},
		{"pow2", 5, func(n engine.Node) engine.Node { return n.Pow(2) }, 10},
		{"pow3", 2, func(n engine.Node) engine.Node { return n.Pow(3) }, 12},
		{"pow_half", 4, func(n engine.Node) engine.Node { return n.Pow(0.5) }, 0.25},
		{"pow_neg_base", -3, func(n engine.Node) engine.Node { return n.Pow(2) }, -6},
		{"pow_unit_base", 1, func(n engine.Node) engine.Node { return n.Pow(2) }, 2},
		{"pow_zero_base", 0, func(n engine.Node) engine.Node { return n.Pow(2) }, 0},
		{"relu_pos", 2, engine.Node.ReLU, 1},
		{"relu_neg", -2, engine.Node.ReLU, 0},
		{"relu_zero", 0, engine.Node.ReLU, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGraph()
			x := g.Leaf(tt.x)

			y := tt.build(x)
			y.Backward()

			assert.InDelta(t, tt.want, x.Gradient(), 1e-9)
		})
	}
}

// TestBackward_ScalarOnRightPropagates tests that node+k keeps gradient flowing into node.
func TestBackward_ScalarOnRightPropagates(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(2)

	tests := []struct {
		name string
		root engine.Node
		want float64
	}{
		{"add", a.AddScalar(5), 1},
		{"sub", a.SubScalar(5), 1},
		{"mul", a.MulScalar(5), 5},
		{"div", a.DivScalar(4), 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.root.Backward()
			assert.InDelta(t, tt.want, a.Gradient(), gradTolerance)
		})
	}
}

// TestBackward_ScalarOnLeftDetaches is the regression test for the detached-leaf asymmetry:
// k op node must not propagate gradient into node.
func TestBackward_ScalarOnLeftDetaches(t *testing.T) {
	tests := []struct {
		name  string
		build func(engine.Node) engine.Node
	}{
		{"add", func(n engine.Node) engine.Node { return engine.ScalarAdd(5, n) }},
		{"sub", func(n engine.Node) engine.Node { return engine.ScalarSub(5, n) }},
		{"mul", func(n engine.Node) engine.Node { return engine.ScalarMul(5, n) }},
		{"div", func(n engine.Node) engine.Node { return engine.ScalarDiv(5, n) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGraph()
			a := g.Leaf(2)

			root := tt.build(a).Tanh()
			root.Backward()

			assert.Equal(t, 0.0, a.Gradient())
			assert.Len(t, root.TopologicalOrder(), 2)
		})
	}
}

// TestBackward_Repeatable tests that a second backward call on the same root gives the same gradients.
func TestBackward_Repeatable(t *testing.T) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)
	d := a.Mul(b).Add(c)

	d.Backward()
	first := []float64{a.Gradient(), b.Gradient(), c.Gradient(), d.Gradient()}

	d.Backward()
	second := []float64{a.Gradient(), b.Gradient(), c.Gradient(), d.Gradient()}

	assert.Equal(t, first, second)
}

// TestBackward_SubgraphRoot tests backward from an inner node after a backward from the outer root.
func TestBackward_SubgraphRoot(t *testing.T) {
	g := engine.NewGraph()
	a, b := g.Leaf(2), g.Leaf(3)
	ab := a.Mul(b)
	out := ab.Tanh()

	out.Backward()
	assert.Less(t, a.Gradient(), 1.0)

	ab.Backward()
	assert.InDelta(t, 3.0, a.Gradient(), gradTolerance)
	assert.InDelta(t, 2.0, b.Gradient(), gradTolerance)
	assert.Equal(t, 1.0, ab.Gradient())
}

// TestBackward_LeafRoot tests backward on a lone leaf.
func TestBackward_LeafRoot(t *testing.T) {
	g := engine.NewGraph()
	a := g.Leaf(7)

	a.Backward()

	assert.Equal(t, 1.0, a.Gradient())
}

// TestGraph_ZeroGrad tests clearing every gradient in the arena.
func TestGraph_ZeroGrad(t *testing.T) {
	g := engine.NewGraph()
	a, b := g.Leaf(2), g.Leaf(3)
	c := a.Mul(b)
	c.Backward()

	g.ZeroGrad()

	assert.Equal(t, 0.0, a.Gradient())
	assert.Equal(t, 0.0, b.Gradient())
	assert.Equal(t, 0.0, c.Gradient())

	c.Backward()
	a.ZeroGrad()
	assert.Equal(t, 0.0, a.Gradient())
	assert.Equal(t, 2.0, b.Gradient())
}
