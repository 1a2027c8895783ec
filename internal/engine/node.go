package engine

import "fmt"

// Node is a handle to one vertex of a Graph.
//
// Handles are small values: copying a Node shares the underlying vertex, the
// same way every consumer that lists it as an input shares it. The zero Node
// refers to no graph and panics on use.
type Node struct {
	g   *Graph
	idx int
}

// data returns the arena slot behind n.
func (n Node) data() *node {
	if n.g == nil {
		panic("engine: use of zero Node")
	}
	return &n.g.nodes[n.idx]
}

// graph returns the owning graph, panicking for the zero Node.
func (n Node) graph() *Graph {
	if n.g == nil {
		panic("engine: use of zero Node")
	}
	return n.g
}

// Valid reports whether n refers to a node.
func (n Node) Valid() bool {
	return n.g != nil
}

// Graph returns the graph that owns n.
func (n Node) Graph() *Graph {
	return n.g
}

// Index returns the stable arena index of n within its graph.
func (n Node) Index() int {
	return n.idx
}

// ID returns the process-wide creation id of n.
func (n Node) ID() uint64 {
	return n.data().id
}

// Value returns the forward value computed when n was created.
func (n Node) Value() float64 {
	return n.data().value
}

// Gradient returns ∂root/∂n accumulated by the last Backward call that reached n.
// It is zero for nodes no backward pass has reached.
func (n Node) Gradient() float64 {
	return n.data().grad
}

// Op returns the operator that produced n (OpNone for leaves).
func (n Node) Op() Op {
	return n.data().op
}

// IsLeaf reports whether n has no inputs.
func (n Node) IsLeaf() bool {
	return len(n.data().inputs) == 0
}

// Exponent returns the exponent of a Pow node, and 0 for every other operator.
func (n Node) Exponent() float64 {
	return n.data().exponent
}

// Inputs returns handles to the inputs of n, left then right for binary operators.
func (n Node) Inputs() []Node {
	d := n.data()
	out := make([]Node, len(d.inputs))
	for i, idx := range d.inputs {
		out[i] = Node{g: n.g, idx: idx}
	}
	return out
}

// ZeroGrad sets the gradient of n alone to zero.
func (n Node) ZeroGrad() {
	n.data().grad = 0
}

// String formats n as Node[value, grad=g, op=o].
func (n Node) String() string {
	if n.g == nil {
		return "Node[<nil>]"
	}
	d := n.data()
	return fmt.Sprintf("Node[%v, grad=%v, op=%s]", d.value, d.grad, d.op)
}

// input returns the i-th input slot of d, asserting d has exactly want inputs.
func (g *Graph) input(d *node, i, want int) *node {
	if len(d.inputs) != want {
		panic(fmt.Sprintf("%s: node has %d inputs, want %d", d.op, len(d.inputs), want))
	}
	return &g.nodes[d.inputs[i]]
}

// lhs returns the left input of a binary node.
func (g *Graph) lhs(d *node) *node { return g.input(d, 0, 2) }

// rhs returns the right input of a binary node.
func (g *Graph) rhs(d *node) *node { return g.input(d, 1, 2) }

// onlyChild returns the single input of a unary node.
func (g *Graph) onlyChild(d *node) *node { return g.input(d, 0, 1) }
