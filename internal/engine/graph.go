// Package engine implements a scalar reverse-mode automatic differentiation engine.
//
// Every arithmetic operation on a Node records a new node in a Graph arena,
// building a directed acyclic computation graph as the expression is evaluated.
// Calling Backward on a scalar output walks that graph in reverse dependency
// order and accumulates ∂output/∂n into every reachable node n.
//
// Architecture:
//   - Graph: arena of nodes addressed by stable indices
//   - Node: lightweight handle (graph, index) shared by every consumer
//   - Op: closed operator enum dispatched by a single switch in the backward pass
//   - Traversal: layered dependency ordering with a per-call visited set
//
// Usage:
//
//	g := engine.NewGraph()
//	a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)
//	d := a.Mul(b).Add(c)
//	d.Backward()
//	fmt.Println(a.Gradient(), b.Gradient(), c.Gradient()) // 3 2 1
//
// A Graph is not safe for concurrent use.
package engine

import (
	"fmt"
	"math"
)

// node is one arena slot. Only grad changes after construction.
type node struct {
	value    float64
	grad     float64
	op       Op
	inputs   []int   // arena indices, left then right for binary ops
	exponent float64 // OpPow only
	id       uint64
}

// Graph owns every node created through it.
//
// Inputs always refer to slots created earlier, so the graph is acyclic by
// construction. Nodes are never removed; a Graph lives as long as any Node
// handle into it.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64),
	}
}

// Len returns the number of nodes recorded in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf creates a node holding x with no inputs and a zero gradient.
func (g *Graph) Leaf(x float64) Node {
	return g.push(node{value: x, op: OpNone})
}

// Leaves creates one leaf per element of xs, in order.
func (g *Graph) Leaves(xs []float64) []Node {
	out := make([]Node, len(xs))
	for i, x := range xs {
		out[i] = g.Leaf(x)
	}
	return out
}

// Derive creates a node applying op to operands, computing its value eagerly.
//
// This is the low-level constructor behind the Node methods. Binary operands
// are taken left then right. OpNone and OpPow are rejected: leaves come from
// Leaf and powers from Node.Pow, which stores the exponent.
func (g *Graph) Derive(op Op, operands ...Node) (Node, error) {
	switch op {
	case OpNone:
		return Node{}, ErrLeafOp
	case OpPow:
		return Node{}, ErrExponentRequired
	}
	arity := op.Arity()
	if arity < 0 {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownOp, op)
	}
	if len(operands) != arity {
		return Node{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, arity, len(operands))
	}
	inputs := make([]int, len(operands))
	for i, o := range operands {
		if o.g != g {
			return Node{}, fmt.Errorf("%w: operand %d of %s", ErrForeignNode, i, op)
		}
		inputs[i] = o.idx
	}
	return g.push(node{value: g.forward(op, inputs), op: op, inputs: inputs}), nil
}

// forward evaluates op over the given input slots.
func (g *Graph) forward(op Op, inputs []int) float64 {
	x := g.nodes[inputs[0]].value
	switch op {
	case OpAdd:
		return x + g.nodes[inputs[1]].value
	case OpSub:
		return x + (-1 * g.nodes[inputs[1]].value)
	case OpMul:
		return x * g.nodes[inputs[1]].value
	case OpDiv:
		return x / g.nodes[inputs[1]].value
	case OpNeg:
		return -x
	case OpTanh:
		return math.Tanh(x)
	case OpExp:
		return math.Exp(x)
	case OpReLU:
		return math.Max(0, x)
	default:
		panic(fmt.Sprintf("forward: no formula for %s", op))
	}
}

// push appends n to the arena, stamping its id, and returns its handle.
func (g *Graph) push(n node) Node {
	n.id = newID()
	g.nodes = append(g.nodes, n)
	return Node{g: g, idx: len(g.nodes) - 1}
}

// derive is Derive for callers that have already validated their operands.
func (g *Graph) derive(op Op, operands ...Node) Node {
	n, err := g.Derive(op, operands...)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return n
}

// ZeroGrad sets the gradient of every node in the graph to zero.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
