package engine

import (
	"fmt"
	"math"
)

// Backward computes ∂n/∂m for every node m reachable from n and stores it as
// m's gradient. n's own gradient becomes 1.
//
// Algorithm:
//  1. Zero the gradient of every reachable node
//  2. Order the reachable nodes root first (reverse dependency order)
//  3. Seed n with gradient 1
//  4. For each node, add its operator's local contribution into each input
//
// Step 2 guarantees every consumer of a node has been processed before the
// node itself, so its gradient is fully summed before it propagates.
// Gradients are only ever added to, which is how a node shared by several
// consumers collects the contribution of every path.
//
// Backward may be called again on the same or an overlapping root; each call
// starts from zeroed gradients and produces the same result.
func (n Node) Backward() {
	g := n.graph()
	order := g.topoIndices(n.idx)

	for _, idx := range order {
		g.nodes[idx].grad = 0
	}

	g.nodes[order[len(order)-1]].grad = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(&g.nodes[order[i]])
	}
}

// propagate adds d's contribution into the gradients of its inputs.
func (g *Graph) propagate(d *node) {
	grad := d.grad
	out := d.value

	switch d.op {
	case OpNone:
		if len(d.inputs) != 0 {
			panic(fmt.Sprintf("%s: node has %d inputs, want 0", d.op, len(d.inputs)))
		}
	case OpAdd:
		g.lhs(d).grad += grad
		g.rhs(d).grad += grad
	case OpSub:
		g.lhs(d).grad += grad
		g.rhs(d).grad += -grad
	case OpMul:
		lhs, rhs := g.lhs(d), g.rhs(d)
		lhs.grad += rhs.value * grad
		rhs.grad += lhs.value * grad
	case OpDiv:
		lhs, rhs := g.lhs(d), g.rhs(d)
		lhs.grad += grad / rhs.value
		rhs.grad += -lhs.value * grad / (rhs.value * rhs.value)
	case OpNeg:
		g.onlyChild(d).grad += -grad
	case OpTanh:
		g.onlyChild(d).grad += (1 - out*out) * grad
	case OpExp:
		g.onlyChild(d).grad += out * grad
	case OpPow:
		child := g.onlyChild(d)
		k := d.exponent
		child.grad += k * math.Pow(child.value, k-1) * grad
	case OpReLU:
		child := g.onlyChild(d)
		if child.value > 0 {
			child.grad += grad
		}
	default:
		panic(fmt.Sprintf("propagate: unknown operator %d", d.op))
	}
}
