package engine

import (
	"fmt"
	"math"
)

// Add returns n + other.
func (n Node) Add(other Node) Node {
	return n.graph().derive(OpAdd, n, other)
}

// Sub returns n - other, evaluated as n + (-1 * other).
func (n Node) Sub(other Node) Node {
	return n.graph().derive(OpSub, n, other)
}

// Mul returns n * other.
func (n Node) Mul(other Node) Node {
	return n.graph().derive(OpMul, n, other)
}

// Div returns n / other.
//
// Division by a zero-valued node is not guarded: the forward value and both
// gradients become ±Inf or NaN. Callers own that check.
func (n Node) Div(other Node) Node {
	return n.graph().derive(OpDiv, n, other)
}

// Neg returns -n.
func (n Node) Neg() Node {
	return n.graph().derive(OpNeg, n)
}

// Tanh returns tanh(n).
func (n Node) Tanh() Node {
	return n.graph().derive(OpTanh, n)
}

// Exp returns e^n.
func (n Node) Exp() Node {
	return n.graph().derive(OpExp, n)
}

// ReLU returns max(0, n).
func (n Node) ReLU() Node {
	return n.graph().derive(OpReLU, n)
}

// Pow returns n^k. The exponent is a constant stored on the result node, not
// a node of its own, so no gradient flows to it.
func (n Node) Pow(k float64) Node {
	g := n.graph()
	return g.push(node{
		value:    math.Pow(n.Value(), k),
		op:       OpPow,
		inputs:   []int{n.idx},
		exponent: k,
	})
}

// AddScalar returns n + k. k becomes a fresh leaf on the right, so gradient
// reaches n.
func (n Node) AddScalar(k float64) Node {
	return n.Add(n.graph().Leaf(k))
}

// SubScalar returns n - k with k as a fresh right-hand leaf.
func (n Node) SubScalar(k float64) Node {
	return n.Sub(n.graph().Leaf(k))
}

// MulScalar returns n * k with k as a fresh right-hand leaf.
func (n Node) MulScalar(k float64) Node {
	return n.Mul(n.graph().Leaf(k))
}

// DivScalar returns n / k with k as a fresh right-hand leaf.
func (n Node) DivScalar(k float64) Node {
	return n.Div(n.graph().Leaf(k))
}

// The Scalar* functions put the constant on the LEFT and, unlike the Node
// methods, return a detached leaf: a new node holding only the numeric result,
// with no inputs. Gradient never flows back into n through them.
//
// Code that needs gradients must keep the Node on the left, e.g.
// n.AddScalar(k) instead of ScalarAdd(k, n), or build the constant as a leaf
// with Graph.Leaf and use the Node methods.

// ScalarAdd returns a detached leaf holding k + n.
func ScalarAdd(k float64, n Node) Node {
	return n.graph().Leaf(k + n.Value())
}

// ScalarSub returns a detached leaf holding k - n.
func ScalarSub(k float64, n Node) Node {
	return n.graph().Leaf(k + (-1 * n.Value()))
}

// ScalarMul returns a detached leaf holding k * n.
func ScalarMul(k float64, n Node) Node {
	return n.graph().Leaf(k * n.Value())
}

// ScalarDiv returns a detached leaf holding k / n.
func ScalarDiv(k float64, n Node) Node {
	return n.graph().Leaf(k / n.Value())
}

// Sum returns nodes[0] + nodes[1] + ... as a left-leaning chain of Add nodes.
// It panics on an empty slice.
func Sum(nodes ...Node) Node {
	if len(nodes) == 0 {
		panic("Sum: no operands")
	}
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = acc.Add(n)
	}
	return acc
}

// Apply is Derive on the graph owning the first operand.
func Apply(op Op, operands ...Node) (Node, error) {
	if len(operands) == 0 {
		return Node{}, fmt.Errorf("%w: %s takes %d, got 0", ErrArity, op, op.Arity())
	}
	if operands[0].g == nil {
		return Node{}, fmt.Errorf("%w: operand 0 of %s", ErrForeignNode, op)
	}
	return operands[0].g.Derive(op, operands...)
}
