// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides a scalar reverse-mode automatic differentiation engine.
//
// Arithmetic on Nodes records a computation graph in a Graph arena. Calling
// Backward on a scalar output fills in the gradient of that output with
// respect to every node it depends on.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/engine"
//
//	func main() {
//	    g := engine.NewGraph()
//	    a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)
//
//	    d := a.Mul(b).Add(c)
//	    d.Backward()
//
//	    fmt.Println(a.Gradient(), b.Gradient(), c.Gradient()) // 3 2 1
//	}
//
// # Constants on the left
//
// n.AddScalar(k), n.SubScalar(k), n.MulScalar(k) and n.DivScalar(k) record k
// as a leaf and keep gradient flowing into n. ScalarAdd(k, n), ScalarSub(k, n),
// ScalarMul(k, n) and ScalarDiv(k, n) return a detached leaf holding only the
// number: gradient never reaches n through them. Keep the Node on the left
// whenever gradients matter.
//
// # Numeric edge cases
//
// Division by a zero-valued node is not guarded and yields ±Inf or NaN in both
// the value and the gradients. Pow(k) differentiates as k·x^(k−1), which is NaN
// where that power is undefined (a negative base with a non-integer k).
package engine

import (
	"github.com/born-ml/scalargrad/internal/engine"
)

// Graph is the arena that records every node of a computation.
type Graph = engine.Graph

// Node is a handle to one vertex of a Graph.
type Node = engine.Node

// Op identifies the operation that produced a node.
type Op = engine.Op

// Operators.
const (
	OpNone = engine.OpNone
	OpAdd  = engine.OpAdd
	OpSub  = engine.OpSub
	OpMul  = engine.OpMul
	OpDiv  = engine.OpDiv
	OpNeg  = engine.OpNeg
	OpTanh = engine.OpTanh
	OpExp  = engine.OpExp
	OpPow  = engine.OpPow
	OpReLU = engine.OpReLU
)

// Errors returned by Graph.Derive and Apply.
var (
	ErrArity            = engine.ErrArity
	ErrLeafOp           = engine.ErrLeafOp
	ErrExponentRequired = engine.ErrExponentRequired
	ErrUnknownOp        = engine.ErrUnknownOp
	ErrForeignNode      = engine.ErrForeignNode
)

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return engine.NewGraph()
}

// Apply derives a node from operands on the graph owning the first operand.
func Apply(op Op, operands ...Node) (Node, error) {
	return engine.Apply(op, operands...)
}

// Sum returns the sum of nodes as a chain of Add nodes.
func Sum(nodes ...Node) Node {
	return engine.Sum(nodes...)
}

// ScalarAdd returns a detached leaf holding k + n.
func ScalarAdd(k float64, n Node) Node {
	return engine.ScalarAdd(k, n)
}

// ScalarSub returns a detached leaf holding k - n.
func ScalarSub(k float64, n Node) Node {
	return engine.ScalarSub(k, n)
}

// ScalarMul returns a detached leaf holding k * n.
func ScalarMul(k float64, n Node) Node {
	return engine.ScalarMul(k, n)
}

// ScalarDiv returns a detached leaf holding k / n.
func ScalarDiv(k float64, n Node) Node {
	return engine.ScalarDiv(k, n)
}

// ResetIDs restarts the process-wide node id counter.
func ResetIDs() {
	engine.ResetIDs()
}
