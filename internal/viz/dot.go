// Package viz renders computation graphs in the Graphviz DOT language.
//
// The export is read-only: it walks the graph below a root and never touches
// values or gradients.
package viz

import (
	"fmt"
	"strconv"

	"github.com/born-ml/scalargrad/internal/engine"
	"github.com/emicklei/dot"
)

// opColor maps each operator family to a color index of the set28 scheme.
var opColor = map[engine.Op]int{
	engine.OpNone: 0,
	engine.OpAdd:  1,
	engine.OpSub:  1,
	engine.OpMul:  2,
	engine.OpDiv:  2,
	engine.OpNeg:  2,
	engine.OpTanh: 3,
	engine.OpExp:  4,
	engine.OpPow:  5,
	engine.OpReLU: 6,
}

// Label returns the record label of n: "{op value | grad}" with two decimals.
func Label(n engine.Node) string {
	return fmt.Sprintf("{%s %.2f | %.2f}", n.Op(), n.Value(), n.Gradient())
}

// Build returns a DOT graph of every node reachable from root.
//
// Nodes are records labeled with operator, value and gradient, colored by
// operator family. Each consumer is linked to each of its distinct inputs
// once; the layout runs right to left, from the root toward the leaves.
func Build(root engine.Node) *dot.Graph {
	g := dot.NewGraph(dot.Undirected)
	g.Attr("rankdir", "RL")

	order := root.TopologicalOrder()
	nodes := make(map[int]dot.Node, len(order))
	for _, n := range order {
		nodes[n.Index()] = g.Node(strconv.FormatUint(n.ID(), 10)).
			Label(Label(n)).
			Attr("shape", "record").
			Attr("colorscheme", "set28").
			Attr("color", strconv.Itoa(opColor[n.Op()]))
	}

	for _, n := range order {
		linked := make(map[int]bool)
		for _, in := range n.Inputs() {
			if linked[in.Index()] {
				continue
			}
			linked[in.Index()] = true
			g.Edge(nodes[n.Index()], nodes[in.Index()])
		}
	}
	return g
}

// ExportDOT returns the DOT description of the graph below root.
func ExportDOT(root engine.Node) string {
	return Build(root).String()
}
