// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz exports computation graphs for Graphviz.
//
// Example:
//
//	e := a.Mul(b).Add(c).Tanh()
//	e.Backward()
//	os.WriteFile("graph.dot", []byte(viz.ExportDOT(e)), 0o600)
//
// Render the result with `dot -Tsvg graph.dot`.
package viz

import (
	"github.com/born-ml/scalargrad/engine"
	"github.com/born-ml/scalargrad/internal/viz"
	"github.com/emicklei/dot"
)

// ExportDOT returns the DOT description of every node reachable from root.
//
// Each node is a record showing its operator, value and gradient to two
// decimals, colored by operator family. Edges are undirected and the layout
// runs right to left.
func ExportDOT(root engine.Node) string {
	return viz.ExportDOT(root)
}

// Build returns the graph below root for further customization before rendering.
func Build(root engine.Node) *dot.Graph {
	return viz.Build(root)
}

// Label returns the record label used for n.
func Label(n engine.Node) string {
	return viz.Label(n)
}
