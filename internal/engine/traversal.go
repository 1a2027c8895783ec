package engine

import (
	"cmp"
	"slices"
)

// traversal holds the state of one dependency-ordering walk.
// It is allocated fresh per call, so walks never interfere with each other.
type traversal struct {
	g         *Graph
	visited   []bool        // keyed by arena index: already placed in a layer
	reachable []int         // every index reachable from the root
	pending   map[int]int   // inputs not yet placed, per reachable node
	consumers map[int][]int // reachable consumers per input, one entry per edge
}

// newTraversal discovers every node reachable from root.
func newTraversal(g *Graph, root int) *traversal {
	t := &traversal{
		g:         g,
		visited:   make([]bool, root+1), // inputs always precede their consumers
		pending:   make(map[int]int),
		consumers: make(map[int][]int),
	}
	seen := make([]bool, root+1)
	seen[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.reachable = append(t.reachable, idx)

		inputs := g.nodes[idx].inputs
		t.pending[idx] = len(inputs)
		for _, in := range inputs {
			t.consumers[in] = append(t.consumers[in], idx)
			if !seen[in] {
				seen[in] = true
				stack = append(stack, in)
			}
		}
	}
	return t
}

// layers peels the reachable graph into dependency layers. Layer 0 holds the
// reachable leaves; each later layer holds every unvisited node whose inputs
// were all placed in earlier layers. The last layer is the root.
func (t *traversal) layers() [][]int {
	var frontier []int
	for _, idx := range t.reachable {
		if t.pending[idx] == 0 {
			frontier = append(frontier, idx)
		}
	}

	var out [][]int
	for len(frontier) > 0 {
		t.sortByID(frontier)
		out = append(out, frontier)

		var next []int
		for _, idx := range frontier {
			t.visited[idx] = true
		}
		for _, idx := range frontier {
			for _, c := range t.consumers[idx] {
				t.pending[c]--
				if t.pending[c] == 0 && !t.visited[c] {
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
	return out
}

// sortByID orders a layer by creation id. Any order is valid within a layer;
// this one is deterministic.
func (t *traversal) sortByID(layer []int) {
	slices.SortFunc(layer, func(a, b int) int {
		return cmp.Compare(t.g.nodes[a].id, t.g.nodes[b].id)
	})
}

// checkRoot panics unless root belongs to g.
func (g *Graph) checkRoot(root Node) {
	if root.g != g || g == nil {
		panic("engine: root does not belong to this graph")
	}
}

// Layers returns the nodes reachable from root grouped into dependency layers,
// leaves first and root last. Every node appears in a strictly later layer
// than all of its inputs.
func (g *Graph) Layers(root Node) [][]Node {
	g.checkRoot(root)
	idxLayers := newTraversal(g, root.idx).layers()
	out := make([][]Node, len(idxLayers))
	for i, layer := range idxLayers {
		out[i] = g.handles(layer)
	}
	return out
}

// TopologicalOrder returns every node reachable from root such that each node
// appears after all of its inputs. The root is last.
//
// Each call uses its own visited set, so repeated calls return the same order.
func (g *Graph) TopologicalOrder(root Node) []Node {
	g.checkRoot(root)
	return g.handles(g.topoIndices(root.idx))
}

// ReverseTopologicalOrder returns TopologicalOrder reversed: root first,
// deepest leaves last.
func (g *Graph) ReverseTopologicalOrder(root Node) []Node {
	order := g.TopologicalOrder(root)
	slices.Reverse(order)
	return order
}

// topoIndices concatenates the dependency layers of root.
func (g *Graph) topoIndices(root int) []int {
	var order []int
	for _, layer := range newTraversal(g, root).layers() {
		order = append(order, layer...)
	}
	return order
}

// handles converts arena indices into Node handles.
func (g *Graph) handles(idxs []int) []Node {
	out := make([]Node, len(idxs))
	for i, idx := range idxs {
		out[i] = Node{g: g, idx: idx}
	}
	return out
}

// TopologicalOrder is Graph.TopologicalOrder on the graph owning n.
func (n Node) TopologicalOrder() []Node {
	return n.graph().TopologicalOrder(n)
}
