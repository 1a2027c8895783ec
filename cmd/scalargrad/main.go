// Package main provides the scalargrad CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/scalargrad/engine"
	"github.com/born-ml/scalargrad/nn"
	"github.com/born-ml/scalargrad/viz"
)

const version = "v0.0.1-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("scalargrad: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes the subcommand named by args[0], writing results to w.
func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "scalargrad %s\n", version)
	case "add":
		runAdd(w)
	case "backprop":
		runBackprop(w)
	case "neuron":
		runNeuron(w)
	case "graph":
		runGraph(w)
	case "mlp":
		return runMLP(w)
	default:
		usage(w)
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "scalargrad - Scalar Reverse-Mode Autodiff for Go")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  add        Differentiate c = a + b")
	fmt.Fprintln(w, "  backprop   Differentiate d = a*b + c")
	fmt.Fprintln(w, "  neuron     Differentiate a two-input tanh neuron")
	fmt.Fprintln(w, "  graph      Print the neuron graph in DOT format")
	fmt.Fprintln(w, "  mlp        Run a seeded MLP(3, [4, 4, 1]) forward and backward")
}

func runAdd(w io.Writer) {
	g := engine.NewGraph()
	a := g.Leaf(1)
	b := g.Leaf(2)
	c := a.Add(b)
	c.Backward()

	fmt.Fprintln(w, c)
	fmt.Fprintln(w, a)
	fmt.Fprintln(w, b)
}

func runBackprop(w io.Writer) {
	g := engine.NewGraph()
	a, b, c := g.Leaf(2), g.Leaf(3), g.Leaf(10)
	d := a.Mul(b).Add(c)
	d.Backward()

	fmt.Fprintf(w, "d = a*b + c = %g\n", d.Value())
	fmt.Fprintf(w, "dd/da = %g\n", a.Gradient())
	fmt.Fprintf(w, "dd/db = %g\n", b.Gradient())
	fmt.Fprintf(w, "dd/dc = %g\n", c.Gradient())
}

// namedNode pairs a leaf with the name it is printed under.
type namedNode struct {
	name string
	node engine.Node
}

// neuronExample builds o = tanh(x1*w1 + x2*w2 + b) and backpropagates it.
func neuronExample() (engine.Node, []namedNode) {
	g := engine.NewGraph()
	x1, x2 := g.Leaf(2), g.Leaf(0)
	w1, w2 := g.Leaf(-3), g.Leaf(1)
	b := g.Leaf(6.8813735870195432)

	o := x1.Mul(w1).Add(x2.Mul(w2)).Add(b).Tanh()
	o.Backward()

	return o, []namedNode{{"x1", x1}, {"x2", x2}, {"w1", w1}, {"w2", w2}, {"b", b}}
}

func runNeuron(w io.Writer) {
	o, leaves := neuronExample()

	fmt.Fprintf(w, "o = %.4f\n", o.Value())
	for _, l := range leaves {
		fmt.Fprintf(w, "%s: value=%.4f grad=%.4f\n", l.name, l.node.Value(), l.node.Gradient())
	}
}

func runGraph(w io.Writer) {
	o, _ := neuronExample()
	fmt.Fprint(w, viz.ExportDOT(o))
}

func runMLP(w io.Writer) error {
	g := engine.NewGraph()
	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))

	out := model.Predict([]float64{2, 3, -1})
	if len(out) != 1 {
		return fmt.Errorf("mlp: expected 1 output, got %d", len(out))
	}
	out[0].Backward()

	fmt.Fprintln(w, model)
	fmt.Fprintf(w, "output = %.6f\n", out[0].Value())
	fmt.Fprintf(w, "parameters = %d\n", len(model.Parameters()))
	fmt.Fprintf(w, "graph nodes = %d\n", g.Len())
	return nil
}
