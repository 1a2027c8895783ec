package nn

import (
	"github.com/born-ml/scalargrad/internal/engine"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input, creating a
// sequential pipeline of transformations.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLayer(g, 2, 8, nn.WithNonlin(false)),
//	    nn.NewReLU(),
//	    nn.NewLayer(g, 8, 1, nn.WithNonlin(false)),
//	)
//
//	output := model.Forward(input)
//
// This is equivalent to:
//
//	h1 := layer1.Forward(input)
//	h2 := relu.Forward(h1)
//	output := layer2.Forward(h2)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(x []engine.Node) []engine.Node {
	out := x
	for _, module := range s.modules {
		out = module.Forward(out)
	}
	return out
}

// Parameters returns all trainable parameters from all modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
