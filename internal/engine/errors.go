package engine

import "errors"

var (
	// ErrArity is returned when an operator receives the wrong number of operands.
	ErrArity = errors.New("engine: wrong number of operands")

	// ErrLeafOp is returned when Derive is asked to build a node with OpNone.
	// Leaves are created with Graph.Leaf.
	ErrLeafOp = errors.New("engine: OpNone cannot be derived, use Leaf")

	// ErrExponentRequired is returned when Derive is asked to build an OpPow node.
	// The exponent is node data, so Pow nodes are created with Node.Pow.
	ErrExponentRequired = errors.New("engine: OpPow requires an exponent, use Node.Pow")

	// ErrUnknownOp is returned for an operator outside the supported set.
	ErrUnknownOp = errors.New("engine: unknown operator")

	// ErrForeignNode is returned when an operand is the zero Node or belongs
	// to a different graph.
	ErrForeignNode = errors.New("engine: operand does not belong to this graph")
)
