package engine

// Op identifies the operation that produced a node.
//
// The set is closed: the backward pass dispatches on it with a single switch,
// so adding an operator means adding a forward formula in Derive, an arity in
// Arity, and a rule in propagate.
type Op uint8

const (
	OpNone Op = iota // leaf: user-supplied constant or parameter
	OpAdd            // a + b
	OpSub            // a + (-1 * b)
	OpMul            // a * b
	OpDiv            // a / b
	OpNeg            // -a
	OpTanh           // tanh(a)
	OpExp            // e^a
	OpPow            // a^k, k stored on the node
	OpReLU           // max(0, a)
)

// String returns the lowercase operator name used in diagnostics and graph export.
func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpNeg:
		return "neg"
	case OpTanh:
		return "tanh"
	case OpExp:
		return "exp"
	case OpPow:
		return "pow"
	case OpReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// Arity returns the number of inputs a node with this operator must have,
// or -1 for an unknown operator.
func (o Op) Arity() int {
	switch o {
	case OpNone:
		return 0
	case OpNeg, OpTanh, OpExp, OpPow, OpReLU:
		return 1
	case OpAdd, OpSub, OpMul, OpDiv:
		return 2
	default:
		return -1
	}
}

// IsUnary reports whether the operator takes exactly one input.
func (o Op) IsUnary() bool { return o.Arity() == 1 }

// IsBinary reports whether the operator takes exactly two inputs (left, right).
func (o Op) IsBinary() bool { return o.Arity() == 2 }
