package nn

import "errors"

// ErrInputSize is returned when a neuron receives a different number of inputs
// than it has weights.
var ErrInputSize = errors.New("nn: input size does not match weights")
