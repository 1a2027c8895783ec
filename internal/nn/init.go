package nn

import (
	"math"
	"math/rand"
)

// Initializer draws the initial value of one weight for a unit with
// fanIn inputs feeding fanOut outputs.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// UniformInit draws weights from U(-1, 1).
func UniformInit(rng *rand.Rand, _, _ int) float64 {
	return rng.Float64()*2.0 - 1.0
}

// XavierInit draws weights from the Xavier (Glorot) uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out))).
//
// This keeps the variance of activations roughly constant across layers.
func XavierInit(rng *rand.Rand, fanIn, fanOut int) float64 {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return (rng.Float64()*2.0 - 1.0) * bound
}
