package nn

import (
	"math/rand"
)

// Option configures how neurons, layers and MLPs are built.
type Option func(*config)

// config holds the build settings shared by Neuron, Layer and MLP.
type config struct {
	rng        *rand.Rand  // source for weight initialization
	init       Initializer // weight initializer; biases always start at 0
	activation Activation  // applied when nonlin is true
	nonlin     bool        // false makes the unit linear
}

// defaultConfig returns U(-1, 1) weights, a tanh activation and a
// randomly seeded source.
func defaultConfig() config {
	return config{
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		rng:        rand.New(rand.NewSource(rand.Int63())),
		init:       UniformInit,
		activation: ActTanh,
		nonlin:     true,
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand sets the random source used for weight initialization.
// Passing nil has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithSeed seeds a fresh random source for weight initialization.
func WithSeed(seed int64) Option {
	return func(c *config) {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithInitializer sets the weight initializer. Passing nil has no effect.
func WithInitializer(init Initializer) Option {
	return func(c *config) {
		if init != nil {
			c.init = init
		}
	}
}

// WithActivation sets the activation applied by nonlinear units.
func WithActivation(act Activation) Option {
	return func(c *config) {
		c.activation = act
	}
}

// WithNonlin switches the activation on or off.
// MLP overrides it per layer: every layer but the last is nonlinear.
func WithNonlin(nonlin bool) Option {
	return func(c *config) {
		c.nonlin = nonlin
	}
}
