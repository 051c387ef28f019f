// File: options.go
// Role: functional options resolved once per Build call, mirroring
// lvlath/builder/config.go's builderConfig.
package fixture

import "math/rand"

// Option customizes a Build call. It mutates the resolved config before
// any Constructor runs.
type Option func(cfg *config)

// config holds the parameters fixture constructors may need. Not safe
// for concurrent mutation; each Build call creates its own.
type config struct {
	rng *rand.Rand // nil means "no stochastic constructor may run"
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and assigns it,
// for reproducible RandomOpSequence runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
