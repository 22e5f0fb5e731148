// SPDX-License-Identifier: MIT
//
// Package builder assembles deterministic graph fixtures: paths, cycles,
// stars, wheels, complete graphs, grids and seeded random graphs.
//
// BuildGraph creates a core.Graph and applies Constructors in order. Vertex
// IDs come from the configured IDFn and edge weights from the configured
// WeightFn, so equal options and seed always yield the same graph with the
// same dense index order.
package builder

import (
	"errors"
	"math/rand"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below a constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// WeightFn draws one edge weight. rng is nil unless WithSeed or WithRand
// was given.
type WeightFn func(rng *rand.Rand) float64

// ConstWeight returns a WeightFn that always yields w.
func ConstWeight(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight returns a WeightFn drawing from [lo, hi). It falls back to lo
// without an rng.
func UniformWeight(lo, hi float64) WeightFn {
	return func(r *rand.Rand) float64 {
		if r == nil {
			return lo
		}
		return lo + r.Float64()*(hi-lo)
	}
}

// IntWeight returns a WeightFn drawing integers from [lo, hi]. It falls back
// to lo without an rng.
func IntWeight(lo, hi int) WeightFn {
	return func(r *rand.Rand) float64 {
		if r == nil || hi <= lo {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}

// config is resolved once per BuildGraph call and passed by value.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customises a BuildGraph call.
type Option func(*config)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn, weightFn: ConstWeight(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) weight() float64 { return c.weightFn(c.rng) }
