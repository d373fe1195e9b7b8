// Package simcore implements the World simulation driver: the per-step
// pipeline that rebuilds the Barnes–Hut tree, accumulates gravitational
// force, and integrates motion with velocity-Verlet.
package simcore

import (
	"io"
	"log/slog"
)

// Defaults mirror spec.md §3's global configuration.
const (
	DefaultTheta      = 0.5
	DefaultEpsilon    = 1e-3
	DefaultG          = 6.6743e-11
	DefaultLeafK      = 64
	DefaultCullFactor = 3
)

// Config holds the process-wide knobs spec.md §3 names, plus the cull
// threshold factor and logger spec.md §7/§9 require a World to carry.
type Config struct {
	Theta      float64
	Epsilon    float64
	G          float64
	LeafK      int
	BruteForce bool
	CullFactor float64
	Logger     *slog.Logger
}

// Option configures a Config, following the functional-options pattern
// this corpus uses for optional constructor parameters.
type Option func(*Config)

// WithTheta sets the Barnes–Hut opening angle.
func WithTheta(theta float64) Option {
	return func(c *Config) { c.Theta = theta }
}

// WithEpsilon sets the softening distance below which a pairwise force is
// skipped rather than evaluated.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithG sets Newton's gravitational constant used by force accumulation.
func WithG(g float64) Option {
	return func(c *Config) { c.G = g }
}

// WithLeafCapacity sets the per-leaf bucket capacity K.
func WithLeafCapacity(k int) Option {
	return func(c *Config) { c.LeafK = k }
}

// WithBruteForce disables the opening criterion: every traversal descends
// to leaves and every pairwise force is computed directly, the O(N^2)
// reference mode spec.md §4.3/§9 calls for.
func WithBruteForce(on bool) Option {
	return func(c *Config) { c.BruteForce = on }
}

// WithCullFactor sets the multiple of the current root half-extent beyond
// which a body is culled in Phase A. Spec default: 3.
func WithCullFactor(factor float64) Option {
	return func(c *Config) { c.CullFactor = factor }
}

// WithLogger overrides the diagnostic logger, which otherwise writes
// text-format records to io.Discard so library callers who never asked
// for log output see none.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// newConfig builds a Config with spec defaults, then applies opts in
// order.
func newConfig(opts ...Option) Config {
	c := Config{
		Theta:      DefaultTheta,
		Epsilon:    DefaultEpsilon,
		G:          DefaultG,
		LeafK:      DefaultLeafK,
		CullFactor: DefaultCullFactor,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
