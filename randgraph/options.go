// SPDX-License-Identifier: MIT

// Package randgraph: functional configuration. Option constructors
// validate their input and panic on programmer error; Generate itself
// never panics on runtime conditions.

package randgraph

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlviz/core"
)

// Option customizes one Generate call.
type Option func(*config)

type config struct {
	graphOpts []core.GraphOption
	idFn      func(int) string
	rng       *rand.Rand
}

// defaultConfig seeds the RNG from the clock; pass WithSeed to lock
// outcomes instead.
func defaultConfig() config {
	return config{
		idFn: func(i int) string { return fmt.Sprintf("V%d", i+1) },
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithDirected sets edge direction handling on the generated graph.
func WithDirected(directed bool) Option {
	return func(c *config) {
		c.graphOpts = append(c.graphOpts, core.WithDirected(directed))
	}
}

// WithWeighted enables random weights on the generated graph.
func WithWeighted() Option {
	return func(c *config) {
		c.graphOpts = append(c.graphOpts, core.WithWeighted())
	}
}

// WithSeed makes the generation deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme sets the vertex ID generator, index → label.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("randgraph: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// gatherConfig folds opts over the defaults.
func gatherConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
