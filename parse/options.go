// SPDX-License-Identifier: MIT

// Package parse: functional configuration. The options mirror core
// graph construction so a reader call reads like a NewGraph call.

package parse

import "github.com/katalvlaran/lvlviz/core"

// Option configures the graph a reader builds.
type Option func(*options)

type options struct {
	graphOpts []core.GraphOption
}

// WithDirected sets edge direction handling on the parsed graph.
func WithDirected(directed bool) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, core.WithDirected(directed))
	}
}

// WithWeighted enables arbitrary weights on the parsed graph; without
// it the model accepts only the unweighted 0/1 values.
func WithWeighted() Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, core.WithWeighted())
	}
}

// gatherOptions folds opts into the core option list.
func gatherOptions(opts []Option) []core.GraphOption {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o.graphOpts
}
