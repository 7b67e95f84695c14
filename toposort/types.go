// Package toposort defines sentinel errors and options for Kahn's
// topological sort. See kahn.go for the algorithm itself.
package toposort

import (
	"context"
	"errors"
)

var (
	// ErrNilGraph is returned when a nil graph is passed to Sort.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the input contained a cycle: edges
	// remained in the working copy after the frontier emptied. No
	// partial order accompanies this error.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Option configures optional behavior for Sort.
type Option func(*options)

// options holds settings for Sort, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation
// context. The context is checked once per popped frontier node.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
