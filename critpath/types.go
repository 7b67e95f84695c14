// Package critpath defines the result type, sentinel errors, and
// options for the DAG longest-path computation. See critpath.go for
// the algorithm itself.
package critpath

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates a nil graph was passed to Solve.
	ErrNilGraph = errors.New("critpath: graph is nil")

	// ErrSourceNotFound indicates the source label was never registered
	// in the graph.
	ErrSourceNotFound = errors.New("critpath: source not registered")

	// ErrSinkNotFound indicates the sink label was never registered in
	// the graph.
	ErrSinkNotFound = errors.New("critpath: sink not registered")

	// ErrNoPathFound indicates the sink is unreachable from the source.
	// No degenerate zero-length answer is produced in that case.
	ErrNoPathFound = errors.New("critpath: no path from source to sink")
)

// Result is the outcome of a longest-path computation.
type Result[L comparable] struct {
	// Length is the total weight of the longest source→sink path.
	Length float64

	// Path holds the node labels along that path, source first,
	// sink last. When multiple inneighbors tie for maximum distance
	// during reconstruction, any maximizer may appear; Length always
	// equals the path's total weight regardless of the tie choice.
	Path []L
}

// Option configures optional behavior for Solve.
type Option func(*options)

// options holds settings for Solve, currently only cancellation.
type options struct {
	ctx context.Context // forwarded to the topological sort
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation
// context, forwarded to the underlying topological sort.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
