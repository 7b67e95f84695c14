package critpath

import (
	"fmt"

	"github.com/wdgraph/wdgraph/core"
	"github.com/wdgraph/wdgraph/toposort"
)

// Solve computes the longest path from source to sink in the DAG g.
//
// Both terminals must already be registered in g; Solve itself never
// mutates the input (the topological sort it delegates to works on a
// private copy). A cyclic input fails with toposort.ErrCycleDetected
// before any distance computation; an unreachable sink fails with
// ErrNoPathFound. You may pass WithCancelContext(ctx) to make the
// underlying sort cancellable.
//
// Complexity: O(V·E) worst case (per-node incoming scans on the sparse
// adjacency-list store), O(V+E) memory.
func Solve[L comparable](g *core.Graph[L], source, sink L, options ...Option) (Result[L], error) {
	var zero Result[L]
	// 1. Validate graph pointer and terminals.
	if g == nil {
		return zero, ErrNilGraph
	}
	if _, err := g.Resolve(source); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if _, err := g.Resolve(sink); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}
	// 2. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Topologically order the DAG; a cycle aborts here.
	order, err := toposort.Sort(g, toposort.WithCancelContext(opts.ctx))
	if err != nil {
		return zero, err
	}
	// 4. Relax in topological order. dist[v] is the maximum of
	//    dist[u]+w over source-reachable inneighbors (u,w); reachability
	//    is propagated alongside so every distance corresponds to a
	//    realizable source→v path.
	dist := make(map[L]float64, len(order))
	reached := make(map[L]bool, len(order))
	reached[source] = true
	for _, v := range order {
		if v == source {
			continue
		}
		ins, ierr := g.InNeighbors(v)
		if ierr != nil {
			return zero, ierr
		}
		var best float64
		found := false
		for _, in := range ins {
			if !reached[in.Label] {
				continue
			}
			if d := dist[in.Label] + in.Weight; !found || d > best {
				best = d
				found = true
			}
		}
		if found {
			dist[v] = best
			reached[v] = true
		}
	}
	// 5. An unreached sink is an explicit failure, never a silent
	//    zero-length answer.
	if !reached[sink] {
		return zero, fmt.Errorf("%w: %v -> %v", ErrNoPathFound, source, sink)
	}
	// 6. Reconstruct by walking backward from the sink, at each step
	//    selecting the reachable inneighbor with maximum distance
	//    (first maximizer wins on ties).
	path := []L{sink}
	current := sink
	for current != source {
		ins, ierr := g.InNeighbors(current)
		if ierr != nil {
			return zero, ierr
		}
		var next L
		var bestDist float64
		found := false
		for _, in := range ins {
			if !reached[in.Label] {
				continue
			}
			if !found || dist[in.Label] > bestDist {
				next = in.Label
				bestDist = dist[in.Label]
				found = true
			}
		}
		if !found {
			// Unreachable here would contradict reached[current]; keep
			// the guard so malformed state surfaces as an error rather
			// than an infinite walk.
			return zero, fmt.Errorf("%w: %v -> %v", ErrNoPathFound, source, sink)
		}
		path = append(path, next)
		current = next
	}
	// 7. Reverse into source-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result[L]{Length: dist[sink], Path: path}, nil
}
