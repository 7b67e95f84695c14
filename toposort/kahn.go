package toposort

import "github.com/wdgraph/wdgraph/core"

// Sort computes a topological ordering of all nodes in g using Kahn's
// algorithm. The returned order is some valid topological order; ties
// between simultaneously-ready nodes are broken arbitrarily.
//
// Sort never mutates g: all destructive edge removal happens on a
// private core.Clone of the input. If g is nil, ErrNilGraph is
// returned. If g contains a cycle, ErrCycleDetected is returned and no
// partial order is produced. You may pass WithCancelContext(ctx) to
// enable cancellation, checked once per popped node.
//
// Complexity: O(V+E) time, O(V+E) memory for the working copy.
func Sort[L comparable](g *core.Graph[L], options ...Option) ([]L, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}
	// 2. Apply optional settings.
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Take the private working copy; the caller's graph stays intact.
	work := g.Clone()
	n := work.NodeCount()
	// 4. Seed indegree counters from the flattened edge list and build
	//    the initial frontier: every node without incoming edges.
	//    Handles are identical on work and g, so counters index by handle.
	indegree := make([]int, n)
	for _, a := range work.AllEdges() {
		indegree[a.To]++
	}
	frontier := make(map[int]struct{}, n)
	for h := 0; h < n; h++ {
		if indegree[h] == 0 {
			frontier[h] = struct{}{}
		}
	}
	// 5. Pop, record, and relax until the frontier empties.
	order := make([]L, 0, n)
	for len(frontier) > 0 {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}
		// 5a. Remove an arbitrary element from the frontier.
		var h int
		for h = range frontier {
			break
		}
		delete(frontier, h)
		label, err := work.Label(h)
		if err != nil {
			return nil, err
		}
		order = append(order, label)
		// 5b. Capture the outgoing neighbors before any removal, then
		//     delete each edge from the working copy; targets whose
		//     indegree drops to zero join the frontier.
		neighbors, err := work.OutNeighbors(label)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if err = work.RemoveEdge(label, nb.Label); err != nil {
				return nil, err
			}
			th, rerr := work.Resolve(nb.Label)
			if rerr != nil {
				return nil, rerr
			}
			indegree[th]--
			if indegree[th] == 0 {
				frontier[th] = struct{}{}
			}
		}
	}
	// 6. Residual edges after exhaustion prove a cycle.
	if work.EdgeCount() != 0 {
		return nil, ErrCycleDetected
	}

	return order, nil
}
