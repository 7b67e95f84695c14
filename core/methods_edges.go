// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/Edge/HasEdge/RemoveEdge/
//       EdgeCount/AllEdges, plus NormalizeOutgoing.
// Invariant:
//   - At most one edge per ordered pair of handles: setArc overwrites
//     the weight in place rather than appending a duplicate.
// Determinism:
//   - Per-row order is insertion order; RemoveEdge preserves the
//     relative order of surviving entries.

package core

import "fmt"

// setArc sets the weight of the arc uh→vh, overwriting in place if the
// arc already exists, appending otherwise. Callers must pass valid
// handles. Returns true if a new arc was created.
func (g *Graph[L]) setArc(uh, vh int, w float64) bool {
	// Linear-scan overwrite keeps the "one edge per ordered pair"
	// invariant without relying on map iteration order.
	for i := range g.adj[uh] {
		if g.adj[uh][i].to == vh {
			g.adj[uh][i].weight = w

			return false
		}
	}
	g.adj[uh] = append(g.adj[uh], halfEdge{to: vh, weight: w})

	return true
}

// findArc returns the index of the arc uh→vh in uh's row, or -1.
func (g *Graph[L]) findArc(uh, vh int) int {
	for i := range g.adj[uh] {
		if g.adj[uh][i].to == vh {
			return i
		}
	}

	return -1
}

// SetEdge auto-registers u and v if needed, then sets the weight of the
// edge u→v to w, overwriting any existing edge between the same pair.
// No effect on other edges. Never fails; weight values are not
// validated (any finite float64 is accepted as given).
//
// Complexity: O(deg(u)) for the overwrite scan.
func (g *Graph[L]) SetEdge(u, v L, w float64) {
	// 1. Ensure both endpoints exist (mutations auto-register).
	uh := g.Register(u)
	vh := g.Register(v)
	// 2. Overwrite-or-append the arc; count only true insertions.
	if g.setArc(uh, vh, w) {
		g.edgeCount++
	}
}

// Edge returns the weight of the edge u→v.
// Fails with ErrUnregisteredNode if u or v was never registered, and
// with ErrEdgeNotFound if both exist but no edge u→v does.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) Edge(u, v L) (float64, error) {
	uh, err := g.Resolve(u)
	if err != nil {
		return 0, err
	}
	vh, err := g.Resolve(v)
	if err != nil {
		return 0, err
	}
	if i := g.findArc(uh, vh); i >= 0 {
		return g.adj[uh][i].weight, nil
	}

	return 0, fmt.Errorf("%w: %v->%v", ErrEdgeNotFound, u, v)
}

// HasEdge reports whether the edge u→v exists. Unregistered endpoints
// simply report false; no error surface.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) HasEdge(u, v L) bool {
	uh, ok := g.handles[u]
	if !ok {
		return false
	}
	vh, ok := g.handles[v]
	if !ok {
		return false
	}

	return g.findArc(uh, vh) >= 0
}

// RemoveEdge deletes exactly the edge u→v.
// Fails with ErrUnregisteredNode or ErrEdgeNotFound under the same
// conditions as Edge. Nodes are never removed, only the edge.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) RemoveEdge(u, v L) error {
	uh, err := g.Resolve(u)
	if err != nil {
		return err
	}
	vh, err := g.Resolve(v)
	if err != nil {
		return err
	}
	i := g.findArc(uh, vh)
	if i < 0 {
		return fmt.Errorf("%w: %v->%v", ErrEdgeNotFound, u, v)
	}
	// Order-preserving removal keeps insertion order of the survivors.
	g.adj[uh] = append(g.adj[uh][:i], g.adj[uh][i+1:]...)
	g.edgeCount--

	return nil
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph[L]) EdgeCount() int { return g.edgeCount }

// AllEdges returns every edge flattened across all nodes, expressed in
// handles. Primary use is the "any edges remain" residual check after a
// destructive traversal, not structured enumeration; order follows
// handle order then per-row insertion order.
//
// Complexity: O(V+E).
func (g *Graph[L]) AllEdges() []Arc {
	out := make([]Arc, 0, g.edgeCount)
	for uh := range g.adj {
		for _, he := range g.adj[uh] {
			out = append(out, Arc{From: uh, To: he.to, Weight: he.weight})
		}
	}

	return out
}

// NormalizeOutgoing rescales every node's outgoing edge weights to sum
// to 1, treating weights as frequencies, producing a Markov transition
// row per node. Nodes without outgoing edges are left untouched.
//
// A node whose outgoing weights sum to zero has no defined probability
// row: the call fails with ErrZeroWeightSum naming that node, and the
// graph is left completely unmodified (rows are validated before any
// weight is rewritten).
//
// Complexity: O(V+E), two passes.
func (g *Graph[L]) NormalizeOutgoing() error {
	// 1. Validation pass: every nonempty row must have a nonzero sum.
	totals := make([]float64, len(g.adj))
	for uh := range g.adj {
		if len(g.adj[uh]) == 0 {
			continue
		}
		var total float64
		for _, he := range g.adj[uh] {
			total += he.weight
		}
		if total == 0 {
			return fmt.Errorf("%w: node %v", ErrZeroWeightSum, g.labels[uh])
		}
		totals[uh] = total
	}
	// 2. Rewrite pass: rescale in place.
	for uh := range g.adj {
		for i := range g.adj[uh] {
			g.adj[uh][i].weight /= totals[uh]
		}
	}

	return nil
}
