// File: methods_adjacent.go
// Role: Neighborhood queries: OutDegree/OutNeighbors/InNeighbors/
//       NodesWithoutIncoming.
// Cost model:
//   - Outgoing queries read one adjacency row: O(deg(u)).
//   - Incoming queries scan every row: O(V+E). This is the deliberate
//     price of the sparse list-of-pairs design; indegree is a rare
//     query relative to outdegree.

package core

// OutDegree returns the count of outgoing edges from u, or
// ErrUnregisteredNode if u was never registered.
//
// Complexity: O(1).
func (g *Graph[L]) OutDegree(u L) (int, error) {
	uh, err := g.Resolve(u)
	if err != nil {
		return 0, err
	}

	return len(g.adj[uh]), nil
}

// OutNeighbors returns every v such that the edge u→v exists, with
// original labels (not handles) and weights. Order follows insertion
// order of u's row; it is not guaranteed stable across edits.
//
// Complexity: O(deg(u)).
func (g *Graph[L]) OutNeighbors(u L) ([]Neighbor[L], error) {
	uh, err := g.Resolve(u)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor[L], 0, len(g.adj[uh]))
	for _, he := range g.adj[uh] {
		out = append(out, Neighbor[L]{Label: g.labels[he.to], Weight: he.weight})
	}

	return out, nil
}

// InNeighbors returns every v such that the edge v→u exists, with
// original labels and weights, in handle order of the sources.
// Requires scanning every node's adjacency row.
//
// Complexity: O(V+E).
func (g *Graph[L]) InNeighbors(u L) ([]Neighbor[L], error) {
	uh, err := g.Resolve(u)
	if err != nil {
		return nil, err
	}
	var in []Neighbor[L]
	for vh := range g.adj {
		for _, he := range g.adj[vh] {
			if he.to == uh {
				in = append(in, Neighbor[L]{Label: g.labels[vh], Weight: he.weight})
			}
		}
	}

	return in, nil
}

// NodesWithoutIncoming returns all registered labels with indegree 0,
// in first-seen (handle) order. Callers needing set semantics should
// not rely on the ordering.
//
// Complexity: O(V+E).
func (g *Graph[L]) NodesWithoutIncoming() []L {
	incoming := make([]bool, len(g.adj))
	for uh := range g.adj {
		for _, he := range g.adj[uh] {
			incoming[he.to] = true
		}
	}
	var out []L
	for h, has := range incoming {
		if !has {
			out = append(out, g.labels[h])
		}
	}

	return out
}
