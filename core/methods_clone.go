// File: methods_clone.go
// Role: Deep copy of a graph instance.
// Identity:
//   - Clone preserves the label↔handle bijection exactly, so handles
//     (and Arc values) remain meaningful across the copy.

package core

// Clone returns a deep, fully independent copy of the Graph: the
// label↔handle bijection and every adjacency row are duplicated, so
// mutations to the copy never affect the original and vice versa.
//
// Algorithms that destructively consume edges (Kahn's topological sort)
// must run against a Clone, never against a graph the caller still
// holds a reference to.
//
// Complexity: O(V+E).
func (g *Graph[L]) Clone() *Graph[L] {
	clone := &Graph[L]{
		handles:   make(map[L]int, len(g.handles)),
		labels:    make([]L, len(g.labels)),
		adj:       make([][]halfEdge, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for label, h := range g.handles {
		clone.handles[label] = h
	}
	copy(clone.labels, g.labels)
	for h, row := range g.adj {
		if row == nil {
			continue
		}
		clone.adj[h] = make([]halfEdge, len(row))
		copy(clone.adj[h], row)
	}

	return clone
}
