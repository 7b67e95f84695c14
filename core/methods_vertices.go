// File: methods_vertices.go
// Role: Node identity lifecycle & queries: Register/Resolve/Label/Labels/NodeCount.
// Determinism:
//   - Handles are dense ints assigned in first-seen order, never reused
//     or renumbered while the graph exists (only appended).
//   - Labels() enumerates in first-seen (handle) order.

package core

import "fmt"

// Register returns the handle for label, creating a new handle (and an
// empty adjacency row for it) if label is unseen. Idempotent: a known
// label returns its existing handle with no side effects. Never fails.
//
// Complexity: O(1) amortized.
func (g *Graph[L]) Register(label L) int {
	// 1. Known label: return the existing handle unchanged.
	if h, ok := g.handles[label]; ok {
		return h
	}
	// 2. Assign the next dense handle and bootstrap its adjacency row.
	h := len(g.labels)
	g.handles[label] = h
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)

	return h
}

// Resolve returns the handle for label, or ErrUnregisteredNode if label
// was never registered. Read-only: never auto-registers.
//
// Complexity: O(1).
func (g *Graph[L]) Resolve(label L) (int, error) {
	h, ok := g.handles[label]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnregisteredNode, label)
	}

	return h, nil
}

// Label returns the label registered for handle, or ErrInvalidHandle if
// handle lies outside [0, NodeCount()).
//
// Complexity: O(1).
func (g *Graph[L]) Label(handle int) (L, error) {
	if handle < 0 || handle >= len(g.labels) {
		var zero L

		return zero, fmt.Errorf("%w: %d", ErrInvalidHandle, handle)
	}

	return g.labels[handle], nil
}

// Labels returns all registered labels in first-seen (handle) order.
// The returned slice is a copy and safe to retain.
//
// Complexity: O(V).
func (g *Graph[L]) Labels() []L {
	out := make([]L, len(g.labels))
	copy(out, g.labels)

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[L]) NodeCount() int { return len(g.labels) }
