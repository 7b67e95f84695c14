// Package core defines the central Graph type and its supporting
// value types for the weighted-digraph store.
//
// This file declares Graph, Neighbor, Arc, Option, sentinel errors,
// and the New constructor.
//
// Errors:
//
//	ErrUnregisteredNode - referenced label was never registered.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrInvalidHandle    - handle outside the dense range [0, NodeCount()).
//	ErrZeroWeightSum    - NormalizeOutgoing hit a zero-sum outgoing row.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrUnregisteredNode indicates a read or query operation referenced
	// a label that was never registered. Mutations that auto-register
	// (SetEdge, Register) never return it.
	ErrUnregisteredNode = errors.New("core: node not registered")

	// ErrEdgeNotFound indicates an operation referenced a pair of nodes
	// with no edge between them.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidHandle indicates a handle outside [0, NodeCount()).
	ErrInvalidHandle = errors.New("core: invalid node handle")

	// ErrZeroWeightSum indicates NormalizeOutgoing met a node whose
	// outgoing weights sum to zero, which has no defined probability row.
	ErrZeroWeightSum = errors.New("core: zero outgoing weight sum")
)

// Neighbor pairs an adjacent node's label with the weight of the
// connecting edge. Returned by OutNeighbors and InNeighbors.
type Neighbor[L comparable] struct {
	// Label is the adjacent node's caller-supplied identity.
	Label L

	// Weight is the weight of the edge connecting the queried node
	// with Label.
	Weight float64
}

// Arc is a single directed edge expressed in dense handles.
// Handles are stable for the graph's lifetime, so an Arc remains
// meaningful as long as its graph (or any Clone of it) exists.
type Arc struct {
	// From is the source node handle.
	From int

	// To is the target node handle.
	To int

	// Weight is the edge weight.
	Weight float64
}

// halfEdge is the internal adjacency entry: target handle plus weight.
// Stored in insertion order per source node; at most one entry per
// target (SetEdge overwrites in place).
type halfEdge struct {
	to     int
	weight float64
}

// Graph is the weighted directed graph store.
//
// It owns a bijection between labels and dense handles plus an ordered
// adjacency list per handle. The zero value is not usable; construct
// with New. No internal synchronization exists: the store assumes one
// logical owner at a time (see package documentation).
type Graph[L comparable] struct {
	// handles maps each registered label to its dense handle.
	handles map[L]int

	// labels maps each handle back to its label (first-seen order).
	labels []L

	// adj holds, per handle, the ordered outgoing (target, weight) pairs.
	adj [][]halfEdge

	// edgeCount tracks the total number of edges for O(1) EdgeCount.
	edgeCount int
}

// Option configures a Graph before first use.
type Option func(*config)

// config collects constructor settings.
type config struct {
	capacity int // pre-sized node capacity; 0 means none
}

// WithCapacity pre-sizes the internal maps and slices for n nodes.
// Purely an allocation hint; the graph still grows past n as needed.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty Graph: 0 nodes, 0 edges.
// Complexity: O(1) (O(n) allocation with WithCapacity(n)).
func New[L comparable](opts ...Option) *Graph[L] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[L]{
		handles: make(map[L]int, cfg.capacity),
		labels:  make([]L, 0, cfg.capacity),
		adj:     make([][]halfEdge, 0, cfg.capacity),
	}
}
