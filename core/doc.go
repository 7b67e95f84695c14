// Package core provides the weighted directed graph store: a bijection
// between arbitrary comparable node labels and dense integer handles,
// plus ordered adjacency lists of (target, weight) pairs.
//
// The Graph G = (V,E) is deliberately small in surface and strict in
// contract:
//
//   - Registration is idempotent: Register returns the existing handle
//     for a known label, and handles are assigned densely in first-seen
//     order — never reused, never renumbered.
//   - At most one edge exists per ordered pair of nodes: SetEdge
//     overwrites the weight in place rather than duplicating the edge.
//   - Adjacency is an explicit ordered list of (target, weight) pairs
//     with linear-scan overwrite, so per-node enumeration follows
//     insertion order (not guaranteed stable across edits).
//   - Read queries (Resolve, Edge, OutDegree, OutNeighbors, InNeighbors)
//     never auto-register; only SetEdge and Register create nodes.
//   - Nodes are never removed; edges may be removed.
//
// Why the sparse list-of-pairs design?
//
//	Outgoing queries dominate: OutDegree and OutNeighbors are O(deg).
//	The deliberate cost is that InNeighbors and NodesWithoutIncoming
//	must scan every adjacency list — O(V+E) — because indegree is a
//	rare query relative to outdegree in the intended workloads.
//
// Concurrency:
//
//	None. The store assumes exclusive ownership by one logical caller
//	at a time and carries no internal synchronization; consumers that
//	share a Graph across goroutines must serialize access themselves.
//	Algorithms that destructively consume edges must operate on a
//	private Clone(), never on a graph the caller still holds.
//
// Core methods:
//
//	// Node lifecycle & identity
//	Register(label L) int                  // O(1), idempotent
//	Resolve(label L) (int, error)          // O(1)
//	Label(handle int) (L, error)           // O(1)
//	Labels() []L                           // O(V), first-seen order
//	NodeCount() int                        // O(1)
//
//	// Edge lifecycle
//	SetEdge(u, v L, w float64)             // O(deg(u)), auto-registers
//	Edge(u, v L) (float64, error)          // O(deg(u))
//	HasEdge(u, v L) bool                   // O(deg(u))
//	RemoveEdge(u, v L) error               // O(deg(u))
//	EdgeCount() int                        // O(1)
//
//	// Neighborhood queries
//	OutDegree(u L) (int, error)            // O(1)
//	OutNeighbors(u L) ([]Neighbor[L], error) // O(deg(u))
//	InNeighbors(u L) ([]Neighbor[L], error)  // O(V+E)
//	NodesWithoutIncoming() []L             // O(V+E)
//	AllEdges() []Arc                       // O(V+E)
//
//	// Derived & maintenance
//	NormalizeOutgoing() error              // O(V+E), Markov row rescale
//	Clone() *Graph[L]                      // O(V+E), fully independent
//
// Errors:
//
//	ErrUnregisteredNode – a query referenced a label never registered
//	ErrEdgeNotFound     – no edge exists between the resolved pair
//	ErrInvalidHandle    – a handle outside [0, NodeCount())
//	ErrZeroWeightSum    – NormalizeOutgoing met a node whose outgoing
//	                      weights sum to zero
package core
