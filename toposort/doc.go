// Package toposort implements Kahn's algorithm for topological ordering
// of a weighted directed graph.
//
// What:
//
//   - Sort: computes a linear ordering of all nodes such that for every
//     directed edge u→v, u appears before v. If any cycle exists, the
//     whole call fails with ErrCycleDetected — no partial order is ever
//     returned.
//
// How:
//
//	Sort works on a private Clone of the input graph, so the caller's
//	graph is never mutated. The frontier starts as the set of nodes
//	without incoming edges; nodes are popped in arbitrary order, their
//	outgoing edges are destructively removed from the working copy, and
//	any target whose indegree drops to zero joins the frontier. When
//	the frontier empties, residual edges in the working copy prove a
//	cycle.
//
// Why:
//
//   - Determine safe execution orders in dependency DAGs (task
//     schedulers, build pipelines)
//   - Detect cycles before running order-dependent computations such as
//     DAG longest path (see the critpath package)
//
// Tie-breaking:
//
//	Nodes whose indegree reaches zero simultaneously are popped in
//	unspecified order; the frontier has no ordering guarantee. Any
//	returned order is a valid topological order, which is all that
//	order-independent downstream computations require.
//
// Complexity:
//
//   - Time:   O(V+E) — indegree is tracked incrementally on the copy
//   - Memory: O(V+E) for the working copy
//
// Errors:
//
//   - ErrNilGraph       graph pointer is nil
//   - ErrCycleDetected  edges remain after the frontier empties
//   - context errors    via WithCancelContext
package toposort
