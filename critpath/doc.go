// Package critpath computes the longest path (critical path) between
// two designated terminals of a weighted DAG.
//
// What:
//
//   - Solve: given a graph, a source s, and a sink t, returns the
//     length of the longest s→t path and the ordered node labels along
//     it. In project scheduling, with edge weights as task durations,
//     this is the critical path: the minimum completion time of the
//     whole dependent task set.
//
// How:
//
//  1. Obtain a topological order via toposort.Sort (a cyclic input
//     fails there with toposort.ErrCycleDetected before any distance
//     work begins).
//  2. Process nodes in topological order: dist[v] is the maximum of
//     dist[u]+w over source-reachable inneighbors (u,w), or 0 for the
//     source itself. Reachability from s is propagated alongside, so a
//     distance always corresponds to a realizable s→...→v path.
//  3. The longest path length is dist[t]; the path is reconstructed by
//     walking backward from t, at each node selecting the reachable
//     inneighbor with maximum dist (ties broken arbitrarily — any
//     maximizer yields the same total length).
//
// Unreachable sink:
//
//	If t cannot be reached from s, Solve fails with ErrNoPathFound.
//	A silent zero-length answer would be indistinguishable from a real
//	zero-weight path, so a disconnected sink is treated as a data
//	error the caller can identify with errors.Is.
//
// Intended shape of the input:
//
//	s is a synthetic super-source (logically indegree 0, wired to
//	every root task) and t a synthetic super-sink (wired from every
//	terminal task), as built by the schedule package. Solve does not
//	enforce that shape; it only requires both terminals to be
//	registered.
//
// Complexity:
//
//   - Time:   O(V·E) worst case, dominated by the per-node InNeighbors
//     scans of the sparse adjacency-list store
//   - Memory: O(V+E) for the working copy taken by the sort
//
// Errors:
//
//   - ErrNilGraph               graph pointer is nil
//   - ErrSourceNotFound         source label never registered
//   - ErrSinkNotFound           sink label never registered
//   - toposort.ErrCycleDetected input is not a DAG (propagated)
//   - ErrNoPathFound            sink unreachable from source
package critpath
