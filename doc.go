// Package wdgraph is a small in-memory toolkit for weighted directed
// graphs with arbitrary comparable labels, built for project-scheduling
// style workloads: dependency DAGs, topological ordering, and critical
// path extraction.
//
// What is wdgraph?
//
//	A focused, pure-Go library that brings together:
//		• Core primitives: label↔handle mapping, ordered adjacency, edge CRUD (core)
//		• Topological ordering: Kahn's algorithm with cycle detection (toposort)
//		• Critical path: DAG longest path between designated terminals (critpath)
//		• Scheduling front-end: task records → DAG with synthetic s/t terminals (schedule)
//
// Why choose wdgraph?
//
//   - Minimal API — edge CRUD, neighbor queries, and the two algorithms
//     a scheduler actually needs; nothing else
//   - Explicit failures — sentinel errors for unregistered nodes, missing
//     edges, cycles, and unreachable sinks; no silent degenerate answers
//   - Generic labels — any comparable type works as a node identity
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/     — Graph[L], the weighted-digraph store and its queries
//	toposort/ — Kahn topological sort over a private copy of the graph
//	critpath/ — longest path (critical path) on a DAG
//	schedule/ — task-record ingestion, YAML decoding, one-call CriticalPath
//
// Quick ASCII example:
//
//	    s ──2──▶ A ──0──▶ t
//	    │                 ▲
//	    5──▶ B ──14──▶ D ─0
//
//	the critical path is s→B→D→t with length 19.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and worked examples.
package wdgraph
