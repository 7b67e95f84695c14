// Package schedule turns ordered task records into the weighted DAG the
// critpath solver consumes, and decodes task documents from YAML.
//
// What:
//
//   - Task: an explicit task record — name, dependency list, cost.
//     The task list is always passed as a parameter; no process-wide
//     task table exists.
//   - BuildGraph: validates the records and wires them into a DAG with
//     two synthetic terminals — the universal source Source ("s") and
//     the universal sink Sink ("t"). Each dependency dep of a task adds
//     the edge dep→task weighted by the task's cost; dependency-free
//     tasks hang off Source with their own cost; tasks nothing depends
//     on are wired into Sink with weight 0.
//   - DecodeTasks: strict YAML decoding of a task document (a mapping
//     with a "tasks" sequence); unknown fields are rejected.
//   - CriticalPath: BuildGraph followed by critpath.Solve(Source, Sink)
//     in one call.
//
// Validation:
//
//	BuildGraph rejects empty input (ErrNoTasks), duplicate task names
//	(ErrDuplicateTask), dependencies naming no declared task
//	(ErrUnknownDependency), and tasks claiming a reserved terminal
//	name (ErrReservedName). Dependency cycles are not a validation
//	concern here: they surface from the solver as
//	toposort.ErrCycleDetected.
//
// Task document shape:
//
//	tasks:
//	  - name: A
//	    cost: 2
//	  - name: D
//	    depends_on: [B, C]
//	    cost: 14
package schedule
