// File: graph.go
// Role: Task records → DAG with synthetic terminals, validation, and
//       the one-call CriticalPath convenience.

package schedule

import (
	"errors"
	"fmt"

	"github.com/wdgraph/wdgraph/core"
	"github.com/wdgraph/wdgraph/critpath"
)

// Synthetic terminal labels wired around every task DAG.
const (
	// Source is the universal super-source: every dependency-free task
	// hangs off it, weighted by that task's cost.
	Source = "s"

	// Sink is the universal super-sink: every task nothing depends on
	// is wired into it with weight 0.
	Sink = "t"
)

// Validation sentinels returned by BuildGraph.
var (
	// ErrNoTasks indicates an empty task list.
	ErrNoTasks = errors.New("schedule: no tasks")

	// ErrDuplicateTask indicates two records share a name.
	ErrDuplicateTask = errors.New("schedule: duplicate task name")

	// ErrUnknownDependency indicates a dependency names no declared task.
	ErrUnknownDependency = errors.New("schedule: unknown dependency")

	// ErrReservedName indicates a task claimed a synthetic terminal name.
	ErrReservedName = errors.New("schedule: task name is reserved")
)

// BuildGraph validates tasks and wires them into a weighted DAG between
// the synthetic Source and Sink terminals:
//
//   - every dependency dep of task T adds the edge dep→T weighted by
//     T's cost (T starts once all of its dependencies finish, so each
//     incoming edge carries T's own duration);
//   - a task without dependencies gets Source→task with its cost;
//   - a task no other task depends on gets task→Sink with weight 0.
//
// Records are processed in input order. Dependency cycles are not
// detected here; they surface from the solver as
// toposort.ErrCycleDetected.
//
// Complexity: O(T+D) over tasks and dependency entries.
func BuildGraph(tasks []Task) (*core.Graph[string], error) {
	// 1. Validate the record set before touching the graph.
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	names := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		if task.Name == Source || task.Name == Sink {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, task.Name)
		}
		if _, dup := names[task.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTask, task.Name)
		}
		names[task.Name] = struct{}{}
	}
	for _, task := range tasks {
		for _, dep := range task.DependsOn {
			if _, ok := names[dep]; !ok {
				return nil, fmt.Errorf("%w: %q (required by %q)", ErrUnknownDependency, dep, task.Name)
			}
		}
	}
	// 2. Wire dependencies and the source side.
	g := core.New[string](core.WithCapacity(len(tasks) + 2))
	isDependency := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		for _, dep := range task.DependsOn {
			isDependency[dep] = struct{}{}
			g.SetEdge(dep, task.Name, task.Cost)
		}
		if len(task.DependsOn) == 0 {
			// No dependencies: a starting task, reached from Source.
			g.SetEdge(Source, task.Name, task.Cost)
		}
	}
	// 3. Wire terminal tasks into the sink, in input order.
	for _, task := range tasks {
		if _, ok := isDependency[task.Name]; !ok {
			g.SetEdge(task.Name, Sink, 0)
		}
	}

	return g, nil
}

// CriticalPath builds the task DAG and solves for its critical path in
// one call. The result's Path runs Source-first, Sink-last, and Length
// is the minimum completion time of the whole task set.
func CriticalPath(tasks []Task) (critpath.Result[string], error) {
	g, err := BuildGraph(tasks)
	if err != nil {
		return critpath.Result[string]{}, err
	}

	return critpath.Solve(g, Source, Sink)
}
