package toposort_test

import (
	"errors"
	"fmt"

	"github.com/wdgraph/wdgraph/core"
	"github.com/wdgraph/wdgraph/toposort"
)

// ExampleSort orders a linear dependency chain.
func ExampleSort() {
	g := core.New[string]()
	g.SetEdge("fetch", "build", 1)
	g.SetEdge("build", "test", 1)

	order, err := toposort.Sort(g)
	if err != nil {
		fmt.Println("sort failed:", err)

		return
	}
	fmt.Println(order)

	// Output:
	// [fetch build test]
}

// ExampleSort_cycle shows the failure mode on cyclic input.
func ExampleSort_cycle() {
	g := core.New[string]()
	g.SetEdge("a", "b", 1)
	g.SetEdge("b", "a", 1)

	_, err := toposort.Sort(g)
	fmt.Println(errors.Is(err, toposort.ErrCycleDetected))

	// Output:
	// true
}
