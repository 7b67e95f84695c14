// Command critpath reads a YAML task document and prints the critical
// path of the dependent task set: the ordered node labels from the
// synthetic source to the synthetic sink, and its total length.
//
// Usage:
//
//	critpath -f tasks.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wdgraph/wdgraph/schedule"
)

func main() {
	file := flag.String("f", "", "path to the YAML task document")
	flag.Parse()
	if *file == "" {
		fmt.Fprintln(os.Stderr, "critpath: -f <tasks.yaml> is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*file); err != nil {
		fmt.Fprintln(os.Stderr, "critpath:", err)
		os.Exit(1)
	}
}

// run keeps main free of logic: open, decode, solve, print.
func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tasks, err := schedule.DecodeTasks(f)
	if err != nil {
		return err
	}
	res, err := schedule.CriticalPath(tasks)
	if err != nil {
		return err
	}
	fmt.Printf("the critical path is %s, and its length is %g\n",
		strings.Join(res.Path, " -> "), res.Length)

	return nil
}
