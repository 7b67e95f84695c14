// File: task.go
// Role: Task record type and strict YAML decoding of task documents.

package schedule

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrDecode wraps any failure to decode a task document.
var ErrDecode = errors.New("schedule: invalid task document")

// Task is one explicit task record: its name, the names of the tasks it
// depends on, and the cost (duration) of doing the task.
type Task struct {
	// Name uniquely identifies the task within one document.
	Name string `yaml:"name"`

	// DependsOn lists task names that must complete before this one.
	// Empty means the task is a starting task.
	DependsOn []string `yaml:"depends_on"`

	// Cost is the duration of the task. Used as the weight of every
	// edge leading into this task's node.
	Cost float64 `yaml:"cost"`
}

// taskDocument is the on-disk shape: a mapping with a "tasks" sequence.
type taskDocument struct {
	Tasks []Task `yaml:"tasks"`
}

// DecodeTasks reads one YAML task document from r and returns its task
// records in document order. Decoding is strict: unknown fields fail
// with ErrDecode, as does a document without a "tasks" sequence.
func DecodeTasks(r io.Reader) ([]Task, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc taskDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Tasks == nil {
		return nil, fmt.Errorf("%w: missing tasks sequence", ErrDecode)
	}

	return doc.Tasks, nil
}
