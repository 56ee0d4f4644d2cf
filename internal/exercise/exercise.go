// Package exercise runs the named demonstrations shipped with decomment.
package exercise

import (
	"fmt"
	"io"
	"slices"
)

// Exercise is a named demonstration that writes explanatory output.
type Exercise struct {
	Name string
	Run  func(w io.Writer) error
}

// Outcome records how an exercise ran.
type Outcome struct {
	Name string
	Err  error
}

// All returns every available exercise in run order.
func All() []Exercise {
	return []Exercise{
		{Name: "State", Run: stateExercise},
	}
}

// Names returns the names of all exercises.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, ex := range all {
		names = append(names, ex.Name)
	}
	return names
}

// Unknown returns the requested names that match no exercise.
func Unknown(names []string) []string {
	known := Names()
	var unknown []string
	for _, name := range names {
		if !slices.Contains(known, name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Run executes the named exercises, or all of them when names is empty.
// Failures are captured in the outcomes and never stop the run.
func Run(w io.Writer, names []string) []Outcome {
	var outcomes []Outcome
	for _, ex := range All() {
		if len(names) > 0 && !slices.Contains(names, ex.Name) {
			continue
		}
		outcomes = append(outcomes, Outcome{Name: ex.Name, Err: runOne(ex, w)})
	}
	return outcomes
}

// runOne runs a single exercise, turning a panic into an error.
func runOne(ex Exercise, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("exercise %s panicked: %v", ex.Name, r)
		}
	}()
	return ex.Run(w)
}
