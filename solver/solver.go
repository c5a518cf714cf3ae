// Package solver defines the LP solving capability used by the batch runner
// and provides a pure-Go simplex backend. A HiGHS-backed implementation
// lives in solver/highssolver.
package solver

import (
	"fmt"

	"github.com/bartolsthoorn/transportlp/problem"
)

// Solver solves a transportation LP.
//
// A solver that runs but cannot reach an optimum (infeasible, unbounded,
// limits hit) reports that through Outcome.Success; the error return is
// reserved for programs the backend could not accept at all.
type Solver interface {
	Name() string
	Solve(lp *problem.LinearProgram) (Outcome, error)
}

// Outcome is a backend's report for one solve.
type Outcome struct {
	Success   bool
	Objective float64

	// Iterations is -1 when the backend does not count iterations.
	Iterations int

	// Status is the backend's own name for how the solve ended.
	Status string
}

func (o Outcome) String() string {
	if !o.Success {
		return fmt.Sprintf("unsolved (%s)", o.Status)
	}
	return fmt.Sprintf("optimal %g after %d iterations", o.Objective, o.Iterations)
}
