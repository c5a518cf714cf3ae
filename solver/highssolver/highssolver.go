// Package highssolver implements solver.Solver on top of the HiGHS binding.
package highssolver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/bartolsthoorn/transportlp/highs"
	"github.com/bartolsthoorn/transportlp/problem"
	"github.com/bartolsthoorn/transportlp/solver"
)

// Solver solves with a fresh HiGHS instance per program.
type Solver struct {
	opts []highs.SolveOption
}

var _ solver.Solver = (*Solver)(nil)

// New returns a Solver applying opts to every solve. Solver output is off
// unless opts turn it back on.
func New(opts ...highs.SolveOption) *Solver {
	return &Solver{opts: append([]highs.SolveOption{highs.WithOutput(false)}, opts...)}
}

func (s *Solver) Name() string { return "highs" }

// Solve reports success only for an optimal model status.
func (s *Solver) Solve(prog *problem.LinearProgram) (solver.Outcome, error) {
	model, err := Model(prog)
	if err != nil {
		return solver.Outcome{}, err
	}

	sol, err := model.Solve(s.opts...)
	if err != nil {
		if he, ok := err.(*highs.Error); ok && he.Op == "Run" {
			return solver.Outcome{Iterations: -1, Status: he.Error()}, nil
		}
		return solver.Outcome{}, err
	}

	out := solver.Outcome{
		Success:    sol.IsOptimal(),
		Objective:  sol.Objective,
		Iterations: sol.Iterations(),
		Status:     sol.Status.String(),
	}
	return out, nil
}

// Model translates prog into a highs.Model: one <= row per depot, then one
// = row per store.
func Model(prog *problem.LinearProgram) (*highs.Model, error) {
	n := prog.NumVars()
	mUB, nUB := prog.InequalityMatrix.Dims()
	mEQ, nEQ := prog.EqualityMatrix.Dims()
	if nUB != n || nEQ != n {
		return nil, &problem.DimensionError{What: "constraint matrix", Got: nUB, Want: n}
	}
	if len(prog.InequalityBound) != mUB {
		return nil, &problem.DimensionError{What: "inequality bound", Got: len(prog.InequalityBound), Want: mUB}
	}
	if len(prog.EqualityBound) != mEQ {
		return nil, &problem.DimensionError{What: "equality bound", Got: len(prog.EqualityBound), Want: mEQ}
	}
	if len(prog.Bounds) != n {
		return nil, &problem.DimensionError{What: "bounds", Got: len(prog.Bounds), Want: n}
	}

	m := &highs.Model{
		ColCosts: append([]float64(nil), prog.Objective...),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
	}
	for i, b := range prog.Bounds {
		m.ColLower[i] = b.Lower
		m.ColUpper[i] = b.Upper
	}
	for i := 0; i < mUB; i++ {
		m.AddLeRow(mat.Row(nil, i, prog.InequalityMatrix), prog.InequalityBound[i])
	}
	for i := 0; i < mEQ; i++ {
		m.AddEqRow(mat.Row(nil, i, prog.EqualityMatrix), prog.EqualityBound[i])
	}
	return m, nil
}
