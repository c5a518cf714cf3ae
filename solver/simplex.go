package solver

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/bartolsthoorn/transportlp/problem"
)

// Simplex solves programs with gonum's dense simplex. It needs no native
// library, which makes it the reference backend in tests.
type Simplex struct {
	// Tol is passed to lp.Simplex; zero selects gonum's default.
	Tol float64
}

func (Simplex) Name() string { return "simplex" }

// Solve adds one slack variable per inequality row and hands the resulting
// equality system to lp.Simplex:
//
//	[ A_eq  0 ] [x]   [b_eq]
//	[ A_ub  I ] [s] = [b_ub],  x, s >= 0
func (s Simplex) Solve(prog *problem.LinearProgram) (Outcome, error) {
	c, a, b, err := standardForm(prog)
	if err != nil {
		return Outcome{}, err
	}

	z, _, err := lp.Simplex(c, a, b, s.Tol, nil)
	if err != nil {
		return Outcome{Iterations: -1, Status: err.Error()}, nil
	}
	return Outcome{Success: true, Objective: z, Iterations: -1, Status: "optimal"}, nil
}

func standardForm(prog *problem.LinearProgram) ([]float64, *mat.Dense, []float64, error) {
	n := prog.NumVars()
	for i, bd := range prog.Bounds {
		if bd.Lower != 0 || !math.IsInf(bd.Upper, 1) {
			return nil, nil, nil, errors.Errorf("solver: simplex supports only [0, +Inf) bounds, variable %d has [%g, %g]", i, bd.Lower, bd.Upper)
		}
	}

	mUB, nUB := prog.InequalityMatrix.Dims()
	mEQ, nEQ := prog.EqualityMatrix.Dims()
	if nUB != n || nEQ != n || mUB != len(prog.InequalityBound) || mEQ != len(prog.EqualityBound) {
		return nil, nil, nil, &problem.DimensionError{What: "constraint matrix", Got: nUB, Want: n}
	}

	cNew := make([]float64, n+mUB)
	copy(cNew, prog.Objective)

	bNew := make([]float64, mEQ+mUB)
	copy(bNew, prog.EqualityBound)
	copy(bNew[mEQ:], prog.InequalityBound)

	aNew := mat.NewDense(mEQ+mUB, n+mUB, nil)
	aNew.Slice(0, mEQ, 0, n).(*mat.Dense).Copy(prog.EqualityMatrix)
	aNew.Slice(mEQ, mEQ+mUB, 0, n).(*mat.Dense).Copy(prog.InequalityMatrix)
	for i := 0; i < mUB; i++ {
		aNew.Set(mEQ+i, n+i, 1)
	}

	return cNew, aNew, bNew, nil
}
