package highssolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/transportlp/highs"
	"github.com/bartolsthoorn/transportlp/instance"
	"github.com/bartolsthoorn/transportlp/problem"
	"github.com/bartolsthoorn/transportlp/solver"
	"github.com/bartolsthoorn/transportlp/solver/highssolver"
)

func build(t *testing.T, supply, demand []int, cost [][]int) *problem.LinearProgram {
	t.Helper()
	lp, err := problem.Build(&instance.Instance{
		Depots: len(supply),
		Stores: len(demand),
		Supply: supply,
		Demand: demand,
		Cost:   cost,
	})
	require.NoError(t, err)
	return lp
}

func TestModel_Layout(t *testing.T) {
	m, err := highssolver.Model(build(t, []int{10, 20}, []int{5, 25}, [][]int{{1, 2}, {3, 4}}))
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2, 3, 4}, m.ColCosts)
	require.Equal(t, 4, m.NumVars())
	require.Equal(t, 4, m.NumConstraints())
	require.Equal(t, []float64{highs.NegInf(), highs.NegInf(), 5, 25}, m.RowLower)
	require.Equal(t, []float64{10, 20, 5, 25}, m.RowUpper)
	// 2 supply rows and 2 demand rows, each touching 2 variables
	require.Len(t, m.ConstMatrix, 8)
}

func TestSolve_MatchesSimplex(t *testing.T) {
	lp := build(t,
		[]int{300, 400, 500},
		[]int{250, 350, 400, 200},
		[][]int{{3, 1, 7, 4}, {2, 6, 5, 9}, {8, 3, 3, 2}})

	var s solver.Solver = highssolver.New(highs.WithMethod("simplex"), highs.WithPresolve("off"))
	out, err := s.Solve(lp)
	require.NoError(t, err)
	require.True(t, out.Success, out.Status)
	require.InDelta(t, 2850, out.Objective, 1e-6)
	require.Greater(t, out.Iterations, 0)

	ref, err := solver.Simplex{}.Solve(lp)
	require.NoError(t, err)
	require.InDelta(t, ref.Objective, out.Objective, 1e-6)
}

func TestSolve_Infeasible(t *testing.T) {
	out, err := highssolver.New().Solve(build(t, []int{10, 10}, []int{15, 10}, [][]int{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.False(t, out.Success)
	require.Contains(t, []string{"Infeasible", "UnboundedOrInfeasible"}, out.Status)
}
