// Package problem turns a transportation instance into a linear program in
// the inequality/equality form accepted by general LP solvers:
//
//	minimize    Objective · x
//	subject to  InequalityMatrix x <= InequalityBound   (one row per depot)
//	            EqualityMatrix x    = EqualityBound     (one row per store)
//	            Bounds[i].Lower <= x[i] <= Bounds[i].Upper
//
// Variable x[j*r+k] is the quantity shipped from depot j to store k.
package problem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/bartolsthoorn/transportlp/instance"
)

// Bound is the closed interval a decision variable may take.
type Bound struct {
	Lower float64
	Upper float64
}

// LinearProgram is the standard-form LP derived from one Instance.
type LinearProgram struct {
	Depots int
	Stores int

	Objective []float64

	InequalityMatrix *mat.Dense
	InequalityBound  []float64

	EqualityMatrix *mat.Dense
	EqualityBound  []float64

	Bounds []Bound
}

// NumVars returns the number of decision variables, Depots*Stores.
func (lp *LinearProgram) NumVars() int {
	return len(lp.Objective)
}

// Index returns the flat variable index of the depot j → store k shipment.
func (lp *LinearProgram) Index(j, k int) int {
	return j*lp.Stores + k
}

// DimensionError reports an LP whose parts disagree in size.
type DimensionError struct {
	What string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("problem: %s has length %d, want %d", e.What, e.Got, e.Want)
}

// Build derives the transportation LP of inst. It does not modify inst.
func Build(inst *instance.Instance) (*LinearProgram, error) {
	d, r := inst.Depots, inst.Stores
	if d <= 0 {
		return nil, &DimensionError{What: "depot count", Got: d, Want: 1}
	}
	if r <= 0 {
		return nil, &DimensionError{What: "store count", Got: r, Want: 1}
	}
	if len(inst.Supply) != d {
		return nil, &DimensionError{What: "supply", Got: len(inst.Supply), Want: d}
	}
	if len(inst.Demand) != r {
		return nil, &DimensionError{What: "demand", Got: len(inst.Demand), Want: r}
	}

	c := Flatten(inst.Cost)
	n := d * r
	if len(c) != n {
		return nil, &DimensionError{What: "objective", Got: len(c), Want: n}
	}

	aUB := mat.NewDense(d, n, nil)
	for j := 0; j < d; j++ {
		for k := 0; k < r; k++ {
			aUB.Set(j, j*r+k, 1)
		}
	}

	aEQ := mat.NewDense(r, n, nil)
	for k := 0; k < r; k++ {
		for col := k; col < n; col += r {
			aEQ.Set(k, col, 1)
		}
	}

	bounds := make([]Bound, n)
	for i := range bounds {
		bounds[i] = Bound{Lower: 0, Upper: math.Inf(1)}
	}

	return &LinearProgram{
		Depots:           d,
		Stores:           r,
		Objective:        c,
		InequalityMatrix: aUB,
		InequalityBound:  toFloats(inst.Supply),
		EqualityMatrix:   aEQ,
		EqualityBound:    toFloats(inst.Demand),
		Bounds:           bounds,
	}, nil
}

// Flatten lays out cost row by row: cost[j][k] lands at j*len(cost[j])+k
// for rectangular input.
func Flatten(cost [][]int) []float64 {
	var out []float64
	for _, row := range cost {
		for _, v := range row {
			out = append(out, float64(v))
		}
	}
	return out
}

// Regroup is the inverse of Flatten for a table with stride columns.
func Regroup(flat []float64, stride int) [][]float64 {
	if stride <= 0 {
		return nil
	}
	rows := make([][]float64, 0, (len(flat)+stride-1)/stride)
	for i := 0; i < len(flat); i += stride {
		end := i + stride
		if end > len(flat) {
			end = len(flat)
		}
		rows = append(rows, append([]float64(nil), flat[i:end]...))
	}
	return rows
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
