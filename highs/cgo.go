//go:build (linux || darwin) && (amd64 || arm64)

// Package highs provides Go bindings for the linear programming part of the
// HiGHS optimization solver.
//
// The package links the prebuilt static HiGHS library found under
// internal/highs, so `go build` produces a self-contained binary.
//
// # Supported Platforms
//
//   - linux/amd64
//   - linux/arm64
//   - darwin/amd64
//   - darwin/arm64
//
// # Model API
//
//	model := highs.Model{
//		ColCosts: []float64{1.0, 1.0},
//		ColLower: []float64{0.0, 0.0},
//	}
//	model.AddLeRow([]float64{1.0, 1.0}, 5.0) // x + y <= 5
//	model.AddEqRow([]float64{1.0, 0.0}, 2.0) // x = 2
//
//	solution, err := model.Solve(highs.WithOutput(false))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solution.Objective, solution.Iterations())
//
// # Low-Level API
//
//	solver, err := highs.NewSolver()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer solver.Close()
//
//	solver.SetBoolOption("output_flag", false)
//	solver.AddVars(lower, upper)
//	solver.SetColCosts(costs)
//	solver.AddRow(lo, hi, index, value)
//	solution, err := solver.Run()
package highs

/*
#cgo CFLAGS: -I${SRCDIR}/../internal/highs/include

#cgo linux,amd64 LDFLAGS: ${SRCDIR}/../internal/highs/lib/linux_amd64/libhighs.a -lstdc++ -lm -ldl -lz
#cgo linux,arm64 LDFLAGS: ${SRCDIR}/../internal/highs/lib/linux_arm64/libhighs.a -lstdc++ -lm -ldl -lz
#cgo darwin,amd64 LDFLAGS: ${SRCDIR}/../internal/highs/lib/darwin_amd64/libhighs.a -lc++ -lz
#cgo darwin,arm64 LDFLAGS: ${SRCDIR}/../internal/highs/lib/darwin_arm64/libhighs.a -lc++ -lz

#include <stdlib.h>
#include <stdint.h>
#include "highs_c_api.h"
*/
import "C"
import (
	"runtime"
	"unsafe"
)

func modelStatusFromC(status C.HighsInt) ModelStatus {
	switch status {
	case C.kHighsModelStatusNotset:
		return ModelStatusNotSet
	case C.kHighsModelStatusLoadError:
		return ModelStatusLoadError
	case C.kHighsModelStatusModelError:
		return ModelStatusModelError
	case C.kHighsModelStatusPresolveError:
		return ModelStatusPresolveError
	case C.kHighsModelStatusSolveError:
		return ModelStatusSolveError
	case C.kHighsModelStatusPostsolveError:
		return ModelStatusPostsolveError
	case C.kHighsModelStatusModelEmpty:
		return ModelStatusModelEmpty
	case C.kHighsModelStatusOptimal:
		return ModelStatusOptimal
	case C.kHighsModelStatusInfeasible:
		return ModelStatusInfeasible
	case C.kHighsModelStatusUnboundedOrInfeasible:
		return ModelStatusUnboundedOrInfeasible
	case C.kHighsModelStatusUnbounded:
		return ModelStatusUnbounded
	case C.kHighsModelStatusObjectiveBound:
		return ModelStatusObjectiveBound
	case C.kHighsModelStatusObjectiveTarget:
		return ModelStatusObjectiveTarget
	case C.kHighsModelStatusTimeLimit:
		return ModelStatusTimeLimit
	case C.kHighsModelStatusIterationLimit:
		return ModelStatusIterationLimit
	default:
		return ModelStatusUnknown
	}
}

// Solver wraps a native HiGHS instance.
//
// Always call Close() when done:
//
//	solver, _ := NewSolver()
//	defer solver.Close()
type Solver struct {
	ptr unsafe.Pointer
}

// NewSolver creates a new HiGHS instance.
func NewSolver() (*Solver, error) {
	ptr := C.Highs_create()
	if ptr == nil {
		return nil, newErrorMsg("NewSolver", "failed to create HiGHS instance")
	}

	s := &Solver{ptr: ptr}
	runtime.SetFinalizer(s, (*Solver).Close)
	return s, nil
}

// Close releases the native instance. It is safe to call Close multiple times.
func (s *Solver) Close() {
	if s.ptr != nil {
		C.Highs_destroy(s.ptr)
		s.ptr = nil
	}
}

// Infinity returns the value HiGHS uses for an infinite bound.
func (s *Solver) Infinity() float64 {
	return float64(C.Highs_getInfinity(s.ptr))
}

// NumCol returns the number of columns in the loaded model.
func (s *Solver) NumCol() int {
	return int(C.Highs_getNumCol(s.ptr))
}

// NumRow returns the number of rows in the loaded model.
func (s *Solver) NumRow() int {
	return int(C.Highs_getNumRow(s.ptr))
}

func (s *Solver) SetBoolOption(name string, value bool) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cVal C.HighsInt
	if value {
		cVal = 1
	}
	status := Status(C.Highs_setBoolOptionValue(s.ptr, cName, cVal))
	return newError("SetBoolOption", status)
}

func (s *Solver) SetIntOption(name string, value int) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	status := Status(C.Highs_setIntOptionValue(s.ptr, cName, C.HighsInt(value)))
	return newError("SetIntOption", status)
}

func (s *Solver) SetFloatOption(name string, value float64) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	status := Status(C.Highs_setDoubleOptionValue(s.ptr, cName, C.double(value)))
	return newError("SetFloatOption", status)
}

func (s *Solver) SetStringOption(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))

	status := Status(C.Highs_setStringOptionValue(s.ptr, cName, cVal))
	return newError("SetStringOption", status)
}

// AddVars adds len(lower) columns with the given bounds.
func (s *Solver) AddVars(lower, upper []float64) error {
	if len(lower) != len(upper) {
		return newErrorMsg("AddVars", "lower and upper bounds must have same length")
	}
	if len(lower) == 0 {
		return nil
	}

	status := Status(C.Highs_addVars(s.ptr,
		C.HighsInt(len(lower)),
		(*C.double)(&lower[0]),
		(*C.double)(&upper[0])))
	return newError("AddVars", status)
}

// AddRow adds lower <= sum(value[i] * x[index[i]]) <= upper.
func (s *Solver) AddRow(lower, upper float64, index []int, value []float64) error {
	if len(index) != len(value) {
		return newErrorMsg("AddRow", "index and value must have same length")
	}

	var pIndex *C.HighsInt
	var pValue *C.double
	if len(index) > 0 {
		cIndex := toHighsInts(index)
		pIndex = &cIndex[0]
		pValue = (*C.double)(&value[0])
	}

	status := Status(C.Highs_addRow(s.ptr,
		C.double(lower), C.double(upper),
		C.HighsInt(len(index)), pIndex, pValue))
	return newError("AddRow", status)
}

// SetColCosts sets the objective coefficients of columns [0, len(costs)).
func (s *Solver) SetColCosts(costs []float64) error {
	if len(costs) == 0 {
		return nil
	}
	status := Status(C.Highs_changeColsCostByRange(s.ptr,
		0, C.HighsInt(len(costs)-1),
		(*C.double)(&costs[0])))
	return newError("SetColCosts", status)
}

// PassLP loads a complete LP with a row-wise constraint matrix.
// aStart must have one entry per row.
func (s *Solver) PassLP(
	colCost, colLower, colUpper []float64,
	rowLower, rowUpper []float64,
	aStart, aIndex []int,
	aValue []float64,
	maximize bool,
	offset float64,
) error {
	numCol, numRow := len(colCost), len(rowLower)
	if len(colLower) != numCol || len(colUpper) != numCol {
		return newErrorMsg("PassLP", "column slices must have same length")
	}
	if len(rowUpper) != numRow || len(aStart) != numRow {
		return newErrorMsg("PassLP", "row slices must have same length")
	}
	if len(aIndex) != len(aValue) {
		return newErrorMsg("PassLP", "index and value must have same length")
	}

	sense := C.kHighsObjSenseMinimize
	if maximize {
		sense = C.kHighsObjSenseMaximize
	}

	cAStart := toHighsInts(aStart)
	cAIndex := toHighsInts(aIndex)

	var pColCost, pColLower, pColUpper *C.double
	var pRowLower, pRowUpper *C.double
	var pAStart, pAIndex *C.HighsInt
	var pAValue *C.double

	if numCol > 0 {
		pColCost = (*C.double)(&colCost[0])
		pColLower = (*C.double)(&colLower[0])
		pColUpper = (*C.double)(&colUpper[0])
	}
	if numRow > 0 {
		pRowLower = (*C.double)(&rowLower[0])
		pRowUpper = (*C.double)(&rowUpper[0])
		pAStart = &cAStart[0]
	}
	if len(aValue) > 0 {
		pAIndex = &cAIndex[0]
		pAValue = (*C.double)(&aValue[0])
	}

	status := Status(C.Highs_passLp(s.ptr,
		C.HighsInt(numCol), C.HighsInt(numRow), C.HighsInt(len(aValue)),
		C.kHighsMatrixFormatRowwise,
		C.HighsInt(sense), C.double(offset),
		pColCost, pColLower, pColUpper,
		pRowLower, pRowUpper,
		pAStart, pAIndex, pAValue))
	return newError("PassLP", status)
}

// Run solves the loaded model. A non-optimal model status is not an error;
// inspect Solution.Status.
func (s *Solver) Run() (*Solution, error) {
	status := Status(C.Highs_run(s.ptr))
	if status == StatusError {
		return nil, newError("Run", status)
	}

	numCol := s.NumCol()
	numRow := s.NumRow()

	colValue := make([]float64, numCol)
	colDual := make([]float64, numCol)
	rowValue := make([]float64, numRow)
	rowDual := make([]float64, numRow)

	var pColValue, pColDual, pRowValue, pRowDual *C.double
	if numCol > 0 {
		pColValue = (*C.double)(&colValue[0])
		pColDual = (*C.double)(&colDual[0])
	}
	if numRow > 0 {
		pRowValue = (*C.double)(&rowValue[0])
		pRowDual = (*C.double)(&rowDual[0])
	}
	C.Highs_getSolution(s.ptr, pColValue, pColDual, pRowValue, pRowDual)

	sol := &Solution{
		Status:    modelStatusFromC(C.Highs_getModelStatus(s.ptr)),
		ColValues: colValue,
		ColDuals:  colDual,
		RowValues: rowValue,
		RowDuals:  rowDual,
		Objective: float64(C.Highs_getObjectiveValue(s.ptr)),
	}

	// Counters are absent when HiGHS solved the model in presolve.
	sol.SimplexIterations, _ = s.GetIntInfo("simplex_iteration_count")
	sol.IPMIterations, _ = s.GetIntInfo("ipm_iteration_count")
	sol.CrossoverIterations, _ = s.GetIntInfo("crossover_iteration_count")

	return sol, nil
}

// GetIntInfo returns an integer info value such as "simplex_iteration_count".
func (s *Solver) GetIntInfo(name string) (int, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var val C.HighsInt
	status := Status(C.Highs_getIntInfoValue(s.ptr, cName, &val))
	if err := newError("GetIntInfo", status); err != nil {
		return 0, err
	}
	return int(val), nil
}

func toHighsInts(v []int) []C.HighsInt {
	out := make([]C.HighsInt, len(v))
	for i, x := range v {
		out[i] = C.HighsInt(x)
	}
	return out
}
