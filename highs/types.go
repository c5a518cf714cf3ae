package highs

import "fmt"

// Status is the return code of a HiGHS call.
type Status int

const (
	// StatusError indicates the call failed.
	StatusError Status = -1
	// StatusOK indicates the call succeeded.
	StatusOK Status = 0
	// StatusWarning indicates the call succeeded with warnings.
	StatusWarning Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "Error"
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "Warning"
	default:
		return "Unknown"
	}
}

// ModelStatus is the state of a model after Run.
type ModelStatus int

const (
	ModelStatusNotSet ModelStatus = iota
	ModelStatusLoadError
	ModelStatusModelError
	ModelStatusPresolveError
	ModelStatusSolveError
	ModelStatusPostsolveError
	ModelStatusModelEmpty
	ModelStatusOptimal
	ModelStatusInfeasible
	ModelStatusUnboundedOrInfeasible
	ModelStatusUnbounded
	ModelStatusObjectiveBound
	ModelStatusObjectiveTarget
	ModelStatusTimeLimit
	ModelStatusIterationLimit
	ModelStatusUnknown
)

var modelStatusNames = []string{
	"NotSet", "LoadError", "ModelError", "PresolveError",
	"SolveError", "PostsolveError", "ModelEmpty", "Optimal",
	"Infeasible", "UnboundedOrInfeasible", "Unbounded",
	"ObjectiveBound", "ObjectiveTarget", "TimeLimit",
	"IterationLimit", "Unknown",
}

func (s ModelStatus) String() string {
	if int(s) >= 0 && int(s) < len(modelStatusNames) {
		return modelStatusNames[s]
	}
	return "Unknown"
}

// IsOptimal reports whether the model was solved to optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution reports whether primal values are meaningful for this status.
func (s ModelStatus) HasSolution() bool {
	switch s {
	case ModelStatusOptimal, ModelStatusObjectiveBound, ModelStatusObjectiveTarget,
		ModelStatusTimeLimit, ModelStatusIterationLimit:
		return true
	}
	return false
}

// Nonzero is one entry of a sparse constraint matrix. Row and Col are zero-indexed.
type Nonzero struct {
	Row int
	Col int
	Val float64
}

// Error reports which HiGHS operation failed.
type Error struct {
	Op     string // operation that failed, e.g. "PassModel"
	Status Status
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("highs: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("highs: %s failed with status %s", e.Op, e.Status)
}

// newError returns nil for OK and Warning.
func newError(op string, status Status) error {
	if status == StatusOK || status == StatusWarning {
		return nil
	}
	return &Error{Op: op, Status: status}
}

func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Status: StatusError, Msg: msg}
}
