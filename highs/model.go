package highs

import "math"

// Model is a linear program in the form HiGHS accepts:
//
//	Minimize (or Maximize): ColCosts · x + Offset
//	Subject to:             RowLower ≤ A·x ≤ RowUpper
//	And:                    ColLower ≤ x ≤ ColUpper
//
// where A is given by ConstMatrix.
type Model struct {
	Maximize bool
	Offset   float64

	// ColCosts are the objective coefficients, one per variable.
	ColCosts []float64

	// ColLower and ColUpper bound each variable. Empty slices default
	// to -∞ and +∞ respectively.
	ColLower []float64
	ColUpper []float64

	// RowLower and RowUpper bound each constraint. Use NegInf() and Inf()
	// for one-sided rows.
	RowLower []float64
	RowUpper []float64

	// ConstMatrix lists the non-zero entries of A.
	ConstMatrix []Nonzero
}

// AddDenseRow adds lower <= coeffs · x <= upper. Zero coefficients are
// dropped.
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for col, val := range coeffs {
		if val != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: val})
		}
	}
}

// AddSparseRow adds lower <= sum(vals[i] * x[cols[i]]) <= upper.
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) {
	row := len(m.RowLower)
	m.RowLower = append(m.RowLower, lower)
	m.RowUpper = append(m.RowUpper, upper)

	for i, col := range cols {
		if vals[i] != 0.0 {
			m.ConstMatrix = append(m.ConstMatrix, Nonzero{Row: row, Col: col, Val: vals[i]})
		}
	}
}

// AddEqRow adds coeffs · x = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds coeffs · x <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(math.Inf(-1), coeffs, rhs)
}

// AddGeRow adds coeffs · x >= rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, math.Inf(1))
}

// NumVars returns the number of variables implied by the model's slices
// and matrix.
func (m *Model) NumVars() int {
	n := 0
	for _, nz := range m.ConstMatrix {
		if nz.Col+1 > n {
			n = nz.Col + 1
		}
	}
	for _, l := range []int{len(m.ColCosts), len(m.ColLower), len(m.ColUpper)} {
		if l > n {
			n = l
		}
	}
	return n
}

// NumConstraints returns the number of rows implied by the model.
func (m *Model) NumConstraints() int {
	n := 0
	for _, nz := range m.ConstMatrix {
		if nz.Row+1 > n {
			n = nz.Row + 1
		}
	}
	for _, l := range []int{len(m.RowLower), len(m.RowUpper)} {
		if l > n {
			n = l
		}
	}
	return n
}

// Solve loads the model into a fresh HiGHS instance and runs it.
//
//	solution, err := model.Solve(
//		highs.WithTimeLimit(60),
//		highs.WithOutput(false),
//	)
func (m *Model) Solve(opts ...SolveOption) (*Solution, error) {
	solver, err := NewSolver()
	if err != nil {
		return nil, err
	}
	defer solver.Close()

	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.apply(solver); err != nil {
		return nil, err
	}

	numCol := m.NumVars()
	numRow := m.NumConstraints()

	if numCol == 0 {
		return &Solution{Status: ModelStatusOptimal}, nil
	}

	colCosts, err := expandSlice(numCol, m.ColCosts, 0.0)
	if err != nil {
		return nil, newErrorMsg("Solve", "inconsistent ColCosts length")
	}
	colLower, err := expandSlice(numCol, m.ColLower, math.Inf(-1))
	if err != nil {
		return nil, newErrorMsg("Solve", "inconsistent ColLower length")
	}
	colUpper, err := expandSlice(numCol, m.ColUpper, math.Inf(1))
	if err != nil {
		return nil, newErrorMsg("Solve", "inconsistent ColUpper length")
	}
	rowLower, err := expandSlice(numRow, m.RowLower, math.Inf(-1))
	if err != nil {
		return nil, newErrorMsg("Solve", "inconsistent RowLower length")
	}
	rowUpper, err := expandSlice(numRow, m.RowUpper, math.Inf(1))
	if err != nil {
		return nil, newErrorMsg("Solve", "inconsistent RowUpper length")
	}

	aStart, aIndex, aValue, err := toRowwise(m.ConstMatrix, numRow)
	if err != nil {
		return nil, err
	}

	err = solver.PassLP(
		colCosts, colLower, colUpper,
		rowLower, rowUpper,
		aStart, aIndex, aValue,
		m.Maximize,
		m.Offset,
	)
	if err != nil {
		return nil, err
	}

	return solver.Run()
}

// SolveOption configures a Model.Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	output    *bool
	timeLimit *float64
	threads   *int
	presolve  *string
	method    *string
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{}
}

func (c *solveConfig) apply(s *Solver) error {
	if c.output != nil {
		if err := s.SetBoolOption("output_flag", *c.output); err != nil {
			return err
		}
	}
	if c.timeLimit != nil {
		if err := s.SetFloatOption("time_limit", *c.timeLimit); err != nil {
			return err
		}
	}
	if c.threads != nil {
		if err := s.SetIntOption("threads", *c.threads); err != nil {
			return err
		}
	}
	if c.presolve != nil {
		if err := s.SetStringOption("presolve", *c.presolve); err != nil {
			return err
		}
	}
	if c.method != nil {
		if err := s.SetStringOption("solver", *c.method); err != nil {
			return err
		}
	}
	return nil
}

// WithOutput enables or disables solver logging to stdout.
func WithOutput(enabled bool) SolveOption {
	return func(c *solveConfig) {
		c.output = &enabled
	}
}

// WithTimeLimit sets the time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.timeLimit = &seconds
	}
}

// WithThreads sets the number of threads HiGHS may use.
func WithThreads(n int) SolveOption {
	return func(c *solveConfig) {
		c.threads = &n
	}
}

// WithPresolve sets the presolve mode ("off", "choose", "on").
func WithPresolve(mode string) SolveOption {
	return func(c *solveConfig) {
		c.presolve = &mode
	}
}

// WithMethod selects the LP algorithm ("choose", "simplex", "ipm").
func WithMethod(method string) SolveOption {
	return func(c *solveConfig) {
		c.method = &method
	}
}
