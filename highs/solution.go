package highs

// Solution holds the result of a Run.
type Solution struct {
	Status ModelStatus

	ColValues []float64
	ColDuals  []float64
	RowValues []float64
	RowDuals  []float64

	Objective float64

	SimplexIterations   int
	IPMIterations       int
	CrossoverIterations int
}

func (s *Solution) IsOptimal() bool {
	return s.Status == ModelStatusOptimal
}

func (s *Solution) IsInfeasible() bool {
	return s.Status == ModelStatusInfeasible ||
		s.Status == ModelStatusUnboundedOrInfeasible
}

func (s *Solution) IsUnbounded() bool {
	return s.Status == ModelStatusUnbounded ||
		s.Status == ModelStatusUnboundedOrInfeasible
}

// Iterations returns the iteration count of the algorithm that produced the
// solution: interior point when it ran, simplex otherwise.
func (s *Solution) Iterations() int {
	if s.IPMIterations > 0 {
		return s.IPMIterations
	}
	return s.SimplexIterations
}

// Value returns the primal value of variable index, or 0 when out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[index]
}
