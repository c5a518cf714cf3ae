// Package instance parses transportation problem instances from the
// semi-structured ".dat" declaration format:
//
//	instance_name = "small-1";
//	d = 2;
//	r = 3;
//	SCj = [10 20];
//	Dk = [5 15 10];
//	Cjk = [1 2 3
//	       4 5 6];
//
// Unknown lines are ignored and the cost table may wrap over any number of
// physical lines.
package instance

import "fmt"

// Instance is one transportation problem: Depots sources with capacities
// Supply, Stores sinks with requirements Demand and a Depots×Stores unit
// cost table.
type Instance struct {
	Name   string
	Depots int
	Stores int
	Supply []int
	Demand []int
	Cost   [][]int
}

// TotalSupply returns the summed depot capacities.
func (in *Instance) TotalSupply() int {
	return sum(in.Supply)
}

// TotalDemand returns the summed store requirements.
func (in *Instance) TotalDemand() int {
	return sum(in.Demand)
}

// Balanced reports whether total supply equals total demand.
func (in *Instance) Balanced() bool {
	return in.TotalSupply() == in.TotalDemand()
}

func (in *Instance) String() string {
	return fmt.Sprintf("%s (%dx%d)", in.Name, in.Depots, in.Stores)
}

func sum(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}
	return s
}

// FormatError reports malformed or dimensionally inconsistent instance text.
// Line is 1-based and zero when the problem is not tied to a single line.
type FormatError struct {
	Line int
	Key  string
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("instance: line %d: %s: %s", e.Line, e.Key, e.Msg)
	}
	return fmt.Sprintf("instance: %s: %s", e.Key, e.Msg)
}

func formatErrorf(line int, key, format string, args ...interface{}) error {
	return &FormatError{Line: line, Key: key, Msg: fmt.Sprintf(format, args...)}
}
