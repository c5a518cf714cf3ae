// Package report writes batch results as a table with the columns
// Instance, Optimal Cost, Iterations, Run Time (s) and Solved.
package report

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/transportlp/batch"
)

// Header is the first row of every report.
var Header = []string{"Instance", "Optimal Cost", "Iterations", "Run Time (s)", "Solved"}

// Option configures a sink created by Open.
type Option func(*config)

type config struct {
	system *SysInfo
}

// WithSysInfo adds a description of the host to sinks that can hold one.
func WithSysInfo(info SysInfo) Option {
	return func(c *config) {
		c.system = &info
	}
}

// Open returns a sink for path chosen by its extension: .xlsx or .csv.
func Open(path string, opts ...Option) (batch.Sink, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return &Workbook{Path: path, System: cfg.system}, nil
	case ".csv":
		return &CSV{Path: path}, nil
	default:
		return nil, errors.Errorf("report: unsupported output format %q", filepath.Ext(path))
	}
}

// values returns the cells of one result row; unsolved metrics are nil.
func values(r batch.Result) []interface{} {
	row := []interface{}{r.Name, nil, nil, r.Seconds(), r.Success}
	if r.Cost != nil {
		row[1] = *r.Cost
	}
	if r.Iterations != nil {
		row[2] = *r.Iterations
	}
	return row
}
