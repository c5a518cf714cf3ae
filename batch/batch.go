// Package batch runs every instance of an archive through parse, build and
// solve, collecting one Result per instance.
package batch

import (
	"archive/zip"
	"io"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bartolsthoorn/transportlp/instance"
	"github.com/bartolsthoorn/transportlp/problem"
	"github.com/bartolsthoorn/transportlp/solver"
)

// DefaultExtension selects instance files inside an archive.
const DefaultExtension = ".dat"

// Entry is one named byte stream of an archive.
type Entry struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Result is the outcome of one instance. Cost and Iterations are nil when
// the instance was not solved or the backend did not report them.
type Result struct {
	Name       string
	Success    bool
	Cost       *float64
	Iterations *int
	Elapsed    time.Duration
	Status     string
}

// Seconds returns the solve time in seconds.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Sink receives the results of a completed run.
type Sink interface {
	WriteResults(results []Result) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithExtension sets the file-name suffix of instance entries.
func WithExtension(ext string) Option {
	return func(r *Runner) {
		r.ext = ext
	}
}

// WithLogger sets the progress logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithSkipInvalid makes malformed instances get logged and skipped instead
// of aborting the run.
func WithSkipInvalid(skip bool) Option {
	return func(r *Runner) {
		r.skipInvalid = skip
	}
}

// Runner processes entries strictly one after another.
type Runner struct {
	solver      solver.Solver
	ext         string
	logger      *log.Logger
	skipInvalid bool
}

// NewRunner returns a Runner that solves with s.
func NewRunner(s solver.Solver, opts ...Option) *Runner {
	r := &Runner{
		solver: s,
		ext:    DefaultExtension,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	return r
}

// Run processes the entries whose names end in the configured extension,
// in order. The first parse, build or solver error ends the run unless
// invalid instances are skipped.
func (r *Runner) Run(entries []Entry) ([]Result, error) {
	var results []Result
	for _, e := range entries {
		if !strings.HasSuffix(e.Name, r.ext) {
			continue
		}
		res, err := r.runEntry(e)
		if err != nil {
			if r.skipInvalid && isInvalid(err) {
				r.logger.Printf("%s: skipped: %v", e.Name, err)
				continue
			}
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runEntry(e Entry) (Result, error) {
	inst, err := readEntry(e)
	if err != nil {
		return Result{}, errors.Wrapf(err, "batch: %s", e.Name)
	}
	r.logger.Printf("%s: %s, supply %d, demand %d", e.Name, inst, inst.TotalSupply(), inst.TotalDemand())

	lp, err := problem.Build(inst)
	if err != nil {
		return Result{}, errors.Wrapf(err, "batch: %s", e.Name)
	}

	start := time.Now()
	out, err := r.solver.Solve(lp)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, errors.Wrapf(err, "batch: %s: %s solver", e.Name, r.solver.Name())
	}
	r.logger.Printf("%s: %s in %.3fs", e.Name, out, elapsed.Seconds())

	return newResult(inst.Name, out, elapsed), nil
}

func readEntry(e Entry) (*instance.Instance, error) {
	rc, err := e.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return instance.Read(rc)
}

func newResult(name string, out solver.Outcome, elapsed time.Duration) Result {
	res := Result{
		Name:    name,
		Success: out.Success,
		Elapsed: elapsed,
		Status:  out.Status,
	}
	if out.Success {
		cost := out.Objective
		res.Cost = &cost
		if out.Iterations >= 0 {
			it := out.Iterations
			res.Iterations = &it
		}
	}
	return res
}

func isInvalid(err error) bool {
	var fe *instance.FormatError
	var de *problem.DimensionError
	return errors.As(err, &fe) || errors.As(err, &de)
}

// ZipEntries lists the files of zr in archive order.
func ZipEntries(zr *zip.Reader) []Entry {
	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, Entry{Name: f.Name, Open: f.Open})
	}
	return entries
}

// RunArchive runs every instance file of the zip archive at path.
func (r *Runner) RunArchive(path string) ([]Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "batch: open archive")
	}
	defer zr.Close()

	r.logger.Printf("%s: %d entries, solving with %s", path, len(zr.File), r.solver.Name())
	return r.Run(ZipEntries(&zr.Reader))
}

// Process runs the archive at path and hands the results to sink. Nothing
// reaches the sink when the run fails.
func (r *Runner) Process(path string, sink Sink) error {
	results, err := r.RunArchive(path)
	if err != nil {
		return err
	}
	if err := sink.WriteResults(results); err != nil {
		return errors.Wrap(err, "batch: write results")
	}
	r.logger.Printf("%s: wrote %d results", path, len(results))
	return nil
}
