// Command transportlp solves every transportation instance in a zip archive
// and writes cost, iteration and timing metrics to an .xlsx or .csv report.
//
//	transportlp --archive simple_instances.zip --output simple_results.xlsx
package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bartolsthoorn/transportlp/batch"
	"github.com/bartolsthoorn/transportlp/highs"
	"github.com/bartolsthoorn/transportlp/report"
	"github.com/bartolsthoorn/transportlp/solver"
	"github.com/bartolsthoorn/transportlp/solver/highssolver"
)

const (
	backendHiGHS   = "highs"
	backendSimplex = "simplex"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "transportlp"
	app.Usage = "batch-solve transportation problems from a zip archive"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "archive, a", Value: "instances.zip", Usage: "zip archive of instance files", EnvVar: "TRANSPORTLP_ARCHIVE"},
		cli.StringFlag{Name: "output, o", Value: "results.xlsx", Usage: "report file (.xlsx or .csv)", EnvVar: "TRANSPORTLP_OUTPUT"},
		cli.StringFlag{Name: "ext", Value: batch.DefaultExtension, Usage: "suffix of instance entries", EnvVar: "TRANSPORTLP_EXT"},
		cli.StringFlag{Name: "backend", Value: backendHiGHS, Usage: "LP backend: highs or simplex", EnvVar: "TRANSPORTLP_BACKEND"},
		cli.Float64Flag{Name: "time-limit", Usage: "HiGHS time limit per instance in seconds (0 for none)", EnvVar: "TRANSPORTLP_TIME_LIMIT"},
		cli.IntFlag{Name: "threads", Usage: "HiGHS threads (0 for the solver default)", EnvVar: "TRANSPORTLP_THREADS"},
		cli.BoolFlag{Name: "solver-output", Usage: "let HiGHS log to stdout", EnvVar: "TRANSPORTLP_SOLVER_OUTPUT"},
		cli.BoolFlag{Name: "skip-invalid", Usage: "log and skip malformed instances instead of aborting", EnvVar: "TRANSPORTLP_SKIP_INVALID"},
		cli.BoolFlag{Name: "no-sysinfo", Usage: "omit the host description from .xlsx reports", EnvVar: "TRANSPORTLP_NO_SYSINFO"},
		cli.BoolFlag{Name: "quiet, q", Usage: "suppress progress logging", EnvVar: "TRANSPORTLP_QUIET"},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := configFrom(c)
		if err != nil {
			return err
		}
		return run(cfg)
	}
	return app
}

type config struct {
	Archive      string
	Output       string
	Ext          string
	Backend      string
	TimeLimit    float64
	Threads      int
	SolverOutput bool
	SkipInvalid  bool
	SysInfo      bool
	Quiet        bool
}

func configFrom(c *cli.Context) (config, error) {
	cfg := config{
		Archive:      c.String("archive"),
		Output:       c.String("output"),
		Ext:          c.String("ext"),
		Backend:      c.String("backend"),
		TimeLimit:    c.Float64("time-limit"),
		Threads:      c.Int("threads"),
		SolverOutput: c.Bool("solver-output"),
		SkipInvalid:  c.Bool("skip-invalid"),
		SysInfo:      !c.Bool("no-sysinfo"),
		Quiet:        c.Bool("quiet"),
	}
	if cfg.Archive == "" || cfg.Output == "" {
		return cfg, errors.New("--archive and --output must not be empty")
	}
	if cfg.TimeLimit < 0 {
		return cfg, errors.Errorf("--time-limit must not be negative, got %g", cfg.TimeLimit)
	}
	if cfg.Threads < 0 {
		return cfg, errors.Errorf("--threads must not be negative, got %d", cfg.Threads)
	}
	return cfg, nil
}

func (cfg config) solver() (solver.Solver, error) {
	switch cfg.Backend {
	case backendHiGHS:
		opts := []highs.SolveOption{highs.WithOutput(cfg.SolverOutput)}
		if cfg.TimeLimit > 0 {
			opts = append(opts, highs.WithTimeLimit(cfg.TimeLimit))
		}
		if cfg.Threads > 0 {
			opts = append(opts, highs.WithThreads(cfg.Threads))
		}
		return highssolver.New(opts...), nil
	case backendSimplex:
		return solver.Simplex{}, nil
	default:
		return nil, errors.Errorf("unknown backend %q (want %s or %s)", cfg.Backend, backendHiGHS, backendSimplex)
	}
}

func run(cfg config) error {
	var out io.Writer = os.Stderr
	if cfg.Quiet {
		out = io.Discard
	}
	logger := log.New(out, "transportlp: ", log.LstdFlags)

	s, err := cfg.solver()
	if err != nil {
		return err
	}

	var opts []report.Option
	if cfg.SysInfo {
		info, err := report.CollectSysInfo()
		if err != nil {
			logger.Printf("host information unavailable: %v", err)
		} else {
			opts = append(opts, report.WithSysInfo(info))
		}
	}
	sink, err := report.Open(cfg.Output, opts...)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(s,
		batch.WithExtension(cfg.Ext),
		batch.WithLogger(logger),
		batch.WithSkipInvalid(cfg.SkipInvalid),
	)
	return runner.Process(cfg.Archive, sink)
}
