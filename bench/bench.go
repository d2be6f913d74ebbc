// Package bench is a small timing harness for the map implementations. A
// benchmark drives its subject exclusively through callbacks: Setup builds a
// populated instance per measured round, Op runs once per batch iteration and
// the optional Teardown disposes of the instance. Setup and Teardown are
// excluded from timing.
package bench

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

type (
	SetupFunc[C any]    func(round int) C
	OpFunc[C any]       func(ctx C, iteration int)
	TeardownFunc[C any] func(ctx C)
)

// Benchmark describes one timed workload over a context of type C.
type Benchmark[C any] struct {
	Name     string
	Elements int
	Setup    SetupFunc[C]
	Op       OpFunc[C]
	Teardown TeardownFunc[C] // optional
}

// Result is the summarized outcome of one benchmark: mean and standard
// deviation of the per-operation time after IQR outlier filtering.
type Result struct {
	Name     string
	Elements int
	AvgNs    float64
	StdDevNs float64
	Samples  int
}

// Suite runs benchmarks and accumulates their results.
type Suite struct {
	warmup     int
	iterations int
	batch      int
	log        hclog.Logger
	results    []Result
}

type SuiteOption func(*Suite)

// WithWarmup sets the number of untimed warmup rounds (default 50).
func WithWarmup(n int) SuiteOption {
	return func(s *Suite) { s.warmup = n }
}

// WithIterations sets the number of measured rounds (default 300).
func WithIterations(n int) SuiteOption {
	return func(s *Suite) { s.iterations = n }
}

// WithBatch sets the number of Op calls per timed round (default 1).
func WithBatch(n int) SuiteOption {
	return func(s *Suite) { s.batch = n }
}

// WithLogger attaches a logger; by default the suite is silent.
func WithLogger(log hclog.Logger) SuiteOption {
	return func(s *Suite) { s.log = log }
}

func NewSuite(opts ...SuiteOption) *Suite {
	s := &Suite{
		warmup:     50,
		iterations: 300,
		batch:      1,
		log:        hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run times one benchmark and records its result on the suite. It is a free
// function because methods cannot introduce type parameters.
func Run[C any](s *Suite, b Benchmark[C]) Result {
	s.log.Debug("running benchmark", "name", b.Name, "elements", b.Elements)

	for round := 0; round < s.warmup; round++ {
		runRound(s, b, round)
	}

	samples := make([]float64, 0, s.iterations)
	for round := 0; round < s.iterations; round++ {
		samples = append(samples, runRound(s, b, round))
	}

	avg, dev, used := summarize(samples)
	result := Result{
		Name:     b.Name,
		Elements: b.Elements,
		AvgNs:    avg,
		StdDevNs: dev,
		Samples:  used,
	}
	s.results = append(s.results, result)

	s.log.Info("benchmark done",
		"name", b.Name,
		"elements", b.Elements,
		"avg_ns", result.AvgNs,
		"stddev_ns", result.StdDevNs,
		"samples", result.Samples,
	)
	return result
}

// runRound executes one setup/batch/teardown cycle and returns the average
// per-operation time in nanoseconds.
func runRound[C any](s *Suite, b Benchmark[C], round int) float64 {
	ctx := b.Setup(round)

	start := time.Now()
	for i := 0; i < s.batch; i++ {
		b.Op(ctx, i)
	}
	elapsed := time.Since(start)

	if b.Teardown != nil {
		b.Teardown(ctx)
	}
	return float64(elapsed.Nanoseconds()) / float64(s.batch)
}

// Results returns all recorded results in run order.
func (s *Suite) Results() []Result {
	return s.results
}
