package sweep

import (
	"context"
	"time"

	"github.com/san-kum/piquad/internal/quad"
)

// Case is one (step count, worker count) combination.
type Case struct {
	Steps   int64
	Workers int
}

// Record is the timed outcome of one case.
type Record struct {
	Steps    int64
	Workers  int
	Elapsed  time.Duration
	Estimate float64
}

// Observer is invoked after each completed case with the number of
// finished cases, the total, and the fresh record.
type Observer func(done, total int, rec Record)

// Cases expands a step-count list and a worker range into the full
// matrix, step counts outermost. The matrix is always supplied by the
// caller; nothing here is baked in.
func Cases(steps []int64, minWorkers, maxWorkers int) []Case {
	cases := make([]Case, 0, len(steps)*(maxWorkers-minWorkers+1))
	for _, n := range steps {
		for w := minWorkers; w <= maxWorkers; w++ {
			cases = append(cases, Case{Steps: n, Workers: w})
		}
	}
	return cases
}

// Runner executes sweep cases sequentially. Each case already saturates
// the CPU with its own worker pool, so cases are never run concurrently
// with each other; that would also corrupt the per-case timings.
type Runner struct {
	est *quad.Estimator
	obs Observer
}

func New(rule quad.Rule, f quad.Integrand) *Runner {
	return &Runner{est: quad.NewEstimator(rule, f, 0, 1)}
}

func (r *Runner) SetObserver(obs Observer) {
	r.obs = obs
}

// Run executes every case in order, timing the wall clock per case.
// The records collected so far are returned alongside any error.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Record, error) {
	records := make([]Record, 0, len(cases))

	for i, c := range cases {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}

		start := time.Now()
		res, err := r.est.Run(ctx, c.Steps, c.Workers)
		if err != nil {
			return records, err
		}

		rec := Record{
			Steps:    c.Steps,
			Workers:  c.Workers,
			Elapsed:  time.Since(start),
			Estimate: res.Estimate,
		}
		records = append(records, rec)

		if r.obs != nil {
			r.obs(i+1, len(cases), rec)
		}
	}

	return records, nil
}
