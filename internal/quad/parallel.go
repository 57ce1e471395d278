package quad

import (
	"context"
	"sync"
)

// Estimator runs fork-join integrations of a single integrand over a
// fixed interval.
type Estimator struct {
	rule  Rule
	f     Integrand
	start float64
	end   float64
}

func NewEstimator(rule Rule, f Integrand, start, end float64) *Estimator {
	return &Estimator{rule: rule, f: f, start: start, end: end}
}

// Run partitions totalSteps across workers, integrates every sub-range
// concurrently, and reduces the partial sums in worker-index order so
// that identical inputs produce bit-identical estimates.
//
// The round is strictly fork-join: once workers are launched they run to
// completion, and ctx is only consulted before the fork and after the
// join. A worker never fails; any panic in the integrand is fatal to the
// whole run.
func (e *Estimator) Run(ctx context.Context, totalSteps int64, workers int) (*Result, error) {
	plan, err := Partition(e.start, e.end, totalSteps, workers)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts := make(chan Partial, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := plan.Request(idx)
			v := e.rule.Integrate(e.f, req.Start, req.End, req.Steps, req.StepSize)
			parts <- Partial{Worker: idx, Value: v}
		}(w)
	}
	wg.Wait()
	close(parts)

	// Re-slot by worker index; channel delivery order is arbitrary.
	slots := make([]Partial, workers)
	for p := range parts {
		slots[p.Worker] = p
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sum := 0.0
	for _, p := range slots {
		sum += p.Value
	}

	return &Result{Estimate: sum, Partials: slots, Plan: plan}, nil
}

// EstimatePi is the convenience path: midpoint rule on 4/(1+x²) over
// [0,1].
func EstimatePi(ctx context.Context, totalSteps int64, workers int) (float64, error) {
	res, err := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1).Run(ctx, totalSteps, workers)
	if err != nil {
		return 0, err
	}
	return res.Estimate, nil
}
