package quad

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestEstimateSingleWorkerMatchesDirect(t *testing.T) {
	n := int64(10000)
	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)

	res, err := est.Run(context.Background(), n, 1)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	direct := NewMidpoint().Integrate(FourOverOnePlusXSq, 0, 1, n, 1.0/float64(n))
	if res.Estimate != direct {
		t.Errorf("single worker diverged from direct integration: %.17f vs %.17f", res.Estimate, direct)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)

	a, err := est.Run(context.Background(), 100000, 7)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := est.Run(context.Background(), 100000, 7)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if a.Estimate != b.Estimate {
		t.Errorf("runs not bit-identical: %.17f vs %.17f", a.Estimate, b.Estimate)
	}
}

func TestPartitionTruncation(t *testing.T) {
	plan, err := Partition(0, 1, 10, 3)
	if err != nil {
		t.Fatalf("partition failed: %v", err)
	}

	if plan.StepsPerWorker != 3 {
		t.Errorf("expected 3 steps per worker, got %d", plan.StepsPerWorker)
	}
	if plan.Total != 9 {
		t.Errorf("expected 9 total steps, got %d", plan.Total)
	}
	if plan.Dropped() != 1 {
		t.Errorf("expected 1 dropped step, got %d", plan.Dropped())
	}

	// Sub-ranges are contiguous and share the plan's step size.
	for w := 0; w < plan.Workers; w++ {
		req := plan.Request(w)
		if req.Steps != plan.StepsPerWorker {
			t.Errorf("worker %d: expected %d steps, got %d", w, plan.StepsPerWorker, req.Steps)
		}
		if req.StepSize != plan.StepSize {
			t.Errorf("worker %d: step size recomputed", w)
		}
		if w > 0 {
			prev := plan.Request(w - 1)
			if req.Start != prev.End {
				t.Errorf("worker %d: range not contiguous with worker %d", w, w-1)
			}
		}
	}
}

func TestEstimateTruncationPolicy(t *testing.T) {
	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)

	res, err := est.Run(context.Background(), 10, 3)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// The dropped remainder is not redistributed: the estimate equals
	// the sum over exactly (10/3)*3 = 9 steps.
	want := 0.0
	for w := 0; w < 3; w++ {
		req := res.Plan.Request(w)
		want += NewMidpoint().Integrate(FourOverOnePlusXSq, req.Start, req.End, req.Steps, req.StepSize)
	}
	if res.Estimate != want {
		t.Errorf("expected truncated estimate %.17f, got %.17f", want, res.Estimate)
	}

	full := NewMidpoint().Integrate(FourOverOnePlusXSq, 0, 1, 10, 0.1)
	if res.Estimate == full {
		t.Error("truncated run unexpectedly matched the full 10-step integral")
	}
}

func TestEstimatePartialsOwnership(t *testing.T) {
	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)

	res, err := est.Run(context.Background(), 1000, 4)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(res.Partials) != 4 {
		t.Fatalf("expected 4 partials, got %d", len(res.Partials))
	}
	sum := 0.0
	for i, p := range res.Partials {
		if p.Worker != i {
			t.Errorf("partial %d carries worker index %d", i, p.Worker)
		}
		sum += p.Value
	}
	if sum != res.Estimate {
		t.Errorf("index-order reduction mismatch: %.17f vs %.17f", sum, res.Estimate)
	}
}

func TestEstimateValidation(t *testing.T) {
	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)

	if _, err := est.Run(context.Background(), 100, 0); !errors.Is(err, ErrBadWorkerCount) {
		t.Errorf("expected ErrBadWorkerCount, got %v", err)
	}
	if _, err := est.Run(context.Background(), 100, -3); !errors.Is(err, ErrBadWorkerCount) {
		t.Errorf("expected ErrBadWorkerCount, got %v", err)
	}
	if _, err := est.Run(context.Background(), 2, 3); !errors.Is(err, ErrBadStepCount) {
		t.Errorf("expected ErrBadStepCount, got %v", err)
	}
	if _, err := est.Run(context.Background(), 0, 1); !errors.Is(err, ErrBadStepCount) {
		t.Errorf("expected ErrBadStepCount, got %v", err)
	}
}

func TestEstimateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est := NewEstimator(NewMidpoint(), FourOverOnePlusXSq, 0, 1)
	if _, err := est.Run(ctx, 1000, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEstimatePiAccuracy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1e8-step run in short mode")
	}

	pi, err := EstimatePi(context.Background(), 100000000, 4)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	if math.Abs(pi-math.Pi) > 1e-6 {
		t.Errorf("expected estimate within 1e-6 of pi, got %.12f", pi)
	}
}
