package quad

// Integrand is the function under the integral. Implementations must be
// pure: the fork-join driver evaluates them from several goroutines.
type Integrand func(x float64) float64

// FourOverOnePlusXSq integrates to π over [0,1].
func FourOverOnePlusXSq(x float64) float64 {
	return 4.0 / (1.0 + x*x)
}

// OneOverOnePlusX integrates to ln 2 over [0,1].
func OneOverOnePlusX(x float64) float64 {
	return 1.0 / (1.0 + x)
}

// Rule is a fixed-step quadrature rule over [start, end]. stepSize is
// supplied by the caller rather than recomputed from end-start so that
// every worker of a partitioned run uses the exact same value.
// Preconditions (steps >= 1, stepSize > 0, end > start) are the caller's
// responsibility.
type Rule interface {
	Integrate(f Integrand, start, end float64, steps int64, stepSize float64) float64
}

// Request is one worker's share of a partitioned integration.
type Request struct {
	Start    float64
	End      float64
	Steps    int64
	StepSize float64
}

// Partial is a single worker's contribution, produced once and owned by
// the reducer after delivery.
type Partial struct {
	Worker int
	Value  float64
}

// Result is the outcome of one fork-join round.
type Result struct {
	Estimate float64
	Partials []Partial
	Plan     Plan
}
