package quad

import "errors"

// Domain errors for estimate configuration.
var (
	// ErrBadWorkerCount indicates a non-positive worker count.
	ErrBadWorkerCount = errors.New("quad: worker count must be at least 1")

	// ErrBadStepCount indicates a step count too small to give every
	// worker at least one step.
	ErrBadStepCount = errors.New("quad: step count must be at least the worker count")

	// ErrUnknownRule indicates a rule name with no registered constructor.
	ErrUnknownRule = errors.New("quad: unknown rule")

	// ErrUnknownIntegrand indicates an unregistered integrand name.
	ErrUnknownIntegrand = errors.New("quad: unknown integrand")
)
