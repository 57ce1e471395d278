// Package quad provides fixed-step quadrature primitives for estimating
// definite integrals, and a fork-join driver for the classic parallel
// pi estimate over f(x) = 4/(1+x²) on [0,1].
//
// The package defines:
//
//   - [Integrand]: the function under the integral
//   - [Rule]: a fixed-step quadrature rule (midpoint, trapezoid)
//   - [Plan]: a static partition of a step range across workers
//   - [Estimator]: runs one fork-join round and reduces the partial sums
//
// # Example
//
//	est := quad.NewEstimator(quad.NewMidpoint(), quad.FourOverOnePlusXSq, 0, 1)
//	res, _ := est.Run(ctx, 100_000_000, 8)
//	fmt.Println(res.Estimate)
//
// # Thread Safety
//
// Rule implementations are stateless and safe for concurrent use. An
// Estimator may be shared between goroutines; every Run call is an
// independent fork-join round with no state carried across calls.
package quad
