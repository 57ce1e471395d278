package quad

// Midpoint is the midpoint rectangle rule: each sub-interval contributes
// f(midpoint)·stepSize. Plain float64 accumulation, no compensated
// summation.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Integrate(f Integrand, start, _ float64, steps int64, stepSize float64) float64 {
	sum := 0.0
	half := stepSize / 2.0
	for i := int64(0); i < steps; i++ {
		x := start + float64(i)*stepSize + half
		sum += f(x) * stepSize
	}
	return sum
}
