package quad

// Trapezoid is the composite trapezoid rule. Endpoints carry half weight.
type Trapezoid struct{}

func NewTrapezoid() *Trapezoid {
	return &Trapezoid{}
}

func (t *Trapezoid) Integrate(f Integrand, start, end float64, steps int64, stepSize float64) float64 {
	sum := (f(start) + f(end)) / 2.0
	for i := int64(1); i < steps; i++ {
		sum += f(start + float64(i)*stepSize)
	}
	return sum * stepSize
}
