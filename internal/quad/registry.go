package quad

import (
	"fmt"
	"math"
	"sort"
)

var rules = map[string]func() Rule{
	"midpoint":  func() Rule { return NewMidpoint() },
	"trapezoid": func() Rule { return NewTrapezoid() },
}

type namedIntegrand struct {
	fn    Integrand
	exact float64
}

var integrands = map[string]namedIntegrand{
	"pi":  {fn: FourOverOnePlusXSq, exact: math.Pi},
	"ln2": {fn: OneOverOnePlusX, exact: math.Ln2},
}

// GetRule returns a fresh rule instance by name.
func GetRule(name string) (Rule, error) {
	fn, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return fn(), nil
}

// ListRules returns the registered rule names in sorted order.
func ListRules() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetIntegrand returns a registered integrand by name.
func GetIntegrand(name string) (Integrand, error) {
	ni, ok := integrands[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntegrand, name)
	}
	return ni.fn, nil
}

// ExactValue returns the known value of a named integrand's integral
// over [0,1], for error reporting.
func ExactValue(name string) (float64, bool) {
	ni, ok := integrands[name]
	if !ok {
		return 0, false
	}
	return ni.exact, true
}

// ListIntegrands returns the registered integrand names in sorted order.
func ListIntegrands() []string {
	names := make([]string, 0, len(integrands))
	for name := range integrands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
