package fea

import (
	"github.com/notargets/isomesh/quadrature"
	"gonum.org/v1/gonum/floats"
)

// Integrate accumulates weight * jacobian * f(state) over the points of a rule. All calls to f must
// return slices of the same length.
func Integrate(e Element, rule quadrature.Rule, f func(s State) []float64) (sum []float64) {
	for _, p := range rule.Points() {
		s := e.Build(p)
		v := f(s)
		if sum == nil {
			sum = make([]float64, len(v))
		}
		floats.AddScaled(sum, p.Weight()*s.Jacobian, v)
	}
	return
}
