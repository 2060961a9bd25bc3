package fea

import (
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
	"gonum.org/v1/gonum/floats"
)

// IsoBeam2 is the linear two node line element. Only the first coordinate of each node is used,
// beams lying in a plane are first mapped to their axis with a PlaneBeamTransformer.
type IsoBeam2 struct {
	base
	x []float64
}

func NewIsoBeam2(nodes []mesh.Node) (e *IsoBeam2, err error) {
	var b base
	if b, err = newBase("IsoBeam2", 2, nodes); err != nil {
		return
	}
	e = &IsoBeam2{base: b, x: b.xs()}
	return
}

func (e *IsoBeam2) Build(p quadrature.Point) State {
	xi := p.Xi()
	shapes := []float64{(1 - xi) / 2, (1 + xi) / 2}
	return buildLine(shapes, []float64{-0.5, 0.5}, e.x)
}

// IsoBeam3 is the quadratic three node line element, nodes are ordered end a, end b, midpoint
type IsoBeam3 struct {
	base
	x []float64
}

func NewIsoBeam3(nodes []mesh.Node) (e *IsoBeam3, err error) {
	var b base
	if b, err = newBase("IsoBeam3", 3, nodes); err != nil {
		return
	}
	e = &IsoBeam3{base: b, x: b.xs()}
	return
}

func (e *IsoBeam3) Build(p quadrature.Point) State {
	xi := p.Xi()
	shapes := []float64{xi * (xi - 1) / 2, xi * (xi + 1) / 2, 1 - xi*xi}
	return buildLine(shapes, []float64{xi - 0.5, xi + 0.5, -2 * xi}, e.x)
}

// buildLine forms J = sum(dN/dxi * x) and dN/dx = dN/dxi / J
func buildLine(shapes, dxi, x []float64) (s State) {
	s.Shapes = shapes
	s.Jacobian = floats.Dot(dxi, x)
	if s.Jacobian == 0 {
		return
	}
	dx := make([]float64, len(dxi))
	floats.ScaleTo(dx, 1/s.Jacobian, dxi)
	s.Derivatives = [][]float64{dx}
	return
}
