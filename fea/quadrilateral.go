package fea

import (
	"errors"
	"math"

	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IsoQuad4 is the bilinear four node quadrilateral, nodes counter-clockwise
type IsoQuad4 struct {
	base
	x, y []float64
}

func NewIsoQuad4(nodes []mesh.Node) (e *IsoQuad4, err error) {
	var b base
	if b, err = newBase("IsoQuad4", 4, nodes); err != nil {
		return
	}
	e = &IsoQuad4{base: b, x: b.xs(), y: b.ys()}
	return
}

func (e *IsoQuad4) Build(p quadrature.Point) State {
	return buildQuad4(p, e.x, e.y)
}

func buildQuad4(p quadrature.Point, x, y []float64) State {
	xi, eta := p.Xi(), p.Eta()
	var (
		shapes = []float64{
			(1 - xi) * (1 - eta) / 4,
			(1 + xi) * (1 - eta) / 4,
			(1 + xi) * (1 + eta) / 4,
			(1 - xi) * (1 + eta) / 4,
		}
		dxi = []float64{
			-(1 - eta) / 4,
			(1 - eta) / 4,
			(1 + eta) / 4,
			-(1 + eta) / 4,
		}
		deta = []float64{
			-(1 - xi) / 4,
			-(1 + xi) / 4,
			(1 + xi) / 4,
			(1 - xi) / 4,
		}
	)
	return buildPlanar(shapes, dxi, deta, x, y)
}

/*
IsoQuad8 is the eight node serendipity quadrilateral: corners counter-clockwise followed by the
mid-edge nodes of edges 0-1, 1-2, 2-3 and 3-0. Shape functions are the rows of a fixed weight
matrix applied to the monomials 1, xi, eta, xi*eta, xi^2, eta^2, xi^2*eta, xi*eta^2.
*/
type IsoQuad8 struct {
	base
	x, y []float64
}

var quad8Weights = mat.NewDense(8, 8, []float64{
	-0.25, 0, 0, 0.25, 0.25, 0.25, -0.25, -0.25,
	-0.25, 0, 0, -0.25, 0.25, 0.25, -0.25, 0.25,
	-0.25, 0, 0, 0.25, 0.25, 0.25, 0.25, 0.25,
	-0.25, 0, 0, -0.25, 0.25, 0.25, 0.25, -0.25,
	0.5, 0, -0.5, 0, -0.5, 0, 0.5, 0,
	0.5, 0.5, 0, 0, 0, -0.5, 0, -0.5,
	0.5, 0, 0.5, 0, -0.5, 0, -0.5, 0,
	0.5, -0.5, 0, 0, 0, -0.5, 0, 0.5,
})

func NewIsoQuad8(nodes []mesh.Node) (e *IsoQuad8, err error) {
	var b base
	if b, err = newBase("IsoQuad8", 8, nodes); err != nil {
		return
	}
	e = &IsoQuad8{base: b, x: b.xs(), y: b.ys()}
	return
}

func (e *IsoQuad8) Build(p quadrature.Point) State {
	xi, eta := p.Xi(), p.Eta()
	var (
		basis     = []float64{1, xi, eta, xi * eta, xi * xi, eta * eta, xi * xi * eta, xi * eta * eta}
		basisDxi  = []float64{0, 1, 0, eta, 2 * xi, 0, 2 * xi * eta, eta * eta}
		basisDeta = []float64{0, 0, 1, xi, 0, 2 * eta, xi * xi, 2 * xi * eta}
	)
	return buildPlanar(weigh(basis), weigh(basisDxi), weigh(basisDeta), e.x, e.y)
}

func weigh(monomials []float64) []float64 {
	v := mat.NewVecDense(8, nil)
	v.MulVec(quad8Weights, mat.NewVecDense(8, monomials))
	return v.RawVector().Data
}

/*
buildPlanar forms the Jacobian matrix

	| sum(dN/dxi x)   sum(dN/dxi y)  |
	| sum(dN/deta x)  sum(dN/deta y) |

and maps the parametric derivatives to physical ones with its inverse.
*/
func buildPlanar(shapes, dxi, deta, x, y []float64) (s State) {
	jac := mat.NewDense(2, 2, []float64{
		floats.Dot(dxi, x), floats.Dot(dxi, y),
		floats.Dot(deta, x), floats.Dot(deta, y),
	})
	s.Shapes = shapes
	s.Jacobian = mat.Det(jac)
	var inv mat.Dense
	if err := inv.Inverse(jac); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return
		}
	}
	var (
		n  = len(shapes)
		dx = make([]float64, n)
		dy = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		dx[i] = inv.At(0, 0)*dxi[i] + inv.At(0, 1)*deta[i]
		dy[i] = inv.At(1, 0)*dxi[i] + inv.At(1, 1)*deta[i]
	}
	s.Derivatives = [][]float64{dx, dy}
	return
}
