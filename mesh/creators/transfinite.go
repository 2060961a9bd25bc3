package creators

import (
	"fmt"

	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/utils"
)

// Curve maps the parameter t in [0,1] to a 2D or 3D point
type Curve func(t float64) []float64

/*
Transfinite blends four boundary curves into a structured grid (a Coons patch):

	P(xi,eta) = (1-xi)L(eta) + xi R(eta) + (1-eta)B(xi) + eta T(xi)
	          - (1-xi)(1-eta)B(0) - (1-xi)eta T(0) - xi(1-eta)B(1) - xi eta T(1)

Bottom and Top run along xi, Left and Right along eta. The corners of the curves must agree,
B(0)=L(0), B(1)=R(0), T(0)=L(1), T(1)=R(1), for the boundary to be reproduced exactly.
*/
type Transfinite struct {
	Top, Bottom, Left, Right Curve
	NumX, NumY               int
	Epsilon                  float64
}

func NewTransfinite(top, bottom, left, right Curve, numX, numY int) *Transfinite {
	return &Transfinite{
		Top: top, Bottom: bottom, Left: left, Right: right,
		NumX: numX, NumY: numY,
	}
}

func (tf *Transfinite) Create() (m *mesh.Mesh, err error) {
	if err = checkCounts(tf.NumX, tf.NumY); err != nil {
		return
	}
	if tf.Top == nil || tf.Bottom == nil || tf.Left == nil || tf.Right == nil {
		err = ErrCurve
		return
	}
	var (
		xi  = utils.Linspace(0, 1, tf.NumX)
		eta = utils.Linspace(0, 1, tf.NumY)
		rb0 = tf.Bottom(0)
		rb1 = tf.Bottom(1)
		rt0 = tf.Top(0)
		rt1 = tf.Top(1)
		dim = len(rb0)
	)
	if dim < 2 || dim > 3 {
		err = fmt.Errorf("%w: bottom curve has %d", ErrCurveDimension, dim)
		return
	}
	var (
		top    = make([][]float64, tf.NumX)
		bottom = make([][]float64, tf.NumX)
		left   = make([][]float64, tf.NumY)
		right  = make([][]float64, tf.NumY)
	)
	for i, x := range xi {
		top[i], bottom[i] = tf.Top(x), tf.Bottom(x)
	}
	for j, y := range eta {
		left[j], right[j] = tf.Left(y), tf.Right(y)
	}
	for _, set := range [][][]float64{{rb1, rt0, rt1}, top, bottom, left, right} {
		for _, p := range set {
			if len(p) != dim {
				err = fmt.Errorf("%w: have %d and %d", ErrCurveDimension, dim, len(p))
				return
			}
		}
	}
	m = mesh.NewMesh(tf.Epsilon)
	err = buildLattice(m, tf.NumX, tf.NumY, func(i, j int) (p []float64) {
		var (
			x, y = xi[i], eta[j]
		)
		p = make([]float64, dim)
		for d := 0; d < dim; d++ {
			p[d] = (1-x)*left[j][d] + x*right[j][d] + (1-y)*bottom[i][d] + y*top[i][d] -
				(1-x)*(1-y)*rb0[d] - (1-x)*y*rt0[d] - x*(1-y)*rb1[d] - x*y*rt1[d]
		}
		return
	})
	return
}
