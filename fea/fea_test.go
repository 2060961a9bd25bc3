package fea

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func nodes(coords ...[]float64) (n []mesh.Node) {
	for i, c := range coords {
		n = append(n, mesh.NewNode(c, mesh.INTERNAL, i))
	}
	return
}

func rectangle8(w, h float64) []mesh.Node {
	return nodes(
		[]float64{0, 0}, []float64{w, 0}, []float64{w, h}, []float64{0, h},
		[]float64{w / 2, 0}, []float64{w, h / 2}, []float64{w / 2, h}, []float64{0, h / 2},
	)
}

func testElements(t *testing.T) map[string]Element {
	b2, err := NewIsoBeam2(nodes([]float64{1}, []float64{3}))
	require.NoError(t, err)
	b3, err := NewIsoBeam3(nodes([]float64{1}, []float64{3}, []float64{2}))
	require.NoError(t, err)
	q4, err := NewIsoQuad4(nodes([]float64{0, 0}, []float64{2, 0.2}, []float64{2.2, 1.5}, []float64{-0.1, 1}))
	require.NoError(t, err)
	q8, err := NewIsoQuad8(rectangle8(1, 0.5))
	require.NoError(t, err)
	s4, err := NewSurfaceQuad4(nodes([]float64{0, 0, 0}, []float64{1, 0, 1}, []float64{1, 1, 1}, []float64{0, 1, 0}))
	require.NoError(t, err)
	return map[string]Element{"IsoBeam2": b2, "IsoBeam3": b3, "IsoQuad4": q4, "IsoQuad8": q8, "SurfaceQuad4": s4}
}

func ruleFor(e Element) quadrature.Rule {
	if e.Arity() < 4 {
		return quadrature.NewInterval(3)
	}
	return quadrature.NewQuadrilateral(3)
}

func TestPartitionOfUnity(t *testing.T) {
	for name, e := range testElements(t) {
		for _, p := range ruleFor(e).Points() {
			s := e.Build(p)
			require.Len(t, s.Shapes, e.Arity(), name)
			assert.InDelta(t, 1., floats.Sum(s.Shapes), 1.e-14, name)
			require.NotNil(t, s.Derivatives, name)
			for _, d := range s.Derivatives {
				assert.InDelta(t, 0., floats.Sum(d), 1.e-13, name)
			}
			assert.False(t, s.Degenerate(), name)
		}
	}
}

func TestPatchRectangle(t *testing.T) {
	q4, err := NewIsoQuad4(rectangle8(1, 0.5)[:4])
	require.NoError(t, err)
	q8, err := NewIsoQuad8(rectangle8(1, 0.5))
	require.NoError(t, err)
	for _, e := range []Element{q4, q8} {
		load := Integrate(e, quadrature.NewQuadrilateral(3), func(s State) []float64 { return s.Shapes })
		assert.Len(t, load, e.Arity())
		assert.InDelta(t, 0.5, floats.Sum(load), 1.e-14)
		s := e.Build(quadrature.NewPoint(1, 0.3, -0.7))
		assert.InDelta(t, 0.125, s.Jacobian, 1.e-14)
	}
	// Bilinear corner loads are equal shares
	load := Integrate(q4, quadrature.NewQuadrilateral(2), func(s State) []float64 { return s.Shapes })
	for _, l := range load {
		assert.InDelta(t, 0.125, l, 1.e-14)
	}
}

func TestPatchBeam(t *testing.T) {
	b2, err := NewIsoBeam2(nodes([]float64{0}, []float64{2}))
	require.NoError(t, err)
	s := b2.Build(quadrature.NewPoint(2, 0))
	assert.Equal(t, 1., s.Jacobian)
	assert.Equal(t, []float64{-0.5, 0.5}, s.Derivatives[0])
	load := Integrate(b2, quadrature.NewInterval(1), func(s State) []float64 { return s.Shapes })
	assert.InDeltaSlice(t, []float64{1, 1}, load, 1.e-15)

	b3, err := NewIsoBeam3(nodes([]float64{0}, []float64{2}, []float64{1}))
	require.NoError(t, err)
	load = Integrate(b3, quadrature.NewInterval(3), func(s State) []float64 { return s.Shapes })
	// Simpson weights 1/6, 1/6, 2/3 of the length
	assert.InDeltaSlice(t, []float64{1. / 3., 1. / 3., 4. / 3.}, load, 1.e-14)
}

func TestLinearFieldDerivatives(t *testing.T) {
	// Physical derivatives of u = 2x - 3y + 1 are reproduced exactly
	u := func(x, y float64) float64 { return 2*x - 3*y + 1 }
	for name, e := range testElements(t) {
		if e.Arity() < 4 || name == "SurfaceQuad4" {
			continue
		}
		var values []float64
		for _, n := range e.Nodes() {
			values = append(values, u(n.X(), n.Y()))
		}
		for _, p := range ruleFor(e).Points() {
			s := e.Build(p)
			assert.InDelta(t, 2., floats.Dot(s.Derivatives[0], values), 1.e-12, name)
			assert.InDelta(t, -3., floats.Dot(s.Derivatives[1], values), 1.e-12, name)
		}
	}
}

func TestQuad8Interpolates(t *testing.T) {
	var (
		corners = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}, {0, -1}, {1, 0}, {0, 1}, {-1, 0}}
		e, err  = NewIsoQuad8(rectangle8(2, 2))
	)
	require.NoError(t, err)
	for j, c := range corners {
		s := e.Build(quadrature.NewPoint(1, c[0], c[1]))
		for i, n := range s.Shapes {
			expected := 0.
			if i == j {
				expected = 1
			}
			assert.InDelta(t, expected, n, 1.e-15, "shape %d at node %d", i, j)
		}
	}
}

func TestSurfaceQuad4Area(t *testing.T) {
	// Unit square tilted 45 degrees about the y axis has area sqrt(2)
	e := testElements(t)["SurfaceQuad4"]
	area := Integrate(e, quadrature.NewQuadrilateral(2), func(State) []float64 { return []float64{1} })
	assert.InDelta(t, math.Sqrt2, area[0], 1.e-14)
	assert.Equal(t, 3, e.Nodes()[1].Dim())
	_, err := NewSurfaceQuad4(nodes([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{2, 0, 0}, []float64{0, 1, 0}))
	assert.ErrorIs(t, err, ErrDegenerateFrame)
}

func TestDegenerateJacobian(t *testing.T) {
	// Clockwise ordering inverts the element
	e, err := NewIsoQuad4(nodes([]float64{0, 0}, []float64{0, 1}, []float64{1, 1}, []float64{1, 0}))
	require.NoError(t, err)
	s := e.Build(quadrature.NewPoint(4, 0, 0))
	assert.InDelta(t, -0.25, s.Jacobian, 1.e-14)
	assert.True(t, s.Degenerate())
	assert.NotNil(t, s.Derivatives)

	// Collapsed to a point
	e, err = NewIsoQuad4(nodes([]float64{1, 1}, []float64{1, 1}, []float64{1, 1}, []float64{1, 1}))
	require.NoError(t, err)
	s = e.Build(quadrature.NewPoint(4, 0, 0))
	assert.Equal(t, 0., s.Jacobian)
	assert.True(t, s.Degenerate())
	assert.Nil(t, s.Derivatives)
	assert.InDelta(t, 1., floats.Sum(s.Shapes), 1.e-15)

	b, err := NewIsoBeam2(nodes([]float64{2}, []float64{2}))
	require.NoError(t, err)
	assert.Nil(t, b.Build(quadrature.NewPoint(2, 0)).Derivatives)
}

func TestArityErrors(t *testing.T) {
	three := nodes([]float64{0, 0}, []float64{1, 0}, []float64{1, 1})
	var ae *ArityError
	for _, build := range []func([]mesh.Node) error{
		func(n []mesh.Node) error { _, err := NewIsoBeam2(n); return err },
		func(n []mesh.Node) error { _, err := NewIsoQuad4(n); return err },
		func(n []mesh.Node) error { _, err := NewIsoQuad8(n); return err },
		func(n []mesh.Node) error { _, err := NewSurfaceQuad4(n); return err },
	} {
		err := build(three)
		require.True(t, errors.As(err, &ae), err)
		assert.Equal(t, 3, ae.Have)
	}
	_, err := NewIsoBeam3(three[:2])
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "IsoBeam3 requires 3 nodes, have 2", ae.Error())
	_, err = NewShellTransformer(three[:2])
	require.True(t, errors.As(err, &ae))
	assert.True(t, ae.AtLeast)
	_, err = NewPlaneBeamTransformer(three[:1])
	require.True(t, errors.As(err, &ae))
}

func TestElementOwnsNodes(t *testing.T) {
	n := nodes([]float64{0}, []float64{1})
	e, err := NewIsoBeam2(n)
	require.NoError(t, err)
	n[1].Coords[0] = 5
	assert.Equal(t, 1., e.Nodes()[1].X())
	assert.Equal(t, 0.5, e.Build(quadrature.NewPoint(2, 0)).Jacobian)
}
