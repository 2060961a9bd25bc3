package quadrature

import "math"

const (
	richestInterval    = 5
	richestTriangle    = 4
	richestTetrahedron = 3
)

// gaussLegendre returns the n point Gauss-Legendre abscissae and weights on [-1,1], n in 1..5
func gaussLegendre(n int) (x, w []float64) {
	switch n {
	case 1:
		x, w = []float64{0}, []float64{2}
	case 2:
		a := 1 / math.Sqrt(3)
		x, w = []float64{-a, a}, []float64{1, 1}
	case 3:
		a := math.Sqrt(3. / 5.)
		x, w = []float64{-a, 0, a}, []float64{5. / 9., 8. / 9., 5. / 9.}
	case 4:
		var (
			a  = math.Sqrt(3./7. - 2./7.*math.Sqrt(6./5.))
			b  = math.Sqrt(3./7. + 2./7.*math.Sqrt(6./5.))
			wa = (18 + math.Sqrt(30)) / 36
			wb = (18 - math.Sqrt(30)) / 36
		)
		x, w = []float64{-b, -a, a, b}, []float64{wb, wa, wa, wb}
	case 5:
		var (
			a  = math.Sqrt(5-2*math.Sqrt(10./7.)) / 3
			b  = math.Sqrt(5+2*math.Sqrt(10./7.)) / 3
			wa = (322 + 13*math.Sqrt(70)) / 900
			wb = (322 - 13*math.Sqrt(70)) / 900
		)
		x, w = []float64{-b, -a, 0, a, b}, []float64{wb, wa, 128. / 225., wa, wb}
	default:
		panic("no Gauss-Legendre table")
	}
	return
}

// NewInterval is the Gauss-Legendre rule on [-1,1] with as many points as its order, exact for degree 2*order-1
func NewInterval(order int) Rule {
	order = clamp(order, richestInterval)
	x, w := gaussLegendre(order)
	t := &table{order: order, points: make([]Point, len(x))}
	for i := range x {
		t.points[i] = NewPoint(w[i], x[i])
	}
	return t
}

// NewQuadrilateral is the tensor product of two interval rules over [-1,1]^2
func NewQuadrilateral(order int) Rule {
	order = clamp(order, richestInterval)
	x, w := gaussLegendre(order)
	t := &table{order: order}
	for i := range x {
		for j := range x {
			t.points = append(t.points, NewPoint(w[i]*w[j], x[i], x[j]))
		}
	}
	return t
}

// NewHexahedron is the tensor product of three interval rules over [-1,1]^3
func NewHexahedron(order int) Rule {
	order = clamp(order, richestInterval)
	x, w := gaussLegendre(order)
	t := &table{order: order}
	for i := range x {
		for j := range x {
			for k := range x {
				t.points = append(t.points, NewPoint(w[i]*w[j]*w[k], x[i], x[j], x[k]))
			}
		}
	}
	return t
}

/*
NewTriangle covers the unit triangle (0,0),(1,0),(0,1).

	order <= 1  centroid, degree 1
	order 2     edge midpoints, degree 2
	order 3     interior points (1/6,1/6),(2/3,1/6),(1/6,2/3), degree 2
	order >= 4  Radon 7 point, degree 5
*/
func NewTriangle(order int) Rule {
	order = clamp(order, richestTriangle)
	t := &table{order: order}
	switch order {
	case 1:
		t.points = []Point{NewPoint(0.5, 1./3., 1./3.)}
	case 2:
		t.points = []Point{
			NewPoint(1./6., 0.5, 0.5),
			NewPoint(1./6., 0, 0.5),
			NewPoint(1./6., 0.5, 0),
		}
	case 3:
		t.points = []Point{
			NewPoint(1./6., 1./6., 1./6.),
			NewPoint(1./6., 2./3., 1./6.),
			NewPoint(1./6., 1./6., 2./3.),
		}
	default:
		var (
			s15 = math.Sqrt(15)
			a   = (6 - s15) / 21
			b   = (6 + s15) / 21
			wa  = (155 - s15) / 2400
			wb  = (155 + s15) / 2400
		)
		t.points = []Point{
			NewPoint(9./80., 1./3., 1./3.),
			NewPoint(wa, a, a),
			NewPoint(wa, 1-2*a, a),
			NewPoint(wa, a, 1-2*a),
			NewPoint(wb, b, b),
			NewPoint(wb, 1-2*b, b),
			NewPoint(wb, b, 1-2*b),
		}
	}
	return t
}

/*
NewTetrahedron covers the unit tetrahedron (0,0,0),(1,0,0),(0,1,0),(0,0,1).

	order <= 1  centroid, degree 1
	order 2     four point, degree 2
	order >= 3  Keast five point with a negative centroid weight, degree 3
*/
func NewTetrahedron(order int) Rule {
	order = clamp(order, richestTetrahedron)
	t := &table{order: order}
	switch order {
	case 1:
		t.points = []Point{NewPoint(1./6., 0.25, 0.25, 0.25)}
	case 2:
		var (
			a = (5 - math.Sqrt(5)) / 20
			b = (5 + 3*math.Sqrt(5)) / 20
			w = 1. / 24.
		)
		t.points = []Point{
			NewPoint(w, a, a, a),
			NewPoint(w, b, a, a),
			NewPoint(w, a, b, a),
			NewPoint(w, a, a, b),
		}
	default:
		w := 3. / 40.
		t.points = []Point{
			NewPoint(-2./15., 0.25, 0.25, 0.25),
			NewPoint(w, 0.5, 1./6., 1./6.),
			NewPoint(w, 1./6., 0.5, 1./6.),
			NewPoint(w, 1./6., 1./6., 0.5),
			NewPoint(w, 1./6., 1./6., 1./6.),
		}
	}
	return t
}
