package quadrature

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownShape = errors.New("unknown reference shape")

// Rule is a fixed list of points and weights over a reference domain. The weights sum to the
// measure of the domain.
type Rule interface {
	Order() int
	Points() []Point
}

type Shape uint8

const (
	Interval Shape = iota
	Triangle
	Tetrahedron
	Quadrilateral
	Hexahedron
)

var ShapeNames = map[string]Shape{
	"interval":      Interval,
	"line":          Interval,
	"triangle":      Triangle,
	"tri":           Triangle,
	"tetrahedron":   Tetrahedron,
	"tet":           Tetrahedron,
	"quadrilateral": Quadrilateral,
	"quad":          Quadrilateral,
	"hexahedron":    Hexahedron,
	"hex":           Hexahedron,
}

func (s Shape) String() string {
	switch s {
	case Interval:
		return "interval"
	case Triangle:
		return "triangle"
	case Tetrahedron:
		return "tetrahedron"
	case Quadrilateral:
		return "quadrilateral"
	case Hexahedron:
		return "hexahedron"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Dim is the number of parametric coordinates of the shape
func (s Shape) Dim() int {
	switch s {
	case Interval:
		return 1
	case Triangle, Quadrilateral:
		return 2
	case Tetrahedron, Hexahedron:
		return 3
	}
	return 0
}

func ParseShape(name string) (s Shape, err error) {
	var ok bool
	if s, ok = ShapeNames[strings.ToLower(strings.TrimSpace(name))]; !ok {
		names := make([]string, 0, len(ShapeNames))
		for k := range ShapeNames {
			names = append(names, k)
		}
		sort.Strings(names)
		err = fmt.Errorf("%w %q, use one of %s", ErrUnknownShape, name, strings.Join(names, ", "))
	}
	return
}

// Measure is the length, area or volume of the reference domain
func Measure(s Shape) float64 {
	switch s {
	case Interval:
		return 2
	case Triangle:
		return 0.5
	case Tetrahedron:
		return 1. / 6.
	case Quadrilateral:
		return 4
	case Hexahedron:
		return 8
	}
	return 0
}

// New returns the rule of the given order for a reference shape
func New(shape Shape, order int) (r Rule, err error) {
	switch shape {
	case Interval:
		r = NewInterval(order)
	case Triangle:
		r = NewTriangle(order)
	case Tetrahedron:
		r = NewTetrahedron(order)
	case Quadrilateral:
		r = NewQuadrilateral(order)
	case Hexahedron:
		r = NewHexahedron(order)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownShape, shape)
	}
	return
}

// Integrate sums f over the points of r, weighted
func Integrate(r Rule, f func(Point) float64) (sum float64) {
	for _, p := range r.Points() {
		sum += p.Weight() * f(p)
	}
	return
}

type table struct {
	order  int
	points []Point
}

func (t *table) Order() int { return t.order }

func (t *table) Points() (pts []Point) {
	pts = make([]Point, len(t.points))
	copy(pts, t.points)
	return
}

// clamp maps a requested order onto the tabulated range 1..richest
func clamp(order, richest int) int {
	switch {
	case order < 1:
		return 1
	case order > richest:
		return richest
	}
	return order
}
