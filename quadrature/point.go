package quadrature

import "fmt"

// Point is a parametric sample location with its weight. Points are values and never change after construction.
type Point struct {
	coords []float64
	weight float64
}

func NewPoint(weight float64, coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{coords: c, weight: weight}
}

func (p Point) Weight() float64 { return p.weight }

func (p Point) Dim() int { return len(p.coords) }

// Coords returns a copy of the parametric coordinates
func (p Point) Coords() (c []float64) {
	c = make([]float64, len(p.coords))
	copy(c, p.coords)
	return
}

func (p Point) coord(i int) float64 {
	if i < len(p.coords) {
		return p.coords[i]
	}
	return 0
}

func (p Point) Xi() float64  { return p.coord(0) }
func (p Point) Eta() float64 { return p.coord(1) }
func (p Point) Mu() float64  { return p.coord(2) }

func (p Point) String() string {
	return fmt.Sprintf("%v w=%8.6f", p.coords, p.weight)
}
