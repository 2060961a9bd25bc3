package creators

import (
	"math"
)

func lerp(a, b []float64, t float64) []float64 {
	return []float64{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}

/*
QuarterDisk splits the quarter disk of radius r (first quadrant) into three transfinite patches:
a central quad bounded by the two axes and the half radius diagonal, and two patches between the
central quad and the arc, each spanning 45 degrees. The patches share their boundary points and
weld into a single conforming mesh with a Union.
*/
func QuarterDisk(r float64, n int, epsilon float64) (u *Union, err error) {
	var (
		c, s     = math.Cos(math.Pi / 4), math.Sin(math.Pi / 4)
		origin   = []float64{0, 0}
		xHalf    = []float64{r / 2, 0}
		yHalf    = []float64{0, r / 2}
		diagHalf = []float64{c * r / 2, s * r / 2}
		xFull    = []float64{r, 0}
		yFull    = []float64{0, r}
		diagFull = []float64{c * r, s * r}
		arc      = func(from, to float64) Curve {
			return func(t float64) []float64 {
				phi := from + t*(to-from)
				return []float64{r * math.Cos(phi), r * math.Sin(phi)}
			}
		}
		segment = func(a, b []float64) Curve {
			return func(t float64) []float64 { return lerp(a, b, t) }
		}
	)
	patches := []*Transfinite{
		// Central
		NewTransfinite(segment(yHalf, diagHalf), segment(origin, xHalf),
			segment(origin, yHalf), segment(xHalf, diagHalf), n, n),
		// Lower, between the x axis and the diagonal
		NewTransfinite(segment(diagHalf, diagFull), segment(xHalf, xFull),
			segment(xHalf, diagHalf), arc(0, math.Pi/4), n, n),
		// Upper, between the diagonal and the y axis
		NewTransfinite(arc(math.Pi/2, math.Pi/4), segment(yHalf, diagHalf),
			segment(yHalf, yFull), segment(diagHalf, diagFull), n, n),
	}
	u = NewUnion(epsilon)
	for _, p := range patches {
		m, err := p.Create()
		if err != nil {
			return nil, err
		}
		u.Meshes = append(u.Meshes, m)
	}
	return
}

// AnnulusSector is a single transfinite patch between radii rIn and rOut spanning the angles from and to.
// xi runs outward along the radius and eta along the angle, so elements are counter-clockwise for from < to.
func AnnulusSector(rIn, rOut, from, to float64, numX, numY int) *Transfinite {
	var (
		polar  = func(r, phi float64) []float64 { return []float64{r * math.Cos(phi), r * math.Sin(phi)} }
		radius = func(t float64) float64 { return rIn + t*(rOut-rIn) }
		angle  = func(t float64) float64 { return from + t*(to-from) }
	)
	return NewTransfinite(
		func(t float64) []float64 { return polar(radius(t), to) },
		func(t float64) []float64 { return polar(radius(t), from) },
		func(t float64) []float64 { return polar(rIn, angle(t)) },
		func(t float64) []float64 { return polar(rOut, angle(t)) },
		numX, numY,
	)
}
