package creators

import (
	"math"

	"github.com/notargets/isomesh/mesh"
)

// Cylinder wraps the strip 0 <= x <= 1 a quarter turn around the z axis, y becomes the height
func Cylinder(radius float64) func(mesh.Node) []float64 {
	return func(n mesh.Node) []float64 {
		phi := n.X() * math.Pi / 2
		return []float64{radius * math.Cos(phi), radius * math.Sin(phi), n.Y()}
	}
}

// SphericalCap lifts planar nodes onto a sphere of the given radius centered at (0, 0, offset).
// Sign selects the upper (+1) or lower (-1) cap. Nodes outside the sphere are placed at its equator.
func SphericalCap(radius, offset, sign float64) func(mesh.Node) []float64 {
	if sign >= 0 {
		sign = 1
	} else {
		sign = -1
	}
	return func(n mesh.Node) []float64 {
		h := math.Sqrt(math.Max(0, radius*radius-n.X()*n.X()-n.Y()*n.Y()))
		return []float64{n.X(), n.Y(), offset + sign*h}
	}
}
