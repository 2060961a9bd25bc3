package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Linspace returns N equally spaced values from min to max, both end points are exact
func Linspace(min, max float64, N int) (x []float64) {
	if N < 2 {
		panic(fmt.Errorf("linspace requires at least 2 points, have %d", N))
	}
	x = floats.Span(make([]float64, N), min, max)
	x[N-1] = max
	return
}

// ToVec converts 1-3 coordinates into an r3 vector, missing components are zero
func ToVec(coords []float64) (v r3.Vec) {
	switch {
	case len(coords) > 2:
		v.Z = coords[2]
		fallthrough
	case len(coords) > 1:
		v.Y = coords[1]
		fallthrough
	case len(coords) > 0:
		v.X = coords[0]
	}
	return
}

// FromVec truncates an r3 vector to dim components
func FromVec(v r3.Vec, dim int) (coords []float64) {
	full := [3]float64{v.X, v.Y, v.Z}
	coords = make([]float64, dim)
	copy(coords, full[:dim])
	return
}

// Pad3 returns a copy of coords extended with zeros to 3 components
func Pad3(coords []float64) (p []float64) {
	p = make([]float64, 3)
	copy(p, coords)
	return
}

// Distance is the Euclidean distance between two coordinate sets of possibly different dimension
func Distance(a, b []float64) float64 {
	if len(a) == len(b) {
		return floats.Distance(a, b, 2)
	}
	return floats.Distance(Pad3(a), Pad3(b), 2)
}
