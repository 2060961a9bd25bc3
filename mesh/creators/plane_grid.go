package creators

import (
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/utils"
)

// PlaneGrid is a regular NumX x NumY lattice of quads covering an axis aligned rectangle
type PlaneGrid struct {
	X, Y          float64 // Origin of the rectangle
	Width, Height float64
	NumX, NumY    int // Number of points per direction
	Epsilon       float64
}

func NewPlaneGrid(x, y, width, height float64, numX, numY int) *PlaneGrid {
	return &PlaneGrid{
		X: x, Y: y,
		Width: width, Height: height,
		NumX: numX, NumY: numY,
	}
}

func (pg *PlaneGrid) Create() (m *mesh.Mesh, err error) {
	if err = checkCounts(pg.NumX, pg.NumY); err != nil {
		return
	}
	var (
		x = utils.Linspace(pg.X, pg.X+pg.Width, pg.NumX)
		y = utils.Linspace(pg.Y, pg.Y+pg.Height, pg.NumY)
	)
	m = mesh.NewMesh(pg.Epsilon)
	err = buildLattice(m, pg.NumX, pg.NumY, func(i, j int) []float64 {
		return []float64{x[i], y[j]}
	})
	return
}
