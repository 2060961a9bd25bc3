package creators

import (
	"errors"
	"fmt"

	"github.com/notargets/isomesh/mesh"
)

var (
	ErrCount          = errors.New("grid needs at least 2 points per direction")
	ErrCurve          = errors.New("transfinite grid needs all four boundary curves")
	ErrCurveDimension = errors.New("boundary curves must return 2 or 3 matching coordinates")
	ErrNoMeshes       = errors.New("union needs at least one mesh")
)

// MeshCreator builds a new mesh
type MeshCreator interface {
	Create() (*mesh.Mesh, error)
}

func latticeType(i, j, numX, numY int) mesh.NodeType {
	if i == 0 || i == numX-1 || j == 0 || j == numY-1 {
		return mesh.BORDER
	}
	return mesh.INTERNAL
}

// buildLattice inserts numX x numY points, i over x outer and j over y inner, and connects
// them with counter-clockwise quads (i,j),(i+1,j),(i+1,j+1),(i,j+1)
func buildLattice(m *mesh.Mesh, numX, numY int, point func(i, j int) []float64) (err error) {
	nodes := make([][]int, numX)
	for i := 0; i < numX; i++ {
		nodes[i] = make([]int, numY)
		for j := 0; j < numY; j++ {
			if nodes[i][j], err = m.AppendPoint(point(i, j), latticeType(i, j, numX, numY), false); err != nil {
				return fmt.Errorf("lattice point (%d,%d): %w", i, j, err)
			}
		}
	}
	for i := 0; i < numX-1; i++ {
		for j := 0; j < numY-1; j++ {
			if _, err = m.AppendElement(nodes[i][j], nodes[i+1][j], nodes[i+1][j+1], nodes[i][j+1]); err != nil {
				return
			}
		}
	}
	return
}

func checkCounts(numX, numY int) error {
	if numX < 2 || numY < 2 {
		return fmt.Errorf("%w: have %d x %d", ErrCount, numX, numY)
	}
	return nil
}
