package creators

import (
	"fmt"

	"github.com/notargets/isomesh/mesh"
)

// Union merges meshes into one. Nodes of the first mesh are inserted as they are; BORDER and FIXED
// nodes of every following mesh are welded to an existing node closer than Epsilon. INTERNAL nodes
// are never welded. Earlier meshes provide the kept node when a weld happens.
type Union struct {
	Meshes  []*mesh.Mesh
	Epsilon float64
	// NewWelder optionally returns the welding strategy of each result mesh, defaults to a linear scan
	NewWelder func() mesh.Welder
}

func NewUnion(epsilon float64, meshes ...*mesh.Mesh) *Union {
	return &Union{
		Meshes:  meshes,
		Epsilon: epsilon,
	}
}

func (u *Union) Create() (m *mesh.Mesh, err error) {
	if len(u.Meshes) == 0 {
		err = ErrNoMeshes
		return
	}
	m = mesh.NewMesh(u.Epsilon)
	if u.NewWelder != nil {
		m.SetWelder(u.NewWelder())
	}
	for k, src := range u.Meshes {
		src.ResetNodeIDs()
		old2new := make([]int, src.NumNodes())
		for _, node := range src.Nodes {
			check := k > 0 && node.Type.Weldable()
			if old2new[node.ID], err = m.AppendPoint(node.Coords, node.Type, check); err != nil {
				return nil, fmt.Errorf("mesh %d node %d: %w", k, node.ID, err)
			}
		}
		for _, el := range src.Elements {
			nodes := make([]int, el.Len())
			for i, n := range el.Nodes {
				nodes[i] = old2new[src.Nodes[n].ID]
			}
			if _, err = m.AppendElement(nodes...); err != nil {
				return nil, fmt.Errorf("mesh %d: %w", k, err)
			}
		}
	}
	return
}
