package mesh

import (
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/notargets/isomesh/types"
)

// UniqueEdges returns every undirected edge of the mesh once, sorted by key
func (m *Mesh) UniqueEdges() (edges []types.EdgeKey) {
	seen := make(map[types.EdgeKey]struct{})
	for _, e := range m.Elements {
		for _, edge := range e.Edges() {
			key := edge.Key()
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				edges = append(edges, key)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return
}

// BoundaryEdges returns the directed edges referenced by exactly one element, in element order.
// Only meaningful for polygonal elements with at least 3 nodes.
func (m *Mesh) BoundaryEdges() (edges []types.Edge) {
	count := make(map[types.EdgeKey]int)
	for _, e := range m.Elements {
		for _, edge := range e.Edges() {
			count[edge.Key()]++
		}
	}
	for _, e := range m.Elements {
		for _, edge := range e.Edges() {
			if count[edge.Key()] == 1 {
				edges = append(edges, edge)
			}
		}
	}
	return
}

// EdgeLength is the distance between the two nodes of an edge
func (m *Mesh) EdgeLength(key types.EdgeKey) float64 {
	lo, hi := key.Nodes()
	return m.Nodes[lo].Distance(m.Nodes[hi])
}

// Incidence returns the node by element incidence matrix, entry (n, e) is the position of node n
// within element e plus one. The number of non zeros in row n equals Power(n).
// An empty mesh has no incidence matrix and returns nil.
func (m *Mesh) Incidence() *sparse.CSR {
	if len(m.Nodes) == 0 || len(m.Elements) == 0 {
		return nil
	}
	dok := sparse.NewDOK(len(m.Nodes), len(m.Elements))
	for e, el := range m.Elements {
		for i, n := range el.Nodes {
			dok.Set(n, e, float64(i+1))
		}
	}
	return dok.ToCSR()
}

// Valence returns the power of every node read from an incidence matrix
func Valence(incidence *sparse.CSR) (power []int) {
	var (
		nr, _ = incidence.Dims()
		raw   = incidence.RawMatrix()
	)
	power = make([]int, nr)
	for i := 0; i < nr; i++ {
		power[i] = raw.Indptr[i+1] - raw.Indptr[i]
	}
	return
}
