package mesh

import (
	"math"
)

// Welder finds an existing node coincident with a point being inserted into a mesh.
// Implementations must return the lowest index among all nodes closer than epsilon,
// which is the first match in insertion order.
type Welder interface {
	Find(nodes []Node, coords []float64, epsilon float64) (index int, found bool)
	Insert(index int, coords []float64, epsilon float64)
	Reset()
}

// LinearWelder scans all previously inserted nodes, O(n) per lookup and O(n^2) for a whole mesh
type LinearWelder struct{}

func (LinearWelder) Find(nodes []Node, coords []float64, epsilon float64) (int, bool) {
	for i := range nodes {
		if nodes[i].DistanceTo(coords) < epsilon {
			return i, true
		}
	}
	return -1, false
}

func (LinearWelder) Insert(int, []float64, float64) {}

func (LinearWelder) Reset() {}

type cellKey [3]int64

// maxCell bounds the cell coordinate. Points beyond |x/epsilon| > 2^62 share the outermost
// cells, which only costs lookup time since every candidate is checked by distance.
const maxCell = float64(1 << 62)

// HashWelder buckets nodes into a uniform grid with cell size epsilon, so a lookup only
// visits the 27 cells around the point. Ties are broken by lowest node index.
// The buckets are rebuilt from the node list whenever the epsilon of a lookup differs from
// the cell size or the node count no longer matches the inserted count.
type HashWelder struct {
	cells map[cellKey][]int
	cell  float64
	count int
}

func NewHashWelder() *HashWelder {
	return &HashWelder{cells: make(map[cellKey][]int)}
}

func (hw *HashWelder) key(coords []float64) (k cellKey) {
	for i := 0; i < len(coords) && i < 3; i++ {
		k[i] = int64(math.Max(-maxCell, math.Min(maxCell, math.Floor(coords[i]/hw.cell))))
	}
	return
}

func (hw *HashWelder) rebuild(nodes []Node, epsilon float64) {
	hw.Reset()
	hw.cell = epsilon
	for i, n := range nodes {
		hw.add(i, n.Coords)
	}
}

func (hw *HashWelder) add(index int, coords []float64) {
	k := hw.key(coords)
	hw.cells[k] = append(hw.cells[k], index)
	hw.count++
}

func (hw *HashWelder) Find(nodes []Node, coords []float64, epsilon float64) (index int, found bool) {
	if hw.cells == nil || epsilon != hw.cell || hw.count != len(nodes) {
		hw.rebuild(nodes, epsilon)
	}
	var (
		k = hw.key(coords)
	)
	index = -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, i := range hw.cells[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if (index < 0 || i < index) && nodes[i].DistanceTo(coords) < epsilon {
						index = i
					}
				}
			}
		}
	}
	found = index >= 0
	return
}

func (hw *HashWelder) Insert(index int, coords []float64, epsilon float64) {
	if hw.cells == nil || epsilon != hw.cell || index != hw.count {
		// Out of sync, the next Find rebuilds from the node list
		hw.count = -1
		return
	}
	hw.add(index, coords)
}

func (hw *HashWelder) Reset() {
	hw.cells = make(map[cellKey][]int)
	hw.count = 0
}
