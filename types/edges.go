package types

import (
	"fmt"
	"math"
)

// EdgeKey names an undirected mesh edge. The lower node index sits in the low 32 bits, so both
// directions of an edge give the same key and keys sort by their higher node first.
type EdgeKey uint64

func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b > math.MaxUint32 {
		panic(fmt.Errorf("node indices %d and %d do not fit an edge key", a, b))
	}
	return EdgeKey(uint64(b)<<32 | uint64(a))
}

// Nodes returns the node indices of the edge, lowest first
func (ek EdgeKey) Nodes() (lo, hi int) {
	return int(ek & math.MaxUint32), int(ek >> 32)
}

func (ek EdgeKey) String() string {
	lo, hi := ek.Nodes()
	return fmt.Sprintf("%d-%d", lo, hi)
}

// Edge is a directed element edge. Its direction follows the orientation of the element it came from.
type Edge struct {
	From, To int
}

func (e Edge) Key() EdgeKey { return NewEdgeKey(e.From, e.To) }

func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }
