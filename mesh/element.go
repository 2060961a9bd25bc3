package mesh

import (
	"fmt"
	"slices"

	"github.com/notargets/isomesh/types"
)

// Element is an ordered list of node indices into the owning mesh, the order encodes orientation
type Element struct {
	Nodes []int
}

func NewElement(nodes ...int) Element {
	return Element{Nodes: append([]int{}, nodes...)}
}

func (e Element) Len() int { return len(e.Nodes) }

// Neighbors returns the cyclically previous and next nodes of node within the element
func (e Element) Neighbors(node int) (prev, next int, err error) {
	i := slices.Index(e.Nodes, node)
	if i < 0 {
		err = fmt.Errorf("node %d is not part of element %v", node, e.Nodes)
		return
	}
	l := len(e.Nodes)
	prev, next = e.Nodes[(i-1+l)%l], e.Nodes[(i+1)%l]
	return
}

// Edges returns the cyclic (previous, current) edges of the element
func (e Element) Edges() (edges []types.Edge) {
	l := len(e.Nodes)
	if l < 2 {
		return
	}
	edges = make([]types.Edge, l)
	for i := range e.Nodes {
		edges[i] = types.Edge{From: e.Nodes[(i-1+l)%l], To: e.Nodes[i]}
	}
	return
}

func (e *Element) Reverse() { slices.Reverse(e.Nodes) }

func (e Element) Contains(node int) bool { return slices.Contains(e.Nodes, node) }
