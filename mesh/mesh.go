package mesh

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/notargets/isomesh/utils"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

const DefaultEpsilon = 1.0e-8

var (
	ErrDimension   = errors.New("node coordinates must have 1 to 3 components")
	ErrUnknownNode = errors.New("node index is not part of the mesh")
	ErrEmptyMesh   = errors.New("mesh has no nodes")
	ErrNoElements  = errors.New("mesh has no elements")
	ErrMixedArity  = errors.New("mesh elements have mixed node counts")
	ErrNaN         = errors.New("coordinates are not a number")
)

// Mesh owns all nodes and elements. Elements address nodes by their index in Nodes,
// and the adjacency index maps every node index to the elements referencing it.
// Epsilon and the Welder are changed through SetEpsilon and SetWelder, which keep the welder in
// step with the node list.
type Mesh struct {
	Nodes    []Node
	Elements []Element
	epsilon  float64 // Tolerance used when welding coincident points
	welder   Welder
	adjacent [][]int
	nodeID   int
}

func NewMesh(epsilon float64) *Mesh {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Mesh{
		epsilon: epsilon,
		welder:  LinearWelder{},
	}
}

func (m *Mesh) Epsilon() float64 { return m.epsilon }

// SetEpsilon changes the welding tolerance, non positive values select DefaultEpsilon
func (m *Mesh) SetEpsilon(epsilon float64) {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	m.epsilon = epsilon
	m.rebucket()
}

// SetWelder replaces the welding strategy and feeds it the current nodes, nil selects LinearWelder.
// A welder instance must not be shared between meshes.
func (m *Mesh) SetWelder(w Welder) {
	if w == nil {
		w = LinearWelder{}
	}
	m.welder = w
	m.rebucket()
}

func (m *Mesh) rebucket() {
	if m.welder == nil {
		m.welder = LinearWelder{}
	}
	m.welder.Reset()
	for i, n := range m.Nodes {
		m.welder.Insert(i, n.Coords, m.epsilon)
	}
}

func (m *Mesh) NumNodes() int    { return len(m.Nodes) }
func (m *Mesh) NumElements() int { return len(m.Elements) }

// AppendPoint adds a node at coords and returns its index. When check is set, the first node
// in insertion order closer than Epsilon is returned instead and keeps its own type.
func (m *Mesh) AppendPoint(coords []float64, nt NodeType, check bool) (index int, err error) {
	if len(coords) == 0 || len(coords) > 3 {
		err = fmt.Errorf("%w: have %d", ErrDimension, len(coords))
		return
	}
	if utils.IsNan(coords) {
		err = ErrNaN
		return
	}
	if m.welder == nil {
		m.welder = LinearWelder{}
	}
	if check {
		var found bool
		if index, found = m.welder.Find(m.Nodes, coords, m.epsilon); found {
			return
		}
	}
	index = len(m.Nodes)
	m.Nodes = append(m.Nodes, NewNode(coords, nt, m.nodeID))
	m.nodeID++
	m.adjacent = append(m.adjacent, nil)
	m.welder.Insert(index, coords, m.epsilon)
	return
}

// AppendElement adds an element made of the node indices and registers it in the adjacency index
func (m *Mesh) AppendElement(nodes ...int) (index int, err error) {
	for _, n := range nodes {
		if n < 0 || n >= len(m.adjacent) {
			err = fmt.Errorf("%w: %d of %d", ErrUnknownNode, n, len(m.adjacent))
			return
		}
	}
	index = len(m.Elements)
	m.Elements = append(m.Elements, NewElement(nodes...))
	for _, n := range nodes {
		m.adjacent[n] = append(m.adjacent[n], index)
	}
	return
}

// Adjacent returns the indices of the elements referencing node, empty for nodes foreign to the mesh
func (m *Mesh) Adjacent(node int) []int {
	if node < 0 || node >= len(m.adjacent) {
		return []int{}
	}
	return append([]int{}, m.adjacent[node]...)
}

// Power is the valence of a node, the number of elements referencing it
func (m *Mesh) Power(node int) int {
	if node < 0 || node >= len(m.adjacent) {
		return 0
	}
	return len(m.adjacent[node])
}

// Neighbors returns the sorted set of nodes sharing an element with node, excluding node itself
func (m *Mesh) Neighbors(node int) (neighbors []int) {
	set := make(map[int]struct{})
	for _, e := range m.Adjacent(node) {
		for _, n := range m.Elements[e].Nodes {
			if n != node {
				set[n] = struct{}{}
			}
		}
	}
	neighbors = make([]int, 0, len(set))
	for n := range set {
		neighbors = append(neighbors, n)
	}
	sort.Ints(neighbors)
	return
}

// ElementNodes returns copies of the nodes of element e in element order
func (m *Mesh) ElementNodes(e int) (nodes []Node) {
	el := m.Elements[e]
	nodes = make([]Node, len(el.Nodes))
	for i, n := range el.Nodes {
		nodes[i] = NewNode(m.Nodes[n].Coords, m.Nodes[n].Type, m.Nodes[n].ID)
	}
	return
}

// ResetNodeIDs renumbers node ids densely 0..N-1 following the node list order
func (m *Mesh) ResetNodeIDs() {
	for i := range m.Nodes {
		m.Nodes[i].ID = i
	}
}

func (m *Mesh) bounds() (min, max r3.Vec, err error) {
	if len(m.Nodes) == 0 {
		err = ErrEmptyMesh
		return
	}
	min, max = m.Nodes[0].Point(), m.Nodes[0].Point()
	for _, n := range m.Nodes[1:] {
		p := n.Point()
		min = r3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return
}

// Sizes returns the extent of the axis aligned bounding box of all nodes
func (m *Mesh) Sizes() (size r3.Vec, err error) {
	var min, max r3.Vec
	if min, max, err = m.bounds(); err != nil {
		return
	}
	size = r3.Sub(max, min)
	return
}

// Origin returns the minimum corner of the axis aligned bounding box of all nodes
func (m *Mesh) Origin() (origin r3.Vec, err error) {
	origin, _, err = m.bounds()
	return
}

func (m *Mesh) MeanEdgeLength() (mean float64, err error) {
	var lengths []float64
	for _, e := range m.Elements {
		for _, edge := range e.Edges() {
			lengths = append(lengths, m.Nodes[edge.From].Distance(m.Nodes[edge.To]))
		}
	}
	if len(lengths) == 0 {
		err = ErrNoElements
		return
	}
	mean = stat.Mean(lengths, nil)
	return
}

// ReverseElements flips the orientation of every element
func (m *Mesh) ReverseElements() {
	for i := range m.Elements {
		m.Elements[i].Reverse()
	}
}

// Copy returns a deep copy with fresh node ids, no welding is done
func (m *Mesh) Copy() (c *Mesh) {
	c = NewMesh(m.epsilon)
	for _, n := range m.Nodes {
		if _, err := c.AppendPoint(n.Coords, n.Type, false); err != nil {
			panic(err)
		}
	}
	for _, e := range m.Elements {
		if _, err := c.AppendElement(e.Nodes...); err != nil {
			panic(err)
		}
	}
	return
}

// MapCoords rewrites every node position in place, e.g. to wrap a flat grid onto a surface
func (m *Mesh) MapCoords(fn func(n Node) []float64) (err error) {
	defer m.rebucket()
	for i := range m.Nodes {
		coords := fn(m.Nodes[i])
		if len(coords) == 0 || len(coords) > 3 {
			return fmt.Errorf("node %d: %w: have %d", i, ErrDimension, len(coords))
		}
		if utils.IsNan(coords) {
			return fmt.Errorf("node %d: %w", i, ErrNaN)
		}
		m.Nodes[i].Coords = append([]float64{}, coords...)
	}
	return
}

func (m *Mesh) SetNodeTypes(nt NodeType) {
	for i := range m.Nodes {
		m.Nodes[i].Type = nt
	}
}

// Arity returns the node count shared by all elements
func (m *Mesh) Arity() (arity int, err error) {
	if len(m.Elements) == 0 {
		err = ErrNoElements
		return
	}
	arity = m.Elements[0].Len()
	for i, e := range m.Elements[1:] {
		if e.Len() != arity {
			err = fmt.Errorf("%w: element 0 has %d nodes, element %d has %d",
				ErrMixedArity, arity, i+1, e.Len())
			return
		}
	}
	return
}
