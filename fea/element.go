package fea

import (
	"fmt"

	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
)

// Element is an isoparametric kernel over a fixed set of nodes
type Element interface {
	// Build evaluates shapes, physical derivatives and the Jacobian at one parametric point
	Build(p quadrature.Point) State
	Nodes() []mesh.Node
	Arity() int
}

// State is the result of one Build. Derivatives is indexed [physical direction][node] and is nil
// when the Jacobian matrix cannot be inverted.
type State struct {
	Shapes      []float64
	Derivatives [][]float64
	Jacobian    float64
}

// Degenerate reports an inverted or collapsed element at the built point
func (s State) Degenerate() bool { return s.Jacobian <= 0 }

// ArityError is returned by element and transformer constructors given the wrong number of nodes
type ArityError struct {
	Element string
	Want    int
	Have    int
	AtLeast bool
}

func (e *ArityError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%s requires at least %d nodes, have %d", e.Element, e.Want, e.Have)
	}
	return fmt.Sprintf("%s requires %d nodes, have %d", e.Element, e.Want, e.Have)
}

type base struct {
	nodes []mesh.Node
}

func newBase(name string, arity int, nodes []mesh.Node) (b base, err error) {
	if len(nodes) != arity {
		err = &ArityError{Element: name, Want: arity, Have: len(nodes)}
		return
	}
	b.nodes = make([]mesh.Node, len(nodes))
	for i, n := range nodes {
		b.nodes[i] = mesh.NewNode(n.Coords, n.Type, n.ID)
	}
	return
}

func (b base) Nodes() (nodes []mesh.Node) {
	nodes = make([]mesh.Node, len(b.nodes))
	copy(nodes, b.nodes)
	return
}

func (b base) Arity() int { return len(b.nodes) }

func (b base) xs() (x []float64) {
	x = make([]float64, len(b.nodes))
	for i, n := range b.nodes {
		x[i] = n.X()
	}
	return
}

func (b base) ys() (y []float64) {
	y = make([]float64, len(b.nodes))
	for i, n := range b.nodes {
		y[i] = n.Y()
	}
	return
}
