package mesh

import (
	"fmt"
	"strings"

	"github.com/notargets/isomesh/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// NodeType is the role of a node, the integer value is the code written to mesh files
type NodeType int

const (
	UNDEFINED NodeType = -2
	EXTERNAL  NodeType = -1
	BORDER    NodeType = 0
	INTERNAL  NodeType = 1
	FIXED     NodeType = 2
)

func (nt NodeType) String() string {
	switch nt {
	case UNDEFINED:
		return "Undefined"
	case EXTERNAL:
		return "External"
	case BORDER:
		return "Border"
	case INTERNAL:
		return "Internal"
	case FIXED:
		return "Fixed"
	}
	return fmt.Sprintf("NodeType(%d)", int(nt))
}

func ParseNodeType(label string) (nt NodeType, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "undefined", "":
		nt = UNDEFINED
	case "external":
		nt = EXTERNAL
	case "border":
		nt = BORDER
	case "internal":
		nt = INTERNAL
	case "fixed":
		nt = FIXED
	default:
		err = fmt.Errorf("unknown node type: %q", label)
	}
	return
}

// Weldable reports whether a node of this type may be merged with a coincident node of another mesh
func (nt NodeType) Weldable() bool {
	return nt == BORDER || nt == FIXED
}

// Node is a point of dimension 1 to 3 with a role and a mesh local identifier
type Node struct {
	Coords []float64
	Type   NodeType
	ID     int
}

func NewNode(coords []float64, nt NodeType, id int) Node {
	return Node{
		Coords: append([]float64{}, coords...),
		Type:   nt,
		ID:     id,
	}
}

func (n Node) Dim() int { return len(n.Coords) }

func (n Node) X() float64 { return n.component(0) }
func (n Node) Y() float64 { return n.component(1) }
func (n Node) Z() float64 { return n.component(2) }

func (n Node) component(i int) float64 {
	if len(n.Coords) > i {
		return n.Coords[i]
	}
	return 0
}

// Point returns the node position in 3D, missing components are zero
func (n Node) Point() r3.Vec { return utils.ToVec(n.Coords) }

func (n Node) Distance(o Node) float64 { return utils.Distance(n.Coords, o.Coords) }

func (n Node) DistanceTo(coords []float64) float64 { return utils.Distance(n.Coords, coords) }

// Vector returns the vector pointing from n to o
func (n Node) Vector(o Node) r3.Vec { return r3.Sub(o.Point(), n.Point()) }

func (n Node) String() string {
	return fmt.Sprintf("%v-%s", n.Coords, n.Type)
}
