package fea

import (
	"errors"

	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/utils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateFrame is returned when the nodes defining a local frame are coincident or collinear
var ErrDegenerateFrame = errors.New("nodes do not define a local frame")

/*
PlaneBeamTransformer maps planar coordinates to the frame of a beam: the origin is the first
node and the local x axis points to the second node.

	| c   s |
	| -s  c |   c, s = direction cosines of the first edge
*/
type PlaneBeamTransformer struct {
	nodes, local []mesh.Node
	origin       [2]float64
	c, s         float64
}

func NewPlaneBeamTransformer(nodes []mesh.Node) (tr *PlaneBeamTransformer, err error) {
	if len(nodes) < 2 {
		return nil, &ArityError{Element: "PlaneBeamTransformer", Want: 2, Have: len(nodes), AtLeast: true}
	}
	var (
		a, b = nodes[0], nodes[1]
		dx   = b.X() - a.X()
		dy   = b.Y() - a.Y()
		l    = utils.Distance([]float64{a.X(), a.Y()}, []float64{b.X(), b.Y()})
	)
	if l == 0 {
		return nil, ErrDegenerateFrame
	}
	tr = &PlaneBeamTransformer{
		nodes:  copyNodes(nodes),
		origin: [2]float64{a.X(), a.Y()},
		c:      dx / l,
		s:      dy / l,
	}
	tr.local = make([]mesh.Node, len(nodes))
	for i, n := range nodes {
		tr.local[i] = mesh.NewNode(tr.ToLocal(n.Coords), n.Type, n.ID)
	}
	return
}

func (tr *PlaneBeamTransformer) Nodes() []mesh.Node { return copyNodes(tr.nodes) }

func (tr *PlaneBeamTransformer) LocalNodes() []mesh.Node { return copyNodes(tr.local) }

func (tr *PlaneBeamTransformer) TransformMatrix() *mat.Dense {
	return mat.NewDense(2, 2, []float64{tr.c, tr.s, -tr.s, tr.c})
}

func (tr *PlaneBeamTransformer) ToLocal(coords []float64) []float64 {
	p := utils.Pad3(coords)
	x, y := p[0]-tr.origin[0], p[1]-tr.origin[1]
	return []float64{tr.c*x + tr.s*y, -tr.s*x + tr.c*y}
}

func (tr *PlaneBeamTransformer) ToGlobal(coords []float64) []float64 {
	p := utils.Pad3(coords)
	return []float64{
		tr.c*p[0] - tr.s*p[1] + tr.origin[0],
		tr.s*p[0] + tr.c*p[1] + tr.origin[1],
	}
}

/*
ShellTransformer maps 3D coordinates to the plane of the triangle formed by the first three
nodes. Rows of the direction cosine matrix are the local axes:

	vx = unit(b - a)
	vz = unit((b - a) x (c - a))
	vy = vz x vx
*/
type ShellTransformer struct {
	nodes, local []mesh.Node
	origin       r3.Vec
	cosines      *r3.Mat
}

func NewShellTransformer(nodes []mesh.Node) (tr *ShellTransformer, err error) {
	if len(nodes) < 3 {
		return nil, &ArityError{Element: "ShellTransformer", Want: 3, Have: len(nodes), AtLeast: true}
	}
	var (
		a      = nodes[0].Point()
		ab     = nodes[0].Vector(nodes[1])
		ac     = nodes[0].Vector(nodes[2])
		normal = r3.Cross(ab, ac)
	)
	if r3.Norm(ab) == 0 || r3.Norm(normal) == 0 {
		return nil, ErrDegenerateFrame
	}
	var (
		vx = r3.Unit(ab)
		vz = r3.Unit(normal)
		vy = r3.Cross(vz, vx)
	)
	tr = &ShellTransformer{
		nodes:  copyNodes(nodes),
		origin: a,
		cosines: r3.NewMat([]float64{
			vx.X, vx.Y, vx.Z,
			vy.X, vy.Y, vy.Z,
			vz.X, vz.Y, vz.Z,
		}),
	}
	tr.local = make([]mesh.Node, len(nodes))
	for i, n := range nodes {
		tr.local[i] = mesh.NewNode(tr.ToLocal(n.Coords), n.Type, n.ID)
	}
	return
}

func (tr *ShellTransformer) Nodes() []mesh.Node { return copyNodes(tr.nodes) }

// LocalNodes are 3D, the third component is the offset from the plane of the first three nodes
func (tr *ShellTransformer) LocalNodes() []mesh.Node { return copyNodes(tr.local) }

func (tr *ShellTransformer) TransformMatrix() *r3.Mat {
	m := r3.NewMat(nil)
	m.CloneFrom(tr.cosines)
	return m
}

func (tr *ShellTransformer) ToLocal(coords []float64) []float64 {
	v := tr.cosines.MulVec(r3.Sub(utils.ToVec(coords), tr.origin))
	return []float64{v.X, v.Y, v.Z}
}

func (tr *ShellTransformer) ToGlobal(coords []float64) []float64 {
	v := r3.Add(tr.cosines.MulVecTrans(utils.ToVec(coords)), tr.origin)
	return []float64{v.X, v.Y, v.Z}
}

func copyNodes(nodes []mesh.Node) (c []mesh.Node) {
	c = make([]mesh.Node, len(nodes))
	for i, n := range nodes {
		c[i] = mesh.NewNode(n.Coords, n.Type, n.ID)
	}
	return
}
