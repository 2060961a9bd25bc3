package fea

import (
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
)

// SurfaceQuad4 is a four node quadrilateral embedded in 3D. Nodes are expressed in the plane of
// the first three nodes and then treated as an IsoQuad4, derivatives are in that local frame.
type SurfaceQuad4 struct {
	base
	frame *ShellTransformer
	x, y  []float64
}

func NewSurfaceQuad4(nodes []mesh.Node) (e *SurfaceQuad4, err error) {
	var b base
	if b, err = newBase("SurfaceQuad4", 4, nodes); err != nil {
		return
	}
	e = &SurfaceQuad4{base: b}
	if e.frame, err = NewShellTransformer(nodes); err != nil {
		return nil, err
	}
	local := base{nodes: e.frame.LocalNodes()}
	e.x, e.y = local.xs(), local.ys()
	return
}

func (e *SurfaceQuad4) Build(p quadrature.Point) State {
	return buildQuad4(p, e.x, e.y)
}

// Frame returns the transformer between the element plane and global coordinates
func (e *SurfaceQuad4) Frame() *ShellTransformer { return e.frame }
