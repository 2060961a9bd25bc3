/*
Package fea holds isoparametric element kernels and local frame transformers.

An Element is built once per mesh element from copies of its nodes. Build evaluates one
quadrature point and returns a State value, so nothing is read back from the element:

	e, err := fea.NewIsoQuad4(m.ElementNodes(i))
	for _, p := range quadrature.NewQuadrilateral(2).Points() {
		s := e.Build(p)
		if s.Degenerate() {
			...
		}
	}

A non-positive Jacobian marks an inverted or collapsed element. It is reported in the State and
never raised, the caller decides whether to reject the element.
*/
package fea
