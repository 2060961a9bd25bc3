/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/notargets/isomesh/fea"
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/quadrature"
	"github.com/notargets/isomesh/writefiles"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print topology and element quality of a mesh job or text mesh file",
	Long: `Print node and element counts, extents, edge statistics, the node valence histogram
and, for quadrilateral meshes, the element area and the number of inverted elements.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			m        *mesh.Mesh
			logger   = loggerFrom(cmd)
			jobFile  string
			meshFile string
		)
		jobFile, _ = cmd.Flags().GetString("inputConditionsFile")
		meshFile, _ = cmd.Flags().GetString("meshFile")
		switch {
		case jobFile != "":
			job, err := readJob(jobFile)
			if err != nil {
				return err
			}
			if m, _, err = buildJob(job, logger); err != nil {
				return err
			}
		case meshFile != "":
			if m, err = writefiles.ReadTextFile(meshFile); err != nil {
				return
			}
		default:
			return errors.New("must supply a job file (-I) or a text mesh file (-F)")
		}
		return printStats(cmd.OutOrStdout(), m)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML mesh job file")
	statsCmd.Flags().StringP("meshFile", "F", "", "text mesh file written by isomesh")
}

type quadCheck struct {
	jacobians  []float64 // At the element center
	degenerate []int     // Elements with a non positive Jacobian at any 2x2 Gauss point
	area       float64
}

// checkQuads evaluates every element of a 4 or 8 node quadrilateral mesh
func checkQuads(m *mesh.Mesh) (q quadCheck, err error) {
	var (
		arity  int
		rule   = quadrature.NewQuadrilateral(2)
		center = quadrature.NewPoint(4, 0, 0)
		is3D   bool
	)
	if arity, err = m.Arity(); err != nil {
		return
	}
	for _, n := range m.Nodes {
		if n.Dim() == 3 && n.Z() != 0 {
			is3D = true
			break
		}
	}
	q.jacobians = make([]float64, m.NumElements())
	for e := range m.Elements {
		var (
			el    fea.Element
			nodes = m.ElementNodes(e)
		)
		switch {
		case arity == 4 && is3D:
			el, err = fea.NewSurfaceQuad4(nodes)
		case arity == 4:
			el, err = fea.NewIsoQuad4(nodes)
		case arity == 8 && !is3D:
			el, err = fea.NewIsoQuad8(nodes)
		default:
			return q, fmt.Errorf("no element kernel for %d node elements (3D: %v)", arity, is3D)
		}
		if errors.Is(err, fea.ErrDegenerateFrame) {
			q.degenerate = append(q.degenerate, e)
			err = nil
			continue
		} else if err != nil {
			return
		}
		q.jacobians[e] = el.Build(center).Jacobian
		for _, p := range rule.Points() {
			if el.Build(p).Degenerate() {
				q.degenerate = append(q.degenerate, e)
				break
			}
		}
		q.area += fea.Integrate(el, rule, func(fea.State) []float64 { return []float64{1} })[0]
	}
	return
}

func printStats(w io.Writer, m *mesh.Mesh) (err error) {
	var (
		size, origin r3.Vec
		mean         float64
	)
	if size, err = m.Sizes(); err != nil {
		return
	}
	if origin, err = m.Origin(); err != nil {
		return
	}
	fmt.Fprintf(w, "nodes     %d\n", m.NumNodes())
	fmt.Fprintf(w, "elements  %d\n", m.NumElements())
	fmt.Fprintf(w, "origin    (%g, %g, %g)\n", origin.X, origin.Y, origin.Z)
	fmt.Fprintf(w, "size      (%g, %g, %g)\n", size.X, size.Y, size.Z)
	if m.NumElements() == 0 {
		return
	}
	if mean, err = m.MeanEdgeLength(); err != nil {
		return
	}
	var (
		unique           = m.UniqueEdges()
		boundary         = m.BoundaryEdges()
		shortest         = math.Inf(1)
		longest, outline float64
	)
	for _, key := range unique {
		l := m.EdgeLength(key)
		shortest, longest = math.Min(shortest, l), math.Max(longest, l)
	}
	for _, edge := range boundary {
		outline += m.EdgeLength(edge.Key())
	}
	fmt.Fprintf(w, "edges     %d unique, %d boundary, mean length %.6g\n", len(unique), len(boundary), mean)
	fmt.Fprintf(w, "          shortest %.6g, longest %.6g, boundary length %.6g\n", shortest, longest, outline)

	histogram := make(map[int]int)
	for _, p := range mesh.Valence(m.Incidence()) {
		histogram[p]++
	}
	powers := make([]int, 0, len(histogram))
	for p := range histogram {
		powers = append(powers, p)
	}
	sort.Ints(powers)
	fmt.Fprintln(w, "valence")
	for _, p := range powers {
		fmt.Fprintf(w, "  %2d: %d\n", p, histogram[p])
	}
	if q, err := checkQuads(m); err == nil {
		fmt.Fprintf(w, "area      %.6g\n", q.area)
		fmt.Fprintf(w, "inverted  %d\n", len(q.degenerate))
	}
	return nil
}
