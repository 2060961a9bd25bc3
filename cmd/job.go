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
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/notargets/isomesh/InputParameters"
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/mesh/creators"
	"github.com/notargets/isomesh/writefiles"
)

func readJob(filename string) (job *InputParameters.MeshJob, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	job = &InputParameters.MeshJob{}
	if err = job.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func buildBlock(b InputParameters.Block, epsilon float64) (m *mesh.Mesh, err error) {
	var creator creators.MeshCreator
	switch strings.ToLower(b.Type) {
	case "grid":
		creator = creators.NewPlaneGrid(b.OriginX, b.OriginY, b.Width, b.Height, b.NumX, b.NumY)
	case "quarterdisk":
		if creator, err = creators.QuarterDisk(b.Radius, b.NumNodes, epsilon); err != nil {
			return
		}
	case "annulus":
		creator = creators.AnnulusSector(b.Inner, b.Outer, b.From*math.Pi/180, b.To*math.Pi/180, b.NumX, b.NumY)
	default:
		return nil, fmt.Errorf("%w: block type %q", InputParameters.ErrJob, b.Type)
	}
	if m, err = creator.Create(); err != nil {
		return
	}
	if b.Map != nil {
		var fn func(mesh.Node) []float64
		switch strings.ToLower(b.Map.Type) {
		case "cylinder":
			fn = creators.Cylinder(b.Map.Radius)
		case "cap":
			fn = creators.SphericalCap(b.Map.Radius, b.Map.Offset, b.Map.Sign)
		}
		if err = m.MapCoords(fn); err != nil {
			return
		}
	}
	if b.Reverse {
		m.ReverseElements()
	}
	return
}

// buildJob generates every block and welds them in order. Welds is the number of merged nodes.
func buildJob(job *InputParameters.MeshJob, logger *log.Logger) (m *mesh.Mesh, welds int, err error) {
	u := creators.NewUnion(job.Epsilon)
	if strings.EqualFold(job.Welder, "hash") {
		u.NewWelder = func() mesh.Welder { return mesh.NewHashWelder() }
	}
	total := 0
	for i, b := range job.Blocks {
		var bm *mesh.Mesh
		if bm, err = buildBlock(b, job.Epsilon); err != nil {
			return nil, 0, fmt.Errorf("block %d: %w", i, err)
		}
		logger.Debug("block", "index", i, "block", b.String(), "nodes", bm.NumNodes(), "elements", bm.NumElements())
		total += bm.NumNodes()
		u.Meshes = append(u.Meshes, bm)
	}
	if m, err = u.Create(); err != nil {
		return
	}
	welds = total - m.NumNodes()
	if job.NodeType != "" {
		var nt mesh.NodeType
		if nt, err = mesh.ParseNodeType(job.NodeType); err != nil {
			return
		}
		m.SetNodeTypes(nt)
	}
	return
}

// writeMesh writes txt or vtp. The vtp file carries node power and, for 2D meshes, element
// Jacobians at the center.
func writeMesh(filename, format string, m *mesh.Mesh) (err error) {
	switch strings.ToLower(format) {
	case "txt", "":
		return writefiles.WriteTextFile(filename, m)
	case "vtp":
		var fields writefiles.Fields
		power := make([]float64, m.NumNodes())
		for n := range m.Nodes {
			power[n] = float64(m.Power(n))
		}
		fields.AddPointScalar("power", power)
		if q, err := checkQuads(m); err == nil {
			fields.AddCellScalar("jacobian", q.jacobians)
		}
		return writefiles.WriteVTPFile(filename, m, &fields)
	}
	return fmt.Errorf("unknown output format %q, use txt or vtp", format)
}
