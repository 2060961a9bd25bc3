package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/notargets/isomesh/InputParameters"
	"github.com/notargets/isomesh/mesh"
	"github.com/notargets/isomesh/mesh/creators"
	"github.com/notargets/isomesh/writefiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = newLogger(io.Discard, log.DebugLevel)

func parseJob(t *testing.T, text string) *InputParameters.MeshJob {
	var job InputParameters.MeshJob
	require.NoError(t, job.Parse([]byte(text)))
	return &job
}

func TestBuildJob(t *testing.T) {
	for _, welder := range []string{"linear", "hash"} {
		job := parseJob(t, `
Epsilon: 1.0e-8
Welder: `+welder+`
Blocks:
  - {Type: grid, OriginX: 0, OriginY: 0, Width: 1, Height: 1, NumX: 3, NumY: 3}
  - {Type: grid, OriginX: 1, OriginY: 0, Width: 1, Height: 1, NumX: 3, NumY: 3}
`)
		m, welds, err := buildJob(job, testLogger)
		require.NoError(t, err)
		assert.Equal(t, 3, welds, welder)
		assert.Equal(t, 15, m.NumNodes(), welder)
		assert.Equal(t, 8, m.NumElements(), welder)
	}
}

func TestBuildTankJob(t *testing.T) {
	// A hemispherical bottom welded to a quarter cylinder along the rim
	job := parseJob(t, `
Epsilon: 1.0e-6
Welder: hash
NodeType: fixed
Blocks:
  - Type: quarterdisk
    Radius: 1
    NumNodes: 5
    Reverse: true
    Map: {Type: cap, Radius: 1, Offset: 0, Sign: -1}
  - Type: grid
    Width: 1
    Height: 2
    NumX: 9
    NumY: 3
    Map: {Type: cylinder, Radius: 1}
`)
	m, welds, err := buildJob(job, testLogger)
	require.NoError(t, err)
	assert.Equal(t, 9, welds)
	assert.Equal(t, 61+27-9, m.NumNodes())
	assert.Equal(t, 48+16, m.NumElements())
	for _, n := range m.Nodes {
		assert.Equal(t, mesh.FIXED, n.Type)
		assert.Equal(t, 3, n.Dim())
	}
	// Rim nodes are shared by the cap and the cylinder
	rim, err := m.AppendPoint([]float64{0, 1, 0}, mesh.BORDER, true)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Power(rim))
	assert.Equal(t, 79, m.NumNodes())

	q, err := checkQuads(m)
	require.NoError(t, err)
	assert.Empty(t, q.degenerate)
	assert.Len(t, q.jacobians, m.NumElements())
}

func TestExampleJob(t *testing.T) {
	job := parseJob(t, exampleJob)
	require.Len(t, job.Blocks, 2)
	assert.Equal(t, 25, job.Blocks[0].NumNodes)
	assert.Equal(t, 49, job.Blocks[1].NumX)
	m, welds, err := buildJob(job, testLogger)
	require.NoError(t, err)
	// The whole arc of the disk lands on the bottom row of the cylinder
	assert.Equal(t, 49, welds)
	assert.Equal(t, 3*25*25-(3*25-1)+49*25-49, m.NumNodes())
}

func TestCheckQuads(t *testing.T) {
	m, err := creators.NewPlaneGrid(0, 0, 2, 3, 5, 4).Create()
	require.NoError(t, err)
	q, err := checkQuads(m)
	require.NoError(t, err)
	assert.InDelta(t, 6., q.area, 1.e-12)
	assert.Empty(t, q.degenerate)
	for _, j := range q.jacobians {
		assert.InDelta(t, 0.5*1./4., j, 1.e-14)
	}
	m.ReverseElements()
	q, err = checkQuads(m)
	require.NoError(t, err)
	assert.Len(t, q.degenerate, m.NumElements())

	_, err = m.AppendElement(0, 1, 2)
	require.NoError(t, err)
	_, err = checkQuads(m)
	assert.ErrorIs(t, err, mesh.ErrMixedArity)
}

func run(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), strings.Join(args, " "))
	return out.String()
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	gridFile := filepath.Join(dir, "grid.txt")
	run(t, "grid", "--width", "2", "--height", "1", "--nx", "4", "--ny", "4", "-o", gridFile)
	m, err := writefiles.ReadTextFile(gridFile)
	require.NoError(t, err)
	assert.Equal(t, 16, m.NumNodes())
	assert.Equal(t, 9, m.NumElements())

	out := run(t, "stats", "-F", gridFile)
	assert.Contains(t, out, "nodes     16\n")
	assert.Contains(t, out, "elements  9\n")
	assert.Contains(t, out, "size      (2, 1, 0)\n")
	assert.Contains(t, out, "24 unique, 12 boundary")
	assert.Contains(t, out, "shortest 0.333333, longest 0.666667, boundary length 6\n")
	assert.Contains(t, out, "   4: 4\n")
	assert.Contains(t, out, "area      2\n")
	assert.Contains(t, out, "inverted  0\n")

	out = run(t, "quadrature", "--shape", "tri", "--order", "4")
	assert.Contains(t, out, "triangle order 4, 7 points")
	assert.Contains(t, out, "sum of weights 0.5 (measure 0.5)")

	vtpFile := filepath.Join(dir, "sector.vtp")
	run(t, "transfinite", "--nx", "5", "--ny", "7", "-o", vtpFile, "--format", "vtp")
	data, err := os.ReadFile(vtpFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `NumberOfPoints="35"`)
	assert.Contains(t, string(data), `Name="jacobian"`)

	jobFile := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(jobFile, []byte(`
Title: two grids
Output: `+filepath.Join(dir, "union.txt")+`
Blocks:
  - {Type: grid, OriginX: 0, OriginY: 0, Width: 1, Height: 1, NumX: 3, NumY: 3}
  - {Type: grid, OriginX: 1, OriginY: 0, Width: 1, Height: 1, NumX: 3, NumY: 3}
`), 0o644))
	run(t, "union", "-I", jobFile)
	m, err = writefiles.ReadTextFile(filepath.Join(dir, "union.txt"))
	require.NoError(t, err)
	assert.Equal(t, 15, m.NumNodes())
}
