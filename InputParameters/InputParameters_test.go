package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tankJob = `
Title: "Tank"
Epsilon: 1.0e-6
Welder: hash
Output: tank.vtp
Blocks:
  - Type: grid
    OriginX: 0
    OriginY: 1.767
    Width: 1
    Height: 12.2
    NumX: 9
    NumY: 20
    Map:
      Type: cylinder
      Radius: 1.95
  - Type: quarterdisk
    Radius: 1.95
    NumNodes: 5
    Reverse: true
    Map:
      Type: cap
      Radius: 2.5
      Offset: 3.3
      Sign: -1
`

func TestParse(t *testing.T) {
	var job MeshJob
	require.NoError(t, job.Parse([]byte(tankJob)))
	assert.Equal(t, "Tank", job.Title)
	assert.Equal(t, 1.e-6, job.Epsilon)
	assert.Equal(t, "vtp", job.OutputFormat())
	require.Len(t, job.Blocks, 2)
	g := job.Blocks[0]
	assert.Equal(t, 1.767, g.OriginY)
	assert.Equal(t, 20, g.NumY)
	require.NotNil(t, g.Map)
	assert.Equal(t, "cylinder", g.Map.Type)
	d := job.Blocks[1]
	assert.True(t, d.Reverse)
	assert.Equal(t, 5, d.NumNodes)
	assert.Equal(t, -1., d.Map.Sign)
	assert.Equal(t, "quarterdisk R=1.95, 5 nodes per edge, cap map R=2.5, reversed", d.String())
	assert.NotPanics(t, job.Print)
}

func TestValidate(t *testing.T) {
	for _, text := range []string{
		"Title: empty",
		"Blocks: [{Type: hexagon}]",
		"Welder: octree\nBlocks: [{Type: grid, NumX: 2, NumY: 2}]",
		"Format: stl\nBlocks: [{Type: grid, NumX: 2, NumY: 2}]",
		"Blocks: [{Type: grid, NumX: 2, NumY: 2, Map: {Type: torus}}]",
		"NodeType: wobbly\nBlocks: [{Type: grid, NumX: 2, NumY: 2}]",
		"Blocks: [{Type: grid, NumX: 2}]",
		"Blocks: [{Type: annulus, NumX: 1, NumY: 4}]",
		"Blocks: [{Type: quarterdisk, Radius: 1}]",
		// Bare Y and N are YAML 1.1 booleans and never reach the counts
		"Blocks: [{Type: quarterdisk, Radius: 1, N: 5}]",
	} {
		var job MeshJob
		assert.ErrorIs(t, job.Parse([]byte(text)), ErrJob, text)
	}
	var job MeshJob
	require.NoError(t, job.Parse([]byte("Output: out.TXT\nBlocks: [{Type: Annulus, NumX: 3, NumY: 3}]")))
	assert.Equal(t, "txt", job.OutputFormat())
	assert.Error(t, job.Parse([]byte("Blocks: [")))
}

func TestBooleanLookingKeys(t *testing.T) {
	var job MeshJob
	require.NoError(t, job.Parse([]byte(`
Blocks:
  - {Type: grid, OriginX: 2, OriginY: -3, Width: 1, Height: 1, NumX: 2, NumY: 2}
  - {Type: quarterdisk, Radius: 1.95, NumNodes: 25}
`)))
	assert.Equal(t, 2., job.Blocks[0].OriginX)
	assert.Equal(t, -3., job.Blocks[0].OriginY)
	assert.Equal(t, 25, job.Blocks[1].NumNodes)
	assert.Equal(t, 1.95, job.Blocks[1].Radius)
}
