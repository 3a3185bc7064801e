package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

func cubeStore(t *testing.T) *mesh.Store {
	t.Helper()
	s := mesh.NewStore()
	corners := []vec3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		{X: 0.5, Y: 0.5, Z: 0.5},
	}
	for _, p := range corners {
		s.AddVertex(p, 0, nil, mesh.ClassInput)
	}
	_, err := delaunay.Build(s, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s
}

func TestBuildDualHasOneNodePerLiveTet(t *testing.T) {
	s := cubeStore(t)
	d := Build(s)

	live := 0
	for i := range s.Tets {
		if !s.Tets[i].Deleted && !s.Tets[i].Ghost {
			live++
		}
	}
	assert.Equal(t, live, len(d.Nodes))
}

func TestBuildDualEdgesConnectSharedFaces(t *testing.T) {
	s := cubeStore(t)
	d := Build(s)
	require.NotEmpty(t, d.Edges)
	for _, e := range d.Edges {
		assert.Contains(t, d.Nodes, e[0])
		assert.Contains(t, d.Nodes, e[1])
	}
}

func TestBuildDualCellsCoverInteriorVertex(t *testing.T) {
	s := cubeStore(t)
	d := Build(s)
	// The 9th point (index 8) is the cube's interior point and must own
	// at least one Voronoi cell node.
	assert.NotEmpty(t, d.Cells[8])
}
