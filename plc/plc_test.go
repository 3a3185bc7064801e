package plc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

func buildCube(t *testing.T) (*mesh.Store, int, [8]int) {
	t.Helper()
	s := mesh.NewStore()
	corners := []vec3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	var ids [8]int
	for i, p := range corners {
		ids[i] = s.AddVertex(p, 0, nil, mesh.ClassInput)
	}
	seed, err := delaunay.Build(s, rand.New(rand.NewSource(7)))
	assert.NoError(t, err)
	return s, seed, ids
}

func TestRecoverSegmentAlreadyPresent(t *testing.T) {
	s, _, ids := buildCube(t)
	err := RecoverSegment(s, ids[0], ids[1], 0)
	assert.NoError(t, err)
	assert.True(t, edgePresent(s, ids[0], ids[1]))
}

func TestRecoverFacetBottomFace(t *testing.T) {
	s, _, ids := buildCube(t)
	f := Facet{Polygons: [][]int{{ids[0], ids[1], ids[2], ids[3]}}}
	walls, err := RecoverFacet(s, f, 8, 1e-6)
	assert.NoError(t, err)
	assert.NotEmpty(t, walls)
	for _, w := range walls {
		assert.True(t, facePresent(s, w[0], w[1], w[2]))
	}
}

func TestRecoverFacetRejectsNonPlanar(t *testing.T) {
	s, _, ids := buildCube(t)
	// ids[0..3] is the bottom face; bending in a vertex from the top
	// face makes the loop non-planar.
	f := Facet{Polygons: [][]int{{ids[0], ids[1], ids[2], ids[6]}}}
	_, err := RecoverFacet(s, f, 8, 1e-6)
	assert.Error(t, err)
}

func TestFloodRegionsAssignsAttribute(t *testing.T) {
	s, seed, _ := buildCube(t)
	regions := []Region{{Point: vec3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, Attribute: 3, MaxVolume: 0.1}}
	err := FloodRegions(s, seed, nil, regions, nil)
	assert.NoError(t, err)

	found := false
	for i := range s.Tets {
		if !s.Tets[i].Deleted && !s.Tets[i].Ghost {
			assert.Equal(t, 3, s.Tets[i].Region)
			found = true
		}
	}
	assert.True(t, found)
}
