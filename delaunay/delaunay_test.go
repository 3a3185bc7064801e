package delaunay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

func cubeStore(t *testing.T, extra ...vec3.Vec) *mesh.Store {
	t.Helper()
	s := mesh.NewStore()
	corners := []vec3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	for _, p := range append(corners, extra...) {
		s.AddVertex(p, 0, nil, mesh.ClassInput)
	}
	return s
}

func TestBuildCubeIsPositivelyOriented(t *testing.T) {
	s := cubeStore(t)
	_, err := Build(s, rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	ok, detail := s.CheckSymmetry()
	assert.True(t, ok, detail)

	count := 0
	for i := range s.Tets {
		tt := &s.Tets[i]
		if tt.Deleted || tt.Ghost {
			continue
		}
		count++
		a, b, c, d := s.Pos(tt.V[0]), s.Pos(tt.V[1]), s.Pos(tt.V[2]), s.Pos(tt.V[3])
		assert.Greater(t, predicate.Orient3DFast(a, b, c, d), 0.0)
	}
	assert.Greater(t, count, 0)
}

func TestBuildWithInteriorPoint(t *testing.T) {
	s := cubeStore(t, vec3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	_, err := Build(s, rand.New(rand.NewSource(2)))
	assert.NoError(t, err)

	ok, detail := s.CheckSymmetry()
	assert.True(t, ok, detail)

	center := len(s.Vertices) - 1
	incident := s.WalkIncidentToVertex(center)
	assert.NotEmpty(t, incident)
	for _, tt := range incident {
		assert.False(t, s.Tets[tt].Ghost)
	}
}

func TestDelaunayEmptyCircumsphereProperty(t *testing.T) {
	s := cubeStore(t, vec3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	_, err := Build(s, rand.New(rand.NewSource(3)))
	assert.NoError(t, err)

	for i := range s.Tets {
		tt := &s.Tets[i]
		if tt.Deleted || tt.Ghost {
			continue
		}
		a, b, c, d := s.Pos(tt.V[0]), s.Pos(tt.V[1]), s.Pos(tt.V[2]), s.Pos(tt.V[3])
		for vi := range s.Vertices {
			if tt.HasVertex(vi) {
				continue
			}
			p := s.Pos(vi)
			in := predicate.InSphere(a, b, c, d, p)
			assert.LessOrEqual(t, in, 0, "vertex %d lies inside the circumsphere of tet %d", vi, i)
		}
	}
}
