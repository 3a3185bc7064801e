package refine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/vec3"
)

func buildSliverCube(t *testing.T) (*mesh.Store, int) {
	t.Helper()
	s := mesh.NewStore()
	pts := []vec3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 0, Y: 10, Z: 0},
		{X: 0, Y: 0, Z: 10}, {X: 10, Y: 0, Z: 10}, {X: 10, Y: 10, Z: 10}, {X: 0, Y: 10, Z: 10},
	}
	for _, p := range pts {
		s.AddVertex(p, 0, nil, mesh.ClassInput)
	}
	seed, err := delaunay.Build(s, rand.New(rand.NewSource(11)))
	assert.NoError(t, err)
	return s, seed
}

func TestRefineImprovesWorstRatio(t *testing.T) {
	s, seed := buildSliverCube(t)

	worst := func() float64 {
		w := 0.0
		for i := range s.Tets {
			tt := &s.Tets[i]
			if tt.Deleted || tt.Ghost {
				continue
			}
			a, b, c, d := s.Pos(tt.V[0]), s.Pos(tt.V[1]), s.Pos(tt.V[2]), s.Pos(tt.V[3])
			r, ok := predicate.RadiusEdgeRatio(a, b, c, d)
			if ok && r > w {
				w = r
			}
		}
		return w
	}

	before := worst()
	stats, err := Refine(context.Background(), s, seed, 1.2, nil, 200)
	assert.NoError(t, err)

	ok, detail := s.CheckSymmetry()
	assert.True(t, ok, detail)

	if stats.Inserted > 0 {
		assert.LessOrEqual(t, worst(), before+1e-9)
	}
}

func TestRefineRespectsCancellation(t *testing.T) {
	s, seed := buildSliverCube(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Refine(ctx, s, seed, 1.0, nil, 1000)
	assert.Error(t, err)
}

func TestRefineSplitsEncroachingSegmentInsteadOfInsertingCircumcenter(t *testing.T) {
	s, seed := buildSliverCube(t)

	// A protection sphere large enough to cover every candidate
	// circumcenter in the cube, so the very first bad tet's circumcenter
	// is redirected to the segment's own midpoint.
	idx := NewEncroachmentIndex([][2]vec3.Vec{{
		{X: -5, Y: 5, Z: 5}, {X: 15, Y: 5, Z: 5},
	}}, nil)

	stats, err := Refine(context.Background(), s, seed, 1.2, idx, 1)
	assert.Error(t, err)
	assert.Equal(t, 1, stats.EncroachmentSplits)
	assert.Equal(t, 1, stats.Inserted)

	found := false
	for _, v := range s.Vertices {
		if v.Class == mesh.ClassSteinerSegment {
			found = true
			assert.InDelta(t, 5.0, v.Pos.X, 1e-9)
		}
	}
	assert.True(t, found, "expected a Steiner-segment vertex at the protected segment's midpoint")
}
