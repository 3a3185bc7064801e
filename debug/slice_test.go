package debug

import (
	"math/rand"
	"path/filepath"
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
	}
	for _, p := range corners {
		s.AddVertex(p, 0, nil, mesh.ClassInput)
	}
	_, err := delaunay.Build(s, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	return s
}

func TestSliceZMidplaneFindsSegments(t *testing.T) {
	s := cubeStore(t)
	segs := SliceZ(s, 0.5)
	assert.NotEmpty(t, segs)
}

func TestSliceZAboveMeshFindsNothing(t *testing.T) {
	s := cubeStore(t)
	segs := SliceZ(s, 10)
	assert.Empty(t, segs)
}

func TestWriteSVGSlice(t *testing.T) {
	s := cubeStore(t)
	path := filepath.Join(t.TempDir(), "slice.svg")
	require.NoError(t, WriteSVGSlice(path, s, 0.5, 256))
}
