package tetio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	return s
}

func TestWriteReadNodeRoundTrip(t *testing.T) {
	s := cubeStore(t)
	path := filepath.Join(t.TempDir(), "mesh.node")
	require.NoError(t, WriteNode(path, s))

	ns, err := ReadNode(path)
	require.NoError(t, err)
	assert.Equal(t, len(s.Vertices), len(ns.Points))
	for i, v := range s.Vertices {
		assert.InDelta(t, v.Pos.X, ns.Points[i].X, 1e-9)
		assert.InDelta(t, v.Pos.Y, ns.Points[i].Y, 1e-9)
		assert.InDelta(t, v.Pos.Z, ns.Points[i].Z, 1e-9)
	}
}

func TestWriteEleAndFace(t *testing.T) {
	s := cubeStore(t)
	a := s.AllocTet([4]int{0, 1, 2, 4})
	_ = a

	dir := t.TempDir()
	require.NoError(t, WriteEle(filepath.Join(dir, "mesh.ele"), s))
	require.NoError(t, WriteFace(filepath.Join(dir, "mesh.face"), s))

	data, err := os.ReadFile(filepath.Join(dir, "mesh.ele"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 4 1")
}

func TestReadPolyMinimal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.poly")
	content := `4 3 0 0
0 0 0 0
1 1 0 0
2 1 1 0
3 0 1 0
1 0
1
4 0 1 2 3
0
0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ns, out, err := ReadPoly(path)
	require.NoError(t, err)
	require.NotNil(t, ns)
	assert.Len(t, ns.Points, 4)
	require.Len(t, out.Facets, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, out.Facets[0].Polygons[0])
}
