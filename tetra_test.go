package tetgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunpia/tetgen/behavior"
	"github.com/sunpia/tetgen/vec3"
)

func cubePoints() []vec3.Vec {
	return []vec3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
}

func TestTetrahedralizePlainPointSet(t *testing.T) {
	b := behavior.Default()
	out, err := Tetrahedralize(context.Background(), b, Input{Points: cubePoints()})
	require.NoError(t, err)
	assert.Greater(t, out.Quality.Count, 0)

	ok, detail := out.Store.CheckSymmetry()
	assert.True(t, ok, detail)
}

func TestTetrahedralizeRejectsCoincidentPoints(t *testing.T) {
	b := behavior.Default()
	pts := cubePoints()
	pts = append(pts, pts[0])

	_, err := Tetrahedralize(context.Background(), b, Input{Points: pts})
	assert.Error(t, err)
}

func TestTetrahedralizeWithQualityAndDual(t *testing.T) {
	b := behavior.Default()
	b.Quality = true
	b.VoronoiDual = true
	b.MinRadiusEdgeRatio = 1.3

	out, err := Tetrahedralize(context.Background(), b, Input{Points: cubePoints()})
	require.NoError(t, err)
	require.NotNil(t, out.Dual)
	assert.NotEmpty(t, out.Dual.Nodes)
}

func TestTetrahedralizeTooFewPoints(t *testing.T) {
	b := behavior.Default()
	_, err := Tetrahedralize(context.Background(), b, Input{Points: cubePoints()[:3]})
	assert.Error(t, err)
}
