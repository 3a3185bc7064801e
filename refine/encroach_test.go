package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunpia/tetgen/vec3"
)

func TestNearestEncroachedPrefersSegmentOverFacet(t *testing.T) {
	seg := [2]vec3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	tri := [3]vec3.Vec{{X: 0, Y: 0, Z: 0.01}, {X: 1, Y: 0, Z: 0.01}, {X: 0.5, Y: 1, Z: 0.01}}
	idx := NewEncroachmentIndex([][2]vec3.Vec{seg}, [][3]vec3.Vec{tri})

	hit, ok := idx.NearestEncroached(vec3.Vec{X: 0.5, Y: 0, Z: 0})
	assert.True(t, ok)
	assert.True(t, hit.Segment)
	assert.InDelta(t, 0.5, hit.Point.X, 1e-9)
}

func TestNearestEncroachedFacetWhenNoSegmentNearby(t *testing.T) {
	seg := [2]vec3.Vec{{X: 10, Y: 10, Z: 10}, {X: 11, Y: 10, Z: 10}}
	tri := [3]vec3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	idx := NewEncroachmentIndex([][2]vec3.Vec{seg}, [][3]vec3.Vec{tri})

	hit, ok := idx.NearestEncroached(vec3.Vec{X: 0.3, Y: 0.3, Z: 0})
	assert.True(t, ok)
	assert.False(t, hit.Segment)
}

func TestNearestEncroachedNoneWhenFarAway(t *testing.T) {
	seg := [2]vec3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	idx := NewEncroachmentIndex([][2]vec3.Vec{seg}, nil)

	_, ok := idx.NearestEncroached(vec3.Vec{X: 100, Y: 100, Z: 100})
	assert.False(t, ok)
}
