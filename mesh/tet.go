package mesh

// NoIndex marks an absent tetrahedron/vertex/neighbor reference.
const NoIndex = -1

// ExcludedRegion marks a tetrahedron flooded from a hole seed: it lies
// in a void the caller asked to have carved out of the output, distinct
// from NoIndex's "never flooded" meaning so the two can't be confused at
// a region boundary.
const ExcludedRegion = -3

// Tet is a tetrahedron: four vertex indices in the order that makes
// Orient3D(verts...) > 0 for a valid, non-inverted cell, four neighbor
// references (neighbor i is the tetrahedron across the face opposite
// vertex i, or a ghost if this is a hull face), an optional region
// attribute and volume bound, and the bookkeeping flags cavity
// operations need.
type Tet struct {
	V [4]int
	N [4]int

	// Region is the region attribute inherited from flooding, or
	// NoIndex if unset.
	Region int
	// MaxVolume is this tet's inherited volume bound; <= 0 means none.
	MaxVolume float64

	Ghost   bool
	Deleted bool

	// InCavity marks a tet as provisionally part of a Bowyer-Watson
	// cavity while that cavity is being grown; always false between
	// operations.
	InCavity bool
	// Epoch is a visited-generation stamp, compared against a store-wide
	// counter so incidence walks can mark tets as seen without resetting
	// a tet-count-sized array on every call.
	Epoch int
}

// faceVerts is the canonical vertex triple, in CCW-from-outside order,
// for the face opposite V[i] — neighbor i shares exactly this triple
// (read in reverse from the neighbor's own point of view).
var faceVerts = [4][3]int{
	{1, 3, 2},
	{0, 2, 3},
	{0, 3, 1},
	{0, 1, 2},
}

// FaceVertIndices returns the local vertex slots (0..3) making up the
// face opposite local vertex `face`.
func FaceVertIndices(face int) [3]int {
	return faceVerts[face]
}

// Face returns the three global vertex indices of the face opposite
// V[face].
func (t *Tet) Face(face int) [3]int {
	f := faceVerts[face]
	return [3]int{t.V[f[0]], t.V[f[1]], t.V[f[2]]}
}

// FaceOf returns the local face index (0..3) opposite vertex slot v.
func FaceOf(vertSlot int) int {
	return vertSlot
}

// LocalVertex returns the local slot (0..3) of global vertex index v in
// t, or -1 if v is not one of t's vertices.
func (t *Tet) LocalVertex(v int) int {
	for i, vv := range t.V {
		if vv == v {
			return i
		}
	}
	return -1
}

// HasVertex reports whether v is one of t's four vertices.
func (t *Tet) HasVertex(v int) bool {
	return t.LocalVertex(v) >= 0
}
