// Package mesh is the topology container for a tetrahedral mesh: a
// vertex array and a free-list tetrahedron arena, with the bookkeeping
// needed to keep neighbor links symmetric and to walk the mesh around a
// vertex or an edge.
package mesh

import "github.com/sunpia/tetgen/vec3"

// Class tags why a vertex exists.
type Class int

const (
	// ClassInput vertices come directly from the caller's point set or PLC.
	ClassInput Class = iota
	// ClassSteinerSegment vertices were inserted to recover a PLC segment.
	ClassSteinerSegment
	// ClassSteinerFacet vertices were inserted to recover a PLC facet.
	ClassSteinerFacet
	// ClassSteinerVolume vertices were inserted by quality refinement.
	ClassSteinerVolume
)

func (c Class) String() string {
	switch c {
	case ClassInput:
		return "input"
	case ClassSteinerSegment:
		return "steiner-segment"
	case ClassSteinerFacet:
		return "steiner-facet"
	case ClassSteinerVolume:
		return "steiner-volume"
	default:
		return "unknown"
	}
}

// Vertex is a 3D point plus the bookkeeping the kernel needs to carry
// alongside it. Once created, a vertex's Pos, Index, Marker, Attributes
// and Class are immutable; only Tet (the back-reference to one incident
// tetrahedron) is ever updated, and only to keep it valid.
type Vertex struct {
	Pos        vec3.Vec
	Index      int
	Marker     int
	Attributes []float64
	Class      Class
	// Tet is the index of one tetrahedron incident to this vertex, used
	// as a starting point for point-location walks and incidence
	// queries. -1 if the vertex has not yet been linked into any cell.
	Tet int
}
