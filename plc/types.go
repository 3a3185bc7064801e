// Package plc recovers a Piecewise Linear Complex — constrained
// segments and facets — into an existing Delaunay tetrahedralization,
// and floods region attributes across the recovered cells.
package plc

import "github.com/sunpia/tetgen/vec3"

// Segment is a constrained edge between two input vertices.
type Segment struct {
	V      [2]int
	Marker int
}

// Facet is a set of coplanar polygons that must appear as a union of
// mesh faces once recovery finishes. Every entry of Polygons is a loop
// recovered as wall triangles; no entry is treated as a hole.
type Facet struct {
	Polygons [][]int
	Marker   int
}

// Region names a point known to lie inside one connected region of the
// PLC, the attribute to flood onto every tetrahedron reachable from it
// without crossing a facet, and an optional local volume bound.
type Region struct {
	Point     vec3.Vec
	Attribute int
	MaxVolume float64
}

// PLC bundles the constraints recovery operates on.
type PLC struct {
	Segments []Segment
	Facets   []Facet
	Regions  []Region
	// Holes mark points inside voids: any region reachable from a hole
	// point is excluded from the output instead of receiving an
	// attribute.
	Holes []vec3.Vec
}
