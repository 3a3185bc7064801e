package plc

import (
	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/errkind"
	"github.com/sunpia/tetgen/mesh"
)

// edgePresent reports whether v0-v1 already appears as an edge of some
// tetrahedron in the mesh.
func edgePresent(s *mesh.Store, v0, v1 int) bool {
	return len(s.WalkIncidentToEdge(v0, v1)) > 0
}

// RecoverSegment ensures segment (v0,v1) appears as a union of mesh
// edges, splitting it at its midpoint and recursing into both halves
// whenever the whole edge isn't already present — the Steiner-midpoint
// fallback TetGen uses when a segment's recovery can't be completed by
// flips alone. This kernel always takes the Steiner path rather than
// attempting the full 3D flip enumeration first; see the note in
// DESIGN.md.
func RecoverSegment(s *mesh.Store, v0, v1 int, maxSteiner int) error {
	used := 0
	return recoverSegment(s, v0, v1, maxSteiner, &used)
}

func recoverSegment(s *mesh.Store, v0, v1 int, maxSteiner int, used *int) error {
	if edgePresent(s, v0, v1) {
		return nil
	}
	if maxSteiner > 0 && *used >= maxSteiner {
		return errkind.New(errkind.MissingSegment, "steiner-point budget exhausted recovering a segment")
	}
	*used++

	mid := s.Pos(v0).Mid(s.Pos(v1))
	seed := s.Vertices[v0].Tet
	midIdx := s.AddVertex(mid, 0, nil, mesh.ClassSteinerSegment)
	if _, err := delaunay.InsertPoint(s, seed, midIdx); err != nil {
		return errkind.Wrap(errkind.MissingSegment, "inserting segment midpoint", err)
	}

	if err := recoverSegment(s, v0, midIdx, maxSteiner, used); err != nil {
		return err
	}
	return recoverSegment(s, midIdx, v1, maxSteiner, used)
}

// RecoverSegments recovers every segment in the list.
func RecoverSegments(s *mesh.Store, segments []Segment, maxSteiner int) error {
	for _, seg := range segments {
		if err := RecoverSegment(s, seg.V[0], seg.V[1], maxSteiner); err != nil {
			return err
		}
	}
	return nil
}
