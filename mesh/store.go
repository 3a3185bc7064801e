package mesh

import "github.com/sunpia/tetgen/vec3"

// Infinite is the sentinel vertex index used by ghost tetrahedra in
// place of a real vertex slot. It never appears in Store.Vertices.
const Infinite = -2

// Store is the topology container: a vertex array and a tetrahedron
// arena. Tetrahedra are allocated and freed through AllocTet/FreeTet,
// which reuse deleted slots via a free list so stable indices survive
// within a single operation even as cells come and go.
type Store struct {
	Vertices []Vertex
	Tets     []Tet

	free  []int
	epoch int
}

// NewStore returns an empty mesh store.
func NewStore() *Store {
	return &Store{}
}

// AddVertex appends a new vertex and returns its index. Callers are
// responsible for rejecting coincident points before calling this (the
// store itself does not deduplicate).
func (s *Store) AddVertex(pos vec3.Vec, marker int, attrs []float64, class Class) int {
	idx := len(s.Vertices)
	s.Vertices = append(s.Vertices, Vertex{
		Pos:        pos,
		Index:      idx,
		Marker:     marker,
		Attributes: attrs,
		Class:      class,
		Tet:        NoIndex,
	})
	return idx
}

// Vertex returns a pointer to vertex v for in-place updates (its Tet
// back-reference).
func (s *Store) Vertex(v int) *Vertex {
	return &s.Vertices[v]
}

// Pos is a convenience accessor: the position of vertex v, or the zero
// vector for the infinite sentinel.
func (s *Store) Pos(v int) vec3.Vec {
	if v == Infinite {
		return vec3.Vec{}
	}
	return s.Vertices[v].Pos
}

// AllocTet allocates a new tetrahedron with the given vertices, reusing a
// deleted slot if one is available, and returns its index. Neighbors are
// initialized to NoIndex; the caller must link them before the operation
// returns control, to preserve neighbor symmetry.
func (s *Store) AllocTet(v [4]int) int {
	t := Tet{
		V:      v,
		N:      [4]int{NoIndex, NoIndex, NoIndex, NoIndex},
		Region: NoIndex,
	}
	var idx int
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
		s.Tets[idx] = t
	} else {
		idx = len(s.Tets)
		s.Tets = append(s.Tets, t)
	}
	for _, vi := range v {
		if vi != Infinite {
			s.Vertices[vi].Tet = idx
		}
	}
	return idx
}

// FreeTet marks t as deleted and returns its slot to the free list. The
// caller must have already unlinked t from any neighbor that still
// points to it.
func (s *Store) FreeTet(t int) {
	s.Tets[t].Deleted = true
	s.free = append(s.free, t)
}

// T returns a pointer to tetrahedron t for in-place updates.
func (s *Store) T(t int) *Tet {
	return &s.Tets[t]
}

// Link sets tetrahedra t1 and t2 as neighbors across face f1 (of t1) and
// f2 (of t2), restoring the symmetry invariant for that pair in one call
// — the "set-neighbor and its symmetric pair" operation.
func (s *Store) Link(t1, f1, t2, f2 int) {
	s.Tets[t1].N[f1] = t2
	s.Tets[t2].N[f2] = t1
}

// NextEpoch returns a new visited-generation stamp. Incidence walks
// compare a tet's Epoch field against this value instead of resetting a
// tet-count-sized "visited" array on every call.
func (s *Store) NextEpoch() int {
	s.epoch++
	return s.epoch
}

// ActiveTetCount returns the number of non-deleted tetrahedra.
func (s *Store) ActiveTetCount() int {
	n := 0
	for i := range s.Tets {
		if !s.Tets[i].Deleted {
			n++
		}
	}
	return n
}

// WalkIncidentToVertex returns every non-deleted tetrahedron incident to
// vertex v, found by a breadth-first expansion from v's back-reference
// across neighbors that also touch v.
func (s *Store) WalkIncidentToVertex(v int) []int {
	start := s.Vertices[v].Tet
	if start == NoIndex {
		return nil
	}
	epoch := s.NextEpoch()
	queue := []int{start}
	s.Tets[start].Epoch = epoch
	var result []int
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if s.Tets[cur].Deleted {
			continue
		}
		result = append(result, cur)
		for _, nb := range s.Tets[cur].N {
			if nb == NoIndex || s.Tets[nb].Deleted || s.Tets[nb].Epoch == epoch {
				continue
			}
			if !s.Tets[nb].HasVertex(v) {
				continue
			}
			s.Tets[nb].Epoch = epoch
			queue = append(queue, nb)
		}
	}
	return result
}

// WalkIncidentToEdge returns every non-deleted tetrahedron containing
// both v0 and v1.
func (s *Store) WalkIncidentToEdge(v0, v1 int) []int {
	var result []int
	for _, t := range s.WalkIncidentToVertex(v0) {
		if s.Tets[t].HasVertex(v1) {
			result = append(result, t)
		}
	}
	return result
}

// BoundaryFace names a tetrahedron and one of its faces.
type BoundaryFace struct {
	Tet  int
	Face int
}

// BoundaryFaces enumerates faces whose two adjacent tetrahedra differ in
// ghost or region status: the mesh's outer hull, plus any interior
// boundary between flooded regions once region attributes are assigned,
// plus the wall around any hole carved out by FloodRegions. Excluded
// (hole) tetrahedra are treated like ghosts: their own faces are never
// reported, only the live neighbor's face looking into the void.
func (s *Store) BoundaryFaces() []BoundaryFace {
	var faces []BoundaryFace
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost || t.Region == ExcludedRegion {
			continue
		}
		for f := 0; f < 4; f++ {
			nb := t.N[f]
			if nb == NoIndex {
				continue
			}
			other := &s.Tets[nb]
			if other.Ghost || other.Region != t.Region {
				faces = append(faces, BoundaryFace{Tet: i, Face: f})
			}
		}
	}
	return faces
}

// CheckSymmetry reports the first neighbor-symmetry violation found, for
// use in tests and internal invariant checks. It returns ok=true if every
// non-deleted tetrahedron's neighbor links are symmetric.
func (s *Store) CheckSymmetry() (ok bool, detail string) {
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted {
			continue
		}
		for f := 0; f < 4; f++ {
			nb := t.N[f]
			if nb == NoIndex {
				return false, "dangling neighbor reference"
			}
			other := &s.Tets[nb]
			if other.Deleted {
				return false, "neighbor points at a deleted tet"
			}
			found := false
			for g := 0; g < 4; g++ {
				if other.N[g] == i {
					found = true
					break
				}
			}
			if !found {
				return false, "neighbor link is not reciprocated"
			}
		}
	}
	return true, ""
}
