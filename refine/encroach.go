// Package refine drives Delaunay quality improvement: it finds
// tetrahedra that violate the configured radius-edge ratio or volume
// bound, and inserts Steiner points at their circumcenters — or, when a
// circumcenter would encroach a constrained segment or facet, at a
// point that instead splits the encroached feature.
package refine

import (
	"github.com/dhconnelly/rtreego"

	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/vec3"
)

// protector is a sphere an rtreego.Rtree can index: a segment's
// diametral sphere, or a facet triangle's circumdisk lifted into a thin
// sphere. Either is violated by any mesh vertex strictly inside it.
type protector struct {
	center  vec3.Vec
	radius  float64
	segment bool   // true for a segment's diametral sphere, false for a facet disk
	verts   [2]int // not set by NewEncroachmentIndex; always zero
}

func (p *protector) Bounds() *rtreego.Rect {
	lengths := []float64{2 * p.radius, 2 * p.radius, 2 * p.radius}
	rect, _ := rtreego.NewRect(
		rtreego.Point{p.center.X - p.radius, p.center.Y - p.radius, p.center.Z - p.radius},
		lengths,
	)
	return rect
}

// EncroachmentIndex accelerates "does any constrained feature's
// protection sphere contain this candidate point" queries with an
// rtreego R-tree instead of a linear scan over every segment and facet
// triangle.
type EncroachmentIndex struct {
	tree *rtreego.Rtree
}

// NewEncroachmentIndex builds an index of diametral spheres for every
// segment and facet triangle still present in the recovered PLC.
func NewEncroachmentIndex(segments [][2]vec3.Vec, facetTriangles [][3]vec3.Vec) *EncroachmentIndex {
	tree := rtreego.NewTree(3, 8, 25)
	for _, seg := range segments {
		center := seg[0].Mid(seg[1])
		tree.Insert(&protector{center: center, radius: seg[0].Sub(seg[1]).Length() / 2, segment: true})
	}
	for _, tri := range facetTriangles {
		center, radius := triangleCircumdisk(tri[0], tri[1], tri[2])
		tree.Insert(&protector{center: center, radius: radius, segment: false})
	}
	return &EncroachmentIndex{tree: tree}
}

// triangleCircumdisk returns the center and radius of the circle through
// a,b,c within their own plane.
func triangleCircumdisk(a, b, c vec3.Vec) (vec3.Vec, float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	abXac := ab.Cross(ac)
	denom := 2 * abXac.Dot(abXac)
	if denom == 0 {
		return a.Mid(b).Mid(c), ab.Length() / 2
	}
	num := abXac.Cross(ab).MulScalar(ac.Length2()).Add(ac.Cross(abXac).MulScalar(ab.Length2()))
	center := a.Add(num.DivScalar(denom))
	return center, center.Sub(a).Length()
}

// Encroaches reports whether p lies strictly inside any indexed
// protection sphere.
func (idx *EncroachmentIndex) Encroaches(p vec3.Vec) bool {
	_, ok := idx.NearestEncroached(p)
	return ok
}

// EncroachedFeature names the encroached protector's Steiner split point:
// the segment's midpoint, or the encroached facet triangle's circumcenter.
type EncroachedFeature struct {
	Point   vec3.Vec
	Segment bool
}

// NearestEncroached reports the protector p lies strictly inside, if
// any, preferring a segment over a facet when p encroaches both — a
// segment's protection sphere is emptied by one split, unblocking every
// facet and cell that sphere also protects against, so segments are
// cleared first. Among protectors of the same kind, the closest one to p
// is returned.
func (idx *EncroachmentIndex) NearestEncroached(p vec3.Vec) (EncroachedFeature, bool) {
	q, _ := rtreego.NewRect(rtreego.Point{p.X, p.Y, p.Z}, []float64{1e-12, 1e-12, 1e-12})

	var bestSeg, bestFacet *protector
	var bestSegDist, bestFacetDist float64
	for _, obj := range idx.tree.SearchIntersect(q) {
		pr := obj.(*protector)
		d := p.Sub(pr.center).Length()
		if d >= pr.radius {
			continue
		}
		if pr.segment {
			if bestSeg == nil || d < bestSegDist {
				bestSeg, bestSegDist = pr, d
			}
		} else if bestFacet == nil || d < bestFacetDist {
			bestFacet, bestFacetDist = pr, d
		}
	}

	if bestSeg != nil {
		return EncroachedFeature{Point: bestSeg.center, Segment: true}, true
	}
	if bestFacet != nil {
		return EncroachedFeature{Point: bestFacet.center, Segment: false}, true
	}
	return EncroachedFeature{}, false
}

// boundaryTriangles collects every finite-face triangle of the mesh's
// PLC-recovered facets for encroachment indexing, given the wall
// triangles plc.RecoverFacets returned.
func boundaryTriangles(s *mesh.Store, walls [][3]int) [][3]vec3.Vec {
	tris := make([][3]vec3.Vec, 0, len(walls))
	for _, w := range walls {
		tris = append(tris, [3]vec3.Vec{s.Pos(w[0]), s.Pos(w[1]), s.Pos(w[2])})
	}
	return tris
}

// NewEncroachmentIndexFromMesh is the convenience entry point for
// callers holding a recovered mesh rather than raw coordinate pairs: it
// resolves segment endpoints and facet wall triangles to positions and
// builds the index.
func NewEncroachmentIndexFromMesh(s *mesh.Store, segments [][2]int, walls [][3]int) *EncroachmentIndex {
	segPos := make([][2]vec3.Vec, 0, len(segments))
	for _, seg := range segments {
		segPos = append(segPos, [2]vec3.Vec{s.Pos(seg[0]), s.Pos(seg[1])})
	}
	return NewEncroachmentIndex(segPos, boundaryTriangles(s, walls))
}
