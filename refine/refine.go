package refine

import (
	"context"

	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/errkind"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/predicate"
)

// Stats reports what one Refine call did.
type Stats struct {
	Scanned            int
	Inserted           int
	EncroachmentSplits int
}

// Refine repeatedly splits the worst-quality tetrahedron until none
// violate minRatio or the configured volume bound, inserting each
// circumcenter — unless it would encroach a protected segment or facet,
// in which case the encroached feature's own split point (the segment's
// midpoint, or the facet triangle's circumcenter) is inserted instead, so
// the constraint gets refined before the interior does; the offending
// tetrahedron is revisited on the next scan once its encroaching feature
// is gone. ctx is checked between insertions, following the same
// cooperative-cancellation shape as the renderer's pixel-batch checks:
// a long refinement can be stopped promptly without leaving the mesh
// half-mutated mid-insertion.
func Refine(ctx context.Context, s *mesh.Store, seed int, minRatio float64, idx *EncroachmentIndex, maxSteiner int) (Stats, error) {
	var stats Stats
	inserted := 0

	for {
		select {
		case <-ctx.Done():
			return stats, errkind.Wrap(errkind.Canceled, "refinement canceled", ctx.Err())
		default:
		}

		scores, err := ScanQuality(ctx, s)
		if err != nil {
			return stats, errkind.Wrap(errkind.Canceled, "quality scan canceled", err)
		}
		stats.Scanned += len(scores)

		q := NewQueue()
		for _, sc := range scores {
			if sc.radiusEdgeRatio > minRatio || sc.belowVolumeBound || sc.degenerate {
				q.Push(sc.tet, sc.radiusEdgeRatio)
			}
		}
		if q.Len() == 0 {
			return stats, nil
		}

		madeProgress := false
		for {
			tet, _, ok := q.Pop()
			if !ok {
				break
			}
			select {
			case <-ctx.Done():
				return stats, errkind.Wrap(errkind.Canceled, "refinement canceled", ctx.Err())
			default:
			}

			tt := &s.Tets[tet]
			if tt.Deleted || tt.Ghost {
				continue
			}
			a, b, c, d := s.Pos(tt.V[0]), s.Pos(tt.V[1]), s.Pos(tt.V[2]), s.Pos(tt.V[3])
			center, ok := predicate.Circumcenter(a, b, c, d)
			if !ok {
				continue
			}

			point, class := center, mesh.ClassSteinerVolume
			if idx != nil {
				if hit, encroached := idx.NearestEncroached(center); encroached {
					point = hit.Point
					class = mesh.ClassSteinerFacet
					if hit.Segment {
						class = mesh.ClassSteinerSegment
					}
					stats.EncroachmentSplits++
				}
			}
			if maxSteiner > 0 && inserted >= maxSteiner {
				return stats, errkind.New(errkind.Internal, "steiner-point budget exhausted during refinement")
			}

			v := s.AddVertex(point, 0, nil, class)
			newSeed, err := delaunay.InsertPoint(s, seed, v)
			if err != nil {
				return stats, errkind.Wrap(errkind.Internal, "inserting refinement point", err)
			}
			seed = newSeed
			inserted++
			stats.Inserted++
			madeProgress = true
		}
		if !madeProgress {
			return stats, nil
		}
	}
}
