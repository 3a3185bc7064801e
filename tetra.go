// Package tetgen generates tetrahedral meshes from point sets and
// piecewise-linear complexes: Delaunay tetrahedralization, constrained
// recovery, quality-bounded refinement, and an optional Voronoi dual.
package tetgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sunpia/tetgen/behavior"
	"github.com/sunpia/tetgen/delaunay"
	"github.com/sunpia/tetgen/errkind"
	"github.com/sunpia/tetgen/mesh"
	"github.com/sunpia/tetgen/plc"
	"github.com/sunpia/tetgen/predicate"
	"github.com/sunpia/tetgen/refine"
	"github.com/sunpia/tetgen/stats"
	"github.com/sunpia/tetgen/vec3"
	"github.com/sunpia/tetgen/voronoi"
)

// Input is the geometry a caller hands to Tetrahedralize: a point set,
// plus the PLC constraints to recover if b.PLC is set.
type Input struct {
	Points     []vec3.Vec
	Attributes [][]float64
	Markers    []int
	PLC        plc.PLC
}

// Output is everything one Tetrahedralize run produces: the mesh store
// itself (for direct inspection or tetio export), the facet wall
// triangles recovered from the PLC (if any), the Voronoi dual (if
// requested), and summary statistics.
type Output struct {
	Store   *mesh.Store
	Walls   [][3]int
	Dual    *voronoi.Dual
	Quality stats.QualitySummary
}

// Tetrahedralize builds a Delaunay tetrahedralization of in.Points,
// optionally recovers in.PLC's segments and facets and floods region
// attributes, optionally refines for quality, and optionally computes
// the Voronoi dual — all per b. It is the single entry point the
// rest of this module's control flow (§2) funnels through.
func Tetrahedralize(ctx context.Context, b behavior.Behavior, in Input) (*Output, error) {
	if len(in.Points) < 4 {
		return nil, errkind.New(errkind.Internal, "need at least 4 points to tetrahedralize")
	}

	s := mesh.NewStore()
	if err := loadPoints(s, in, b.CoincidentTolerance); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(b.Seed))
	seed, err := delaunay.Build(s, rng)
	if err != nil {
		return nil, errkind.Wrap(errkind.Internal, "building initial tetrahedralization", err)
	}

	var walls [][3]int
	if b.PLC {
		if err := plc.RecoverSegments(s, in.PLC.Segments, b.MaxSteinerPerRecovery); err != nil {
			return nil, err
		}
		walls, err = plc.RecoverFacets(s, in.PLC.Facets, b.MaxSteinerPerRecovery, b.PlanarTolerance)
		if err != nil {
			return nil, err
		}
		if b.AssignRegionAttributes && (len(in.PLC.Regions) > 0 || len(in.PLC.Holes) > 0) {
			if err := plc.FloodRegions(s, seed, walls, in.PLC.Regions, in.PLC.Holes); err != nil {
				return nil, err
			}
		}
	}

	if b.Quality {
		var idx *refine.EncroachmentIndex
		if b.PLC {
			segPairs := make([][2]int, len(in.PLC.Segments))
			for i, seg := range in.PLC.Segments {
				segPairs[i] = seg.V
			}
			idx = refine.NewEncroachmentIndexFromMesh(s, segPairs, walls)
		}
		if _, err := refine.Refine(ctx, s, seed, b.MinRadiusEdgeRatio, idx, b.MaxSteinerPerRecovery); err != nil {
			return nil, err
		}
	}

	var dual *voronoi.Dual
	if b.VoronoiDual {
		d := voronoi.Build(s)
		dual = &d
	}

	return &Output{
		Store:   s,
		Walls:   walls,
		Dual:    dual,
		Quality: summarizeQuality(s),
	}, nil
}

func loadPoints(s *mesh.Store, in Input, tolerance float64) error {
	for i, p := range in.Points {
		for j := 0; j < i; j++ {
			if p.Sub(s.Vertices[j].Pos).Length() < tolerance {
				return errkind.New(errkind.CoincidentVertices, fmt.Sprintf("points %d and %d coincide", i, j))
			}
		}
		var attrs []float64
		if i < len(in.Attributes) {
			attrs = in.Attributes[i]
		}
		marker := 0
		if i < len(in.Markers) {
			marker = in.Markers[i]
		}
		s.AddVertex(p, marker, attrs, mesh.ClassInput)
	}
	return nil
}

func summarizeQuality(s *mesh.Store) stats.QualitySummary {
	var ratios []float64
	for i := range s.Tets {
		t := &s.Tets[i]
		if t.Deleted || t.Ghost || t.Region == mesh.ExcludedRegion {
			continue
		}
		a, b, c, d := s.Pos(t.V[0]), s.Pos(t.V[1]), s.Pos(t.V[2]), s.Pos(t.V[3])
		if ratio, ok := predicate.RadiusEdgeRatio(a, b, c, d); ok {
			ratios = append(ratios, ratio)
		}
	}
	return stats.Summarize(ratios)
}
